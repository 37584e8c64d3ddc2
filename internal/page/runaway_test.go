package page

import (
	"testing"
	"time"

	"valentine/assets"
	"valentine/internal/config"
	"valentine/internal/dom"
)

func TestRunawayGracePeriod(t *testing.T) {
	h := newHarness(t, config.Default())
	h.page.ArmRunaway(ElNo4)
	no := h.el(t, ElNo4)

	if state, ok := h.page.Runaway(ElNo4); !ok || state != RunawayDormant {
		t.Fatalf("Runaway() = (%v, %v); want (dormant, true)", state, ok)
	}
	h.clock.Advance(RunawayGrace - time.Millisecond)
	if h.page.Proximity(ElNo4) {
		t.Error("control moved during the grace period")
	}
	if no.Position != dom.PositionFlow {
		t.Error("control left the flow during the grace period")
	}

	h.clock.Advance(time.Millisecond)
	if state, _ := h.page.Runaway(ElNo4); state != RunawayArmed {
		t.Fatalf("state = %v after grace; want armed", state)
	}
	if !h.page.Proximity(ElNo4) {
		t.Fatal("armed control should move")
	}
	if no.Position != dom.PositionFixed {
		t.Error("moved control should be fixed to the viewport")
	}
	if no.Icon != assets.GlyphTroll || no.Caption != assets.TrollCaption {
		t.Errorf("icon/caption = %q/%q; want troll dress-up", no.Icon, no.Caption)
	}
	if state, _ := h.page.Runaway(ElNo4); state != RunawayFleeing {
		t.Errorf("state = %v; want fleeing", state)
	}
}

func TestRunawayStaysInViewport(t *testing.T) {
	h := newHarness(t, config.Default())
	h.page.ArmRunaway(ElNo4)
	h.clock.Advance(RunawayGrace)
	no := h.el(t, ElNo4)

	vw, vh := h.doc.Viewport()
	seen := make(map[[2]int]bool)
	for i := range 500 {
		if !h.page.Proximity(ElNo4) {
			t.Fatalf("event %d: control did not move", i)
		}
		w, hgt := no.Size()
		if no.X < 0 || no.X > vw-w || no.Y < 0 || no.Y > vh-hgt {
			t.Fatalf("event %d: position (%d, %d) outside [0,%d]x[0,%d]", i, no.X, no.Y, vw-w, vh-hgt)
		}
		seen[[2]int{no.X, no.Y}] = true
	}
	if len(seen) < 50 {
		t.Errorf("only %d distinct positions in 500 moves", len(seen))
	}
}

func TestRunawayLargerThanViewport(t *testing.T) {
	h := newHarness(t, config.Default())
	h.doc.SetViewport(3, 1)
	h.page.ArmRunaway(ElNo4)
	h.clock.Advance(RunawayGrace)
	h.page.Proximity(ElNo4)
	no := h.el(t, ElNo4)
	if no.X != 0 || no.Y != 0 {
		t.Errorf("position = (%d, %d); want (0, 0)", no.X, no.Y)
	}
}

func TestRunawayArmTwice(t *testing.T) {
	h := newHarness(t, config.Default())
	h.page.ArmRunaway(ElNo4)
	pending := h.clock.Pending()
	h.page.ArmRunaway(ElNo4)
	if h.clock.Pending() != pending {
		t.Error("arming twice scheduled a second grace timer")
	}
}

func TestRunawayUnknownControl(t *testing.T) {
	h := newHarness(t, config.Default())
	h.page.ArmRunaway("ghost")
	if _, ok := h.page.Runaway("ghost"); ok {
		t.Error("missing element should not be armed")
	}
	if h.page.Proximity(ElYes4) {
		t.Error("unarmed control moved")
	}
}

func TestPointerOverTriggersRunaway(t *testing.T) {
	h := newHarness(t, config.Default())
	h.page.ArmRunaway(ElNo4)
	if h.page.PointerOver(ElNo4) {
		t.Error("dormant control reported a move")
	}
	h.clock.Advance(RunawayGrace)
	if !h.page.PointerOver(ElNo4) {
		t.Error("armed control should run from the pointer")
	}
}
