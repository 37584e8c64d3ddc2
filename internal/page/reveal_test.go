package page

import (
	"testing"
	"time"

	"valentine/internal/config"
	"valentine/internal/dom"
)

func TestRevealPhases(t *testing.T) {
	h := newHarness(t, config.Default())
	h.page.Start()
	h.page.GoTo(ScreenThird)

	start := h.clock.Now()
	h.page.GoTo(ScreenFourth)
	bar := h.el(t, ElProgressBar)

	check := func(label string, shown, hidden []dom.ElementID) {
		t.Helper()
		for _, id := range shown {
			if !h.doc.Visible(id) {
				t.Errorf("%s: %s should be visible", label, id)
			}
		}
		for _, id := range hidden {
			if h.doc.Visible(id) {
				t.Errorf("%s: %s should be hidden", label, id)
			}
		}
	}

	// Offset 0.
	h.onlyVisible(t, ScreenLoading)
	check("t=0",
		[]dom.ElementID{ElLoadingText, ElProgress, ElProgressBar},
		[]dom.ElementID{ElNervousText, ElReadyText})
	if got := bar.Progress.At(h.clock.Now()); got != 0 {
		t.Errorf("t=0: progress = %v; want 0", got)
	}

	// +0.1s: the bar starts filling and is full 5s later.
	h.clock.Advance(RevealProgressAt)
	now := h.clock.Now()
	if got := bar.Progress.At(now.Add(ProgressDuration / 2)); got != 0.5 {
		t.Errorf("progress halfway = %v; want 0.5", got)
	}
	if got := bar.Progress.At(now.Add(ProgressDuration)); got != 1 {
		t.Errorf("progress at end = %v; want 1", got)
	}

	// Nothing changes until +5.1s.
	h.clock.Advance(RevealNervousAt - RevealProgressAt - time.Millisecond)
	check("t=5.099", []dom.ElementID{ElLoadingText}, []dom.ElementID{ElNervousText})
	h.clock.Advance(time.Millisecond)
	if d := h.clock.Now().Sub(start); d != RevealNervousAt {
		t.Fatalf("clock at %v; want %v", d, RevealNervousAt)
	}
	check("t=5.1",
		[]dom.ElementID{ElNervousText},
		[]dom.ElementID{ElLoadingText, ElProgress, ElReadyText})
	h.onlyVisible(t, ScreenLoading)

	// +10.1s.
	h.clock.Advance(RevealReadyAt - RevealNervousAt)
	check("t=10.1", []dom.ElementID{ElReadyText}, []dom.ElementID{ElNervousText})
	h.onlyVisible(t, ScreenLoading)

	// +13.1s.
	h.clock.Advance(RevealDoneAt - RevealReadyAt - time.Millisecond)
	h.onlyVisible(t, ScreenLoading)
	h.clock.Advance(time.Millisecond)
	h.onlyVisible(t, ScreenFourth)
	if state, ok := h.page.Runaway(ElNo4); !ok || state != RunawayDormant {
		t.Errorf("Runaway(noBtn4) = (%v, %v); want freshly armed", state, ok)
	}
	if h.clock.Pending() != 1 {
		t.Errorf("pending timers = %d; want only the runaway grace timer", h.clock.Pending())
	}
}

func TestRevealIgnoresReentry(t *testing.T) {
	h := newHarness(t, config.Default())
	h.page.Start()
	h.clock.Advance(time.Minute)
	h.page.GoTo(ScreenThird)

	h.page.Reveal()
	pending := h.clock.Pending()
	h.page.Reveal()
	h.page.GoTo(ScreenFourth)
	if h.clock.Pending() != pending {
		t.Errorf("re-entry scheduled more timers: %d -> %d", pending, h.clock.Pending())
	}
	h.clock.Advance(RevealDoneAt)
	h.onlyVisible(t, ScreenFourth)

	// Finished: the final question stays put.
	h.page.Reveal()
	h.onlyVisible(t, ScreenFourth)
}

func TestRevealFallbackWithoutLoadingElements(t *testing.T) {
	for _, missing := range []dom.ElementID{ElLoading, ElProgressBar} {
		t.Run(string(missing), func(t *testing.T) {
			h := newHarness(t, config.Default())
			h.page.Start()
			h.page.GoTo(ScreenThird)
			h.doc.Remove(missing)

			h.page.GoTo(ScreenFourth)
			h.onlyVisible(t, ScreenFourth)
			if _, ok := h.page.Runaway(ElNo4); !ok {
				t.Error("fallback should still arm the runaway control")
			}
		})
	}
}
