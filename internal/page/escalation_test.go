package page

import (
	"reflect"
	"testing"

	"valentine/assets"
	"valentine/internal/config"
)

// onSecond starts the page and moves to the second question.
func onSecond(t *testing.T, cfg config.Config) *harness {
	t.Helper()
	h := newHarness(t, cfg)
	h.page.Start()
	h.page.GoTo(ScreenSecond)
	return h
}

func countGlyphs(content []string) (leading, trailing int) {
	for _, s := range content {
		if s != assets.GlyphArrowRight {
			break
		}
		leading++
	}
	for i := len(content) - 1; i >= 0 && content[i] == assets.GlyphArrowLeft; i-- {
		trailing++
	}
	return leading, trailing
}

func TestEscalationAfterNWrongAnswers(t *testing.T) {
	for n := 0; n <= 7; n++ {
		h := onSecond(t, config.Default())
		for range n {
			h.page.HandleAnswer(false)
		}

		h.onlyVisible(t, ScreenSecond)
		if h.page.WrongAnswers() != n {
			t.Fatalf("n=%d: WrongAnswers() = %d", n, h.page.WrongAnswers())
		}
		correct := h.el(t, ElCorrectBtn)
		if got, want := correct.EffectiveScale(), 1+0.5*float64(n); got != want {
			t.Errorf("n=%d: scale = %v; want %v", n, got, want)
		}
		if n == 0 {
			continue
		}
		if got := h.el(t, ElLoveChoices).Gap; got != 20+70*n {
			t.Errorf("n=%d: gap = %d; want %d", n, got, 20+70*n)
		}
		lead, trail := countGlyphs(correct.Content)
		if lead != n || trail != n {
			t.Errorf("n=%d: glyphs = %d leading, %d trailing", n, lead, trail)
		}
		if len(correct.Content) != 2*n+1 {
			t.Errorf("n=%d: content has %d spans; want %d", n, len(correct.Content), 2*n+1)
		}
		wrongGone := h.el(t, ElWrongBtn).Removed
		if wrongGone != (n >= LockThreshold) {
			t.Errorf("n=%d: wrong button removed = %v", n, wrongGone)
		}
		if !h.doc.Visible(ElWrongMessage) || h.el(t, ElWrongMessage).Text != assets.WrongAnswerMessage {
			t.Errorf("n=%d: warning message not shown", n)
		}
	}
}

func TestWrongLabelFollowsLevels(t *testing.T) {
	cfg := config.Default()
	cfg.Questions.Second.NextBtnLevels = []string{"one", "two"}
	h := onSecond(t, cfg)
	wrong := h.el(t, ElWrongBtn)

	want := []string{"one", "two", "two", "two"}
	for i, w := range want {
		h.page.HandleAnswer(false)
		if wrong.Text != w {
			t.Errorf("after %d wrong answers label = %q; want %q", i+1, wrong.Text, w)
		}
	}
}

func TestLockIn(t *testing.T) {
	h := onSecond(t, config.Default())
	for range LockThreshold {
		h.page.HandleAnswer(false)
	}
	correct := h.el(t, ElCorrectBtn)
	want := assets.LockedLabel(config.Default().Questions.Second.StartText)
	if got := correct.Content[LockThreshold]; got != want {
		t.Errorf("locked label = %q; want %q", got, want)
	}
	if want != "I SAID TO THE MOON AND BACK!!!!" {
		t.Errorf("LockedLabel = %q", want)
	}
	if !correct.Bold {
		t.Error("locked button should be bold")
	}

	// Stays locked for every later wrong answer.
	for range 3 {
		h.page.HandleAnswer(false)
		if !h.el(t, ElWrongBtn).Removed {
			t.Fatal("wrong button came back")
		}
		if h.doc.Visible(ElWrongBtn) {
			t.Fatal("removed wrong button reported visible")
		}
	}
}

func TestLockedLabel(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"To the moon and back", "I SAID TO THE MOON AND BACK!!!!"},
		{"Do neba i nazad!", "I SAID DO NEBA I NAZAD!!!!"},
		{"  yes!!! ", "I SAID YES!!!!"},
	}
	for _, tc := range cases {
		if got := assets.LockedLabel(tc.in); got != tc.want {
			t.Errorf("LockedLabel(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestLockInWithExclaimedStartText(t *testing.T) {
	cfg := config.Default()
	cfg.Questions.Second.StartText = "Do neba i nazad!"
	h := onSecond(t, cfg)
	for range LockThreshold {
		h.page.HandleAnswer(false)
	}
	if got := h.el(t, ElCorrectBtn).Content[LockThreshold]; got != "I SAID DO NEBA I NAZAD!!!!" {
		t.Errorf("locked label = %q", got)
	}
}

func TestLockInWithoutCorrectButton(t *testing.T) {
	h := onSecond(t, config.Default())
	h.doc.Remove(ElCorrectBtn)
	for n := 1; n <= LockThreshold; n++ {
		h.page.HandleAnswer(false)
		if got := h.el(t, ElWrongBtn).Removed; got != (n >= LockThreshold) {
			t.Errorf("n=%d: wrong button removed = %v", n, got)
		}
	}
	if h.page.WrongAnswers() != LockThreshold {
		t.Errorf("wrong answers = %d", h.page.WrongAnswers())
	}
}

func TestReactionFor(t *testing.T) {
	r := config.Reactions{
		Bad1: &config.Reaction{Text: "1"},
		Bad2: &config.Reaction{Text: "2"},
		Bad3: &config.Reaction{Text: "3"},
	}
	cases := []struct {
		n    int
		want string
	}{
		{0, ""}, {1, "1"}, {2, "2"}, {3, "3"}, {4, "3"}, {100, "3"},
	}
	for _, tc := range cases {
		got := ReactionFor(r, tc.n)
		text := ""
		if got != nil {
			text = got.Text
		}
		if text != tc.want {
			t.Errorf("ReactionFor(%d) = %q; want %q", tc.n, text, tc.want)
		}
	}
	if ReactionFor(config.Reactions{}, 2) != nil {
		t.Error("empty slot should select nothing")
	}
}

func TestReactionShown(t *testing.T) {
	h := onSecond(t, config.Default())
	reactions := config.Default().Questions.Second.Reactions

	for n, want := range []*config.Reaction{reactions.Bad1, reactions.Bad2, reactions.Bad3, reactions.Bad3} {
		h.page.HandleAnswer(false)
		if !h.doc.Visible(ElReaction) {
			t.Fatalf("n=%d: reaction hidden", n+1)
		}
		if img := h.el(t, ElReactionImage).Image; img != want.Image {
			t.Errorf("n=%d: image = %q; want %q", n+1, img, want.Image)
		}
		if txt := h.el(t, ElReactionText).Text; txt != want.Text {
			t.Errorf("n=%d: caption = %q; want %q", n+1, txt, want.Text)
		}
	}
}

func TestMissingReactionsAreSilent(t *testing.T) {
	cfg := config.Default()
	cfg.Questions.Second.Reactions = config.Reactions{}
	h := onSecond(t, cfg)
	h.page.HandleAnswer(false)
	if h.doc.Visible(ElReaction) {
		t.Error("no reaction configured, container should stay hidden")
	}
	if !h.doc.Visible(ElWrongMessage) {
		t.Error("warning message shows regardless of reactions")
	}
}

func TestCorrectAnswerKeepsCounter(t *testing.T) {
	for _, wrong := range []int{0, 1, 2, 5} {
		h := onSecond(t, config.Default())
		for range wrong {
			h.page.HandleAnswer(false)
		}
		h.page.HandleAnswer(true)
		h.onlyVisible(t, ScreenThird)
		if h.page.WrongAnswers() != wrong {
			t.Errorf("counter = %d after correct answer; want %d", h.page.WrongAnswers(), wrong)
		}
	}
}

func TestEscalationIsReproducible(t *testing.T) {
	a := onSecond(t, config.Default())
	b := onSecond(t, config.Default())
	for range 4 {
		a.page.HandleAnswer(false)
		b.page.HandleAnswer(false)
	}
	ca, cb := a.el(t, ElCorrectBtn), b.el(t, ElCorrectBtn)
	if !reflect.DeepEqual(ca.Content, cb.Content) || ca.Scale != cb.Scale || ca.Bold != cb.Bold {
		t.Errorf("same counter, different result: %+v vs %+v", ca, cb)
	}
	if !reflect.DeepEqual(CorrectContent("x", 2), []string{"➤", "➤", "x", "◄", "◄"}) {
		t.Errorf("CorrectContent = %v", CorrectContent("x", 2))
	}
}

func TestEscalationWithoutButtons(t *testing.T) {
	h := onSecond(t, config.Default())
	h.doc.Remove(ElCorrectBtn)
	h.doc.Remove(ElWrongBtn)
	h.doc.Remove(ElReaction)
	h.page.HandleAnswer(false)
	h.page.HandleAnswer(false)
	if h.page.WrongAnswers() != 2 {
		t.Errorf("counter = %d; want 2", h.page.WrongAnswers())
	}
}
