package page

import (
	"time"

	"valentine/internal/clock"
	"valentine/internal/dom"
)

// Offsets of the timed reveal, measured from its start.
const (
	RevealProgressAt = 100 * time.Millisecond
	RevealNervousAt  = 5100 * time.Millisecond
	RevealReadyAt    = 10100 * time.Millisecond
	RevealDoneAt     = 13100 * time.Millisecond

	ProgressDuration = 5 * time.Second
)

// Reveal runs the loading sequence that precedes the final question: a
// progress bar, a nervous caption, a ready caption, then the final question
// with its "No" button armed to run away. Nothing can skip or speed it up.
// A reveal already in flight makes further calls no-ops. Without the
// loading section or its bar, the final question is shown at once.
func (p *Page) Reveal() {
	if p.revealing || p.current == ScreenFourth || p.current == ScreenCelebration {
		return
	}

	loading, okL := p.doc.Element(ElLoading)
	bar, okB := p.doc.Element(ElProgressBar)
	if !okL || !okB {
		p.log.Warn("reveal: loading elements missing, showing the final question directly")
		p.hideScreens()
		p.showFinalQuestion()
		return
	}

	p.revealing = true
	p.revealSequence(loading, bar).Run(p.clock)
}

func (p *Page) revealSequence(loading, bar *dom.Element) clock.Sequence {
	return clock.Sequence{
		{At: 0, Do: func() {
			p.hideScreens()
			loading.Hidden = false
			p.current = ScreenLoading
			bar.Progress = dom.Progress{}
			p.hideIfPresent(ElNervousText, true)
			p.hideIfPresent(ElReadyText, true)
			p.hideIfPresent(ElLoadingText, false)
			p.hideIfPresent(ElProgress, false)
		}},
		{At: RevealProgressAt, Do: func() {
			bar.Progress = dom.Progress{From: 0, To: 1, Start: p.clock.Now(), Over: ProgressDuration}
		}},
		{At: RevealNervousAt, Do: func() {
			p.hideIfPresent(ElLoadingText, true)
			p.hideIfPresent(ElProgress, true)
			p.hideIfPresent(ElNervousText, false)
		}},
		{At: RevealReadyAt, Do: func() {
			p.hideIfPresent(ElNervousText, true)
			p.hideIfPresent(ElReadyText, false)
		}},
		{At: RevealDoneAt, Do: func() {
			p.revealing = false
			if p.current == ScreenCelebration {
				return
			}
			loading.Hidden = true
			p.showFinalQuestion()
		}},
	}
}

func (p *Page) showFinalQuestion() {
	if el, ok := p.element(ElQuestion4); ok {
		el.Hidden = false
		p.current = ScreenFourth
	}
	p.ArmRunaway(ElNo4)
}

// hideIfPresent toggles an optional element without logging its absence.
func (p *Page) hideIfPresent(id dom.ElementID, hidden bool) {
	if el, ok := p.doc.Element(id); ok {
		el.Hidden = hidden
	}
}
