package page

import (
	"valentine/assets"
	"valentine/internal/config"
)

// LockThreshold is the wrong-answer count at which the wrong button
// disappears for good.
const LockThreshold = 3

// Scale returns the correct button's scale after n wrong answers.
func Scale(n int) float64 { return 1 + 0.5*float64(n) }

// Gap returns the spacing between the two answers after n wrong answers,
// in layout units. The scaled button does not push its neighbour away, so
// the gap grows with it.
func Gap(n int) int { return 20 + 70*n }

// ReactionFor picks the reaction slot for the nth wrong answer: slot 1 for
// n == 1, slot 2 for n == 2, slot 3 from then on. It returns nil for
// n <= 0 or an empty slot.
func ReactionFor(r config.Reactions, n int) *config.Reaction {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return r.Bad1
	case n == 2:
		return r.Bad2
	default:
		return r.Bad3
	}
}

// CorrectContent returns the correct button's content after n wrong
// answers: n right-pointing arrows, the label, n left-pointing arrows.
func CorrectContent(label string, n int) []string {
	content := make([]string, 0, 2*n+1)
	for range n {
		content = append(content, assets.GlyphArrowRight)
	}
	content = append(content, label)
	for range n {
		content = append(content, assets.GlyphArrowLeft)
	}
	return content
}

// HandleAnswer answers the second question. A correct answer moves on to
// the third screen and leaves the counter alone. A wrong answer bumps the
// counter and escalates: new wrong-button label, a reaction, a bigger
// correct button with more arrows, and at LockThreshold the wrong button
// is removed.
func (p *Page) HandleAnswer(isCorrect bool) {
	if isCorrect {
		p.GoTo(ScreenThird)
		return
	}

	p.wrongAnswers++
	n := p.wrongAnswers
	second := p.cfg.Questions.Second

	if levels := second.NextBtnLevels; n <= len(levels) {
		p.setText(ElWrongBtn, levels[n-1])
	}

	reaction := ReactionFor(second.Reactions, n)

	if msg, ok := p.element(ElWrongMessage); ok {
		msg.Text = assets.WrongAnswerMessage
		msg.Hidden = false
	}

	if reaction != nil && reaction.Image != "" {
		container, okC := p.element(ElReaction)
		img, okI := p.element(ElReactionImage)
		if okC && okI {
			img.Image = reaction.Image
			p.setText(ElReactionText, reaction.Text)
			container.Hidden = false
		}
	}

	locked := n >= LockThreshold
	if locked {
		if wrong, ok := p.element(ElWrongBtn); ok {
			wrong.Removed = true
		}
	}
	if row, ok := p.element(ElLoveChoices); ok {
		row.Gap = Gap(n)
	}

	correct, ok := p.element(ElCorrectBtn)
	if !ok {
		return
	}
	correct.Scale = Scale(n)

	label := second.StartText
	if locked {
		label = assets.LockedLabel(second.StartText)
		correct.Bold = true
	}
	correct.Content = CorrectContent(label, n)
}
