package page

import (
	"valentine/assets"
	"valentine/internal/config"
	"valentine/internal/dom"
)

// NewDocument builds the page layout for cfg in a viewport of w × h cells:
// the entry overlay on top, the main container with one section per
// screen, and the music controls. Only the overlay and the first screen
// start out visible.
func NewDocument(cfg config.Config, w, h int) *dom.Document {
	d := dom.New(w, h)
	q := cfg.Questions

	section := func(id, parent dom.ElementID, hidden bool) {
		d.Add(&dom.Element{ID: id, Parent: parent, Kind: dom.KindSection, Hidden: hidden})
	}
	row := func(id, parent dom.ElementID, gap int) {
		d.Add(&dom.Element{ID: id, Parent: parent, Kind: dom.KindRow, Gap: gap})
	}
	text := func(id, parent dom.ElementID, s string, hidden bool) {
		d.Add(&dom.Element{ID: id, Parent: parent, Kind: dom.KindText, Text: s, Hidden: hidden})
	}
	button := func(id, parent dom.ElementID, label string) *dom.Element {
		return d.Add(&dom.Element{ID: id, Parent: parent, Kind: dom.KindButton, Text: label, Scale: 1, Removed: label == ""})
	}
	image := func(id, parent dom.ElementID, src string, hidden bool) {
		d.Add(&dom.Element{ID: id, Parent: parent, Kind: dom.KindImage, Image: src, Hidden: hidden})
	}

	section(ElOverlay, "", false)
	text(ElOverlayText, ElOverlay, cfg.PageTitle, false)
	text(ElOverlayHint, ElOverlay, assets.OverlayHint, false)
	button(ElStartBtn, ElOverlay, assets.StartButton)

	section(ElMain, "", true)
	text(ElTitle, ElMain, assets.Greeting(cfg.ValentineName), false)

	section(ElQuestion1, ElMain, false)
	text(ElQuestion1Txt, ElQuestion1, q.First.Text, false)
	text(ElCountdown, ElQuestion1, "5", true)
	row(ElChoices1, ElQuestion1, 20)
	button(ElYes1, ElChoices1, q.First.YesBtn).Hidden = true
	button(ElNo1, ElChoices1, q.First.NoBtn)
	text(ElSecret, ElQuestion1, q.First.SecretAnswer, true)

	section(ElQuestion2, ElMain, true)
	text(ElQuestion2Txt, ElQuestion2, q.Second.Text, false)
	row(ElLoveChoices, ElQuestion2, 20)
	button(ElCorrectBtn, ElLoveChoices, q.Second.StartText)
	button(ElWrongBtn, ElLoveChoices, q.Second.NextBtn)
	text(ElWrongMessage, ElQuestion2, "", true)
	section(ElReaction, ElQuestion2, true)
	image(ElReactionImage, ElReaction, "", false)
	text(ElReactionText, ElReaction, "", false)

	section(ElQuestion3, ElMain, true)
	text(ElQuestion3Txt, ElQuestion3, q.Third.Text, false)
	row(ElChoices3, ElQuestion3, 20)
	button(ElYes3, ElChoices3, q.Third.YesBtn)
	button(ElNo3, ElChoices3, q.Third.NoBtn)

	section(ElLoading, ElMain, true)
	text(ElLoadingText, ElLoading, assets.LoadingText, false)
	section(ElProgress, ElLoading, false)
	d.Add(&dom.Element{ID: ElProgressBar, Parent: ElProgress, Kind: dom.KindProgress})
	text(ElNervousText, ElLoading, assets.NervousText, true)
	text(ElReadyText, ElLoading, assets.ReadyText, true)

	section(ElQuestion4, ElMain, true)
	text(ElQuestion4Txt, ElQuestion4, q.Fourth.Text, false)
	if c := q.Fourth.Candidates; c != nil {
		row(ElCandidates, ElQuestion4, 20)
		image(ElCandidate1, ElCandidates, c.Img1, c.Img1 == "")
		image(ElCandidate2, ElCandidates, c.Img2, c.Img2 == "")
	}
	row(ElChoices4, ElQuestion4, 20)
	button(ElYes4, ElChoices4, q.Fourth.YesBtn)
	button(ElNo4, ElChoices4, q.Fourth.NoBtn)

	section(ElCelebration, ElMain, true)
	text(ElCelebrationTtl, ElCelebration, "", false)
	text(ElCelebrationMsg, ElCelebration, "", false)
	text(ElCelebrationEmj, ElCelebration, "", false)
	image(ElCelebrationImg, ElCelebration, "", true)

	section(ElMusicControls, "", false)
	button(ElMusicToggle, ElMusicControls, cfg.Music.StartText)
	text(ElHints, "", assets.KeyHints, false)
	return d
}
