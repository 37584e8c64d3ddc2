package page

import "valentine/internal/dom"

// Element IDs of the page layout.
const (
	ElOverlay     dom.ElementID = "overlay"
	ElOverlayText dom.ElementID = "overlayText"
	ElOverlayHint dom.ElementID = "overlayHint"
	ElStartBtn    dom.ElementID = "startBtn"

	ElMain  dom.ElementID = "mainContainer"
	ElTitle dom.ElementID = "valentineTitle"

	ElQuestion1    dom.ElementID = "question1"
	ElQuestion1Txt dom.ElementID = "question1Text"
	ElCountdown    dom.ElementID = "countdown"
	ElChoices1     dom.ElementID = "choices1"
	ElYes1         dom.ElementID = "yesBtn1"
	ElNo1          dom.ElementID = "noBtn1"
	ElSecret       dom.ElementID = "secretAnswer"

	ElQuestion2      dom.ElementID = "question2"
	ElQuestion2Txt   dom.ElementID = "question2Text"
	ElLoveChoices    dom.ElementID = "loveChoices"
	ElCorrectBtn     dom.ElementID = "correctBtn"
	ElWrongBtn       dom.ElementID = "wrongBtn"
	ElWrongMessage   dom.ElementID = "wrongAnswerMessage"
	ElReaction       dom.ElementID = "reactionContainer"
	ElReactionImage  dom.ElementID = "reactionImage"
	ElReactionText   dom.ElementID = "reactionText"
	ElQuestion3      dom.ElementID = "question3"
	ElQuestion3Txt   dom.ElementID = "question3Text"
	ElChoices3       dom.ElementID = "choices3"
	ElYes3           dom.ElementID = "yesBtn3"
	ElNo3            dom.ElementID = "noBtn3"
	ElLoading        dom.ElementID = "loading-section"
	ElLoadingText    dom.ElementID = "loading-text"
	ElProgress       dom.ElementID = "progress-container"
	ElProgressBar    dom.ElementID = "progress-bar"
	ElNervousText    dom.ElementID = "nervous-text"
	ElReadyText      dom.ElementID = "ready-text"
	ElQuestion4      dom.ElementID = "question4"
	ElQuestion4Txt   dom.ElementID = "question4Text"
	ElCandidates     dom.ElementID = "candidates"
	ElCandidate1     dom.ElementID = "candidate1"
	ElCandidate2     dom.ElementID = "candidate2"
	ElChoices4       dom.ElementID = "choices4"
	ElYes4           dom.ElementID = "yesBtn4"
	ElNo4            dom.ElementID = "noBtn4"
	ElCelebration    dom.ElementID = "celebration"
	ElCelebrationTtl dom.ElementID = "celebrationTitle"
	ElCelebrationMsg dom.ElementID = "celebrationMessage"
	ElCelebrationEmj dom.ElementID = "celebrationEmojis"
	ElCelebrationImg dom.ElementID = "celebrationImage"

	ElMusicControls dom.ElementID = "musicControls"
	ElMusicToggle   dom.ElementID = "musicToggle"
	ElHints         dom.ElementID = "keyHints"
)

// Screen is one of the mutually exclusive sections of the main container.
type Screen uint8

const (
	ScreenNone Screen = iota
	ScreenFirst
	ScreenSecond
	ScreenThird
	ScreenLoading
	ScreenFourth
	ScreenCelebration
)

// Screens lists every screen in display order.
var Screens = []Screen{ScreenFirst, ScreenSecond, ScreenThird, ScreenLoading, ScreenFourth, ScreenCelebration}

var screenElements = map[Screen]dom.ElementID{
	ScreenFirst:       ElQuestion1,
	ScreenSecond:      ElQuestion2,
	ScreenThird:       ElQuestion3,
	ScreenLoading:     ElLoading,
	ScreenFourth:      ElQuestion4,
	ScreenCelebration: ElCelebration,
}

// Element returns the section element that holds the screen.
func (s Screen) Element() dom.ElementID { return screenElements[s] }

func (s Screen) String() string {
	switch s {
	case ScreenFirst:
		return "first"
	case ScreenSecond:
		return "second"
	case ScreenThird:
		return "third"
	case ScreenLoading:
		return "loading"
	case ScreenFourth:
		return "fourth"
	case ScreenCelebration:
		return "celebration"
	}
	return "none"
}
