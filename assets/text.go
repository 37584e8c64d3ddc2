package assets

import "strings"

// Fixed strings that belong to the page layout rather than the configuration.
const (
	OverlayHint        = "Turn your sound on, then open it"
	StartButton        = "Open " + GlyphLetter
	WrongAnswerMessage = "Bruh wrong answer, try again!"
	TrollCaption       = "you will never catch me"
	LoadingText        = "Loading the big question..."
	NervousText        = "Okay wait, I'm actually nervous..."
	ReadyText          = "Alright. I'm ready. Are you?"
	CelebrationRetry   = "🎵 Click to Play Celebration Song!"
	CelebrationStop    = "🔇 Stop Music"
	KeyHints           = "[Tab/←/→] Move   [Enter] Choose   [m] Music   [q] Quit"
)

// Greeting is the header shown above the first question.
func Greeting(name string) string {
	return name + "..."
}

// LockedLabel is the emphasized correct answer once the wrong answer is
// locked out. Trailing exclamation marks on startText are folded into the
// fixed "!!!!".
func LockedLabel(startText string) string {
	base := strings.TrimRight(strings.TrimSpace(startText), "!")
	return "I SAID " + strings.ToUpper(base) + "!!!!"
}
