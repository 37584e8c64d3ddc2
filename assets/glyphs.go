package assets

// Emoji and symbols drawn by the page itself, as opposed to the ones that
// come from the configuration.
const (
	GlyphArrowRight = "➤" // leads the correct answer, points at the label
	GlyphArrowLeft  = "◄" // trails the correct answer, mirrors GlyphArrowRight
	GlyphTroll      = "🧌"
	GlyphPhoto      = "📷"
	GlyphPicture    = "🖼"
	GlyphLetter     = "💌"
)

// Heart and bear sets used when the configuration leaves floatingEmojis empty.
var (
	DefaultHearts = []string{"❤️", "💖", "💝", "💗", "💓"}
	DefaultBears  = []string{"🧸", "🐻"}
)
