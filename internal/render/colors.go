package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"valentine/internal/config"
)

// Palette holds the terminal colors derived from the configured hex slots.
// Emoji keep their own colors; the palette only tints the background,
// buttons and plain text.
type Palette struct {
	BackgroundStart colorful.Color
	BackgroundEnd   colorful.Color
	Button          tcell.Color
	ButtonHover     tcell.Color
	Text            tcell.Color
	ButtonText      tcell.Color
}

// NewPalette parses c. Slots that fail to parse fall back to the default
// for that slot, so an unvalidated config still draws.
func NewPalette(c config.Colors) Palette {
	d := config.DefaultColors
	return Palette{
		BackgroundStart: parseHex(c.BackgroundStart, d.BackgroundStart),
		BackgroundEnd:   parseHex(c.BackgroundEnd, d.BackgroundEnd),
		Button:          toTcell(parseHex(c.ButtonBackground, d.ButtonBackground)),
		ButtonHover:     toTcell(parseHex(c.ButtonHover, d.ButtonHover)),
		Text:            toTcell(parseHex(c.TextColor, d.TextColor)),
		ButtonText:      tcell.ColorWhite,
	}
}

// Background returns the gradient color of row y out of height rows.
func (p Palette) Background(y, height int) tcell.Color {
	if height <= 1 {
		return toTcell(p.BackgroundStart)
	}
	t := float64(y) / float64(height-1)
	return toTcell(p.BackgroundStart.BlendLab(p.BackgroundEnd, t).Clamped())
}

func parseHex(s, fallback string) colorful.Color {
	if c, err := colorful.Hex(s); err == nil {
		return c
	}
	c, _ := colorful.Hex(fallback)
	return c
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
