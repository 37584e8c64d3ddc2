package render

import (
	"image"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"valentine/assets"
	"valentine/internal/dom"
	"valentine/internal/page"
)

// hudHeight is the number of bottom rows reserved for the key hints.
const hudHeight = 2

// Renderer draws a page document onto a tcell screen and remembers where
// every button ended up, so input can be mapped back to elements.
type Renderer struct {
	screen   tcell.Screen
	palette  Palette
	pictures *Pictures

	hits      []hit
	focusable []dom.ElementID
}

type hit struct {
	id  dom.ElementID // empty for areas that only block the pointer
	box Box
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen, palette Palette, pictures *Pictures) *Renderer {
	return &Renderer{screen: screen, palette: palette, pictures: pictures}
}

// ButtonAt returns the topmost button drawn over cell (x, y).
func (r *Renderer) ButtonAt(x, y int) (dom.ElementID, bool) {
	for i := len(r.hits) - 1; i >= 0; i-- {
		if h := r.hits[i]; h.box.Contains(x, y) {
			return h.id, h.id != ""
		}
	}
	return "", false
}

// Buttons returns the buttons reachable in the last frame, in reading order.
func (r *Renderer) Buttons() []dom.ElementID { return r.focusable }

// BoxOf returns where the element with the given ID was last drawn.
func (r *Renderer) BoxOf(id dom.ElementID) (Box, bool) {
	for _, h := range r.hits {
		if h.id == id {
			return h.box, true
		}
	}
	return Box{}, false
}

// DrawFrame renders the background, floaters, page content, HUD and entry
// overlay as of now. hover is the element under the pointer or keyboard
// focus.
func (r *Renderer) DrawFrame(doc *dom.Document, now time.Time, hover dom.ElementID) {
	r.screen.Clear()
	r.hits = r.hits[:0]
	r.focusable = r.focusable[:0]
	w, h := r.screen.Size()

	r.drawBackground(w, h)
	r.drawFloaters(doc, now, w, h)

	if main, ok := doc.Element(page.ElMain); ok && !main.Hidden && !main.Removed {
		f := newFlow(doc, w)
		top := max((h-hudHeight-f.height(main))/2, 0)
		r.drawPlaced(f.layout(main, top), now, hover)
	}
	r.drawFixed(doc, now, hover)
	r.DrawHUD(doc, now, hover)

	if overlay, ok := doc.Element(page.ElOverlay); ok && !overlay.Removed && !overlay.Hidden {
		r.drawOverlay(doc, overlay, now, hover)
	}
	r.screen.Show()
}

func (r *Renderer) drawBackground(w, h int) {
	for y := 0; y < h; y++ {
		style := tcell.StyleDefault.Background(r.palette.Background(y, h))
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawFloaters draws each floater rising from below the bottom edge to
// above the top edge over one cycle.
func (r *Renderer) drawFloaters(doc *dom.Document, now time.Time, w, h int) {
	for _, f := range doc.Floaters() {
		rise, ok := f.Rise(now)
		if !ok {
			continue
		}
		fw, fh := 2, 1
		if f.Image != "" {
			fw, fh = max(f.Width, 1), max(f.Width/2, 1)
		}
		x := int(f.Column * float64(max(w-fw, 1)))
		y := h - int(rise*float64(h+fh))
		if f.Image != "" {
			r.drawPicture(f.Image, Box{X: x, Y: y, W: fw, H: fh}, false)
			continue
		}
		r.drawText(x, y, f.Glyph, r.textStyle(y))
	}
}

func (r *Renderer) drawPlaced(items []placed, now time.Time, hover dom.ElementID) {
	for _, p := range items {
		r.drawElement(p.el, p.box, p.lines, now, hover)
	}
}

// drawFixed draws elements taken out of the flow at their own viewport
// coordinates, on top of the flow content.
func (r *Renderer) drawFixed(doc *dom.Document, now time.Time, hover dom.ElementID) {
	for _, el := range doc.Elements() {
		if el.Position != dom.PositionFixed || !doc.Visible(el.ID) {
			continue
		}
		w, h := el.Size()
		r.drawElement(el, Box{X: el.X, Y: el.Y, W: w, H: h}, nil, now, hover)
	}
}

func (r *Renderer) drawElement(el *dom.Element, box Box, lines []string, now time.Time, hover dom.ElementID) {
	switch el.Kind {
	case dom.KindText:
		for i, ln := range lines {
			y := box.Y + i
			x := box.X + (box.W-runewidth.StringWidth(ln))/2
			r.drawText(x, y, ln, r.textStyle(y).Bold(el.Bold))
		}
	case dom.KindButton:
		r.drawButton(el, box.Scaled(el.EffectiveScale()), el.ID == hover)
	case dom.KindImage:
		r.drawPicture(el.Image, box, true)
	case dom.KindProgress:
		r.drawProgress(box, el.Progress.At(now))
	}
	if el.Caption != "" {
		y := box.Y - 1
		x := box.X + (box.W-runewidth.StringWidth(el.Caption))/2
		r.drawText(x, y, el.Caption, r.textStyle(y).Italic(true))
	}
}

// drawButton draws a rounded box filled with the button color and the
// label centered on its middle row.
func (r *Renderer) drawButton(el *dom.Element, b Box, hovered bool) {
	bg := r.palette.Button
	if hovered {
		bg = r.palette.ButtonHover
	}
	style := tcell.StyleDefault.Foreground(r.palette.ButtonText).Background(bg)
	for y := b.Y; y < b.Y+b.H; y++ {
		for x := b.X; x < b.X+b.W; x++ {
			ch := ' '
			switch {
			case y == b.Y && x == b.X:
				ch = '╭'
			case y == b.Y && x == b.X+b.W-1:
				ch = '╮'
			case y == b.Y+b.H-1 && x == b.X:
				ch = '╰'
			case y == b.Y+b.H-1 && x == b.X+b.W-1:
				ch = '╯'
			case y == b.Y || y == b.Y+b.H-1:
				ch = '─'
			case x == b.X || x == b.X+b.W-1:
				ch = '│'
			}
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
	label := el.Label()
	lx := b.X + (b.W-runewidth.StringWidth(label))/2
	r.drawText(lx, b.Y+b.H/2, label, style.Bold(el.Bold))

	r.hits = append(r.hits, hit{id: el.ID, box: b})
	r.focusable = append(r.focusable, el.ID)
}

func (r *Renderer) drawProgress(b Box, frac float64) {
	filled := int(frac * float64(b.W))
	done := r.textStyle(b.Y).Foreground(r.palette.Button)
	rest := done.Foreground(r.palette.ButtonHover)
	for i := 0; i < b.W; i++ {
		if i < filled {
			r.screen.SetContent(b.X+i, b.Y, '█', nil, done)
		} else {
			r.screen.SetContent(b.X+i, b.Y, '░', nil, rest)
		}
	}
}

// drawPicture draws src into b using half blocks, two pixels per cell.
// A picture that is not ready yet gets a placeholder when framed is set.
func (r *Renderer) drawPicture(src string, b Box, framed bool) {
	var thumb *image.RGBA
	ok := false
	if r.pictures != nil {
		thumb, ok = r.pictures.Thumbnail(src, b.W, b.H*2)
	}
	_, sh := r.screen.Size()
	if !ok {
		if !framed {
			return
		}
		style := tcell.StyleDefault.Foreground(r.palette.Text).Background(r.palette.ButtonHover)
		for y := b.Y; y < b.Y+b.H; y++ {
			for x := b.X; x < b.X+b.W; x++ {
				r.screen.SetContent(x, y, ' ', nil, style)
			}
		}
		r.drawText(b.X+(b.W-2)/2, b.Y+b.H/2, assets.GlyphPicture, style)
		return
	}
	for row := 0; row < b.H; row++ {
		y := b.Y + row
		bg := r.palette.Background(y, sh)
		for col := 0; col < b.W; col++ {
			top := pixel(thumb, col, 2*row, bg)
			bottom := pixel(thumb, col, 2*row+1, bg)
			r.screen.SetContent(b.X+col, y, '▀', nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}
}

// pixel returns the color at (x, y), or fallback where the picture is
// transparent.
func pixel(img *image.RGBA, x, y int, fallback tcell.Color) tcell.Color {
	c, ok := colorful.MakeColor(img.At(x, y))
	if !ok || img.RGBAAt(x, y).A < 0x80 {
		return fallback
	}
	return toTcell(c)
}

// drawOverlay covers the whole screen with the entry overlay. While it is
// up only its own buttons take input.
func (r *Renderer) drawOverlay(doc *dom.Document, overlay *dom.Element, now time.Time, hover dom.ElementID) {
	w, h := r.screen.Size()
	bg := toTcell(r.palette.BackgroundStart)
	style := tcell.StyleDefault.Background(bg).Dim(overlay.Fading)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	r.hits = append(r.hits[:0], hit{box: Box{W: w, H: h}})
	r.focusable = r.focusable[:0]

	f := newFlow(doc, w)
	top := max((h-f.height(overlay))/2, 0)
	r.drawPlaced(f.layout(overlay, top), now, hover)
}

func (r *Renderer) textStyle(y int) tcell.Style {
	_, h := r.screen.Size()
	return tcell.StyleDefault.Foreground(r.palette.Text).Background(r.palette.Background(y, h))
}

// drawText writes s at (x, y) one grapheme cluster at a time, advancing by
// each cluster's display width. It returns the column after the text.
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) int {
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		runes := g.Runes()
		width := runewidth.StringWidth(g.Str())
		if width == 0 {
			continue
		}
		r.screen.SetContent(x, y, runes[0], runes[1:], style)
		if width == 2 {
			// Fill the second column to avoid rendering artifacts.
			r.screen.SetContent(x+1, y, ' ', nil, style)
		}
		x += width
	}
	return x
}
