package render

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"valentine/internal/dom"
	"valentine/internal/page"
)

// DrawHUD renders the key hints on the bottom row and the music toggle in
// the bottom-right corner above them.
func (r *Renderer) DrawHUD(doc *dom.Document, now time.Time, hover dom.ElementID) {
	screenW, screenH := r.screen.Size()
	hudY := screenH - hudHeight

	// Separator line.
	r.drawHLine(hudY, r.palette.ButtonHover)

	if hints, ok := doc.Element(page.ElHints); ok && doc.Visible(page.ElHints) {
		r.drawText(1, hudY+1, hints.Text, r.textStyle(hudY+1))
	}

	if doc.Visible(page.ElMusicToggle) {
		toggle, _ := doc.Element(page.ElMusicToggle)
		w, h := toggle.Size()
		r.drawElement(toggle, Box{X: screenW - w - 1, Y: hudY - h, W: w, H: h}, nil, now, hover)
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := r.textStyle(y).Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}
