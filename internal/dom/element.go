package dom

import (
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// ElementID names one node of the document.
type ElementID string

// Kind decides how an element is laid out and drawn.
type Kind uint8

const (
	KindSection Kind = iota // vertical container; screens are sections
	KindRow                 // horizontal container, children separated by Gap
	KindText
	KindButton
	KindImage
	KindProgress
)

// Position is the layout mode of an element.
type Position uint8

const (
	PositionFlow  Position = iota // placed by its parent container
	PositionFixed                 // placed at (X, Y) in viewport cells
)

// Progress is a linear transition of a progress bar's fill.
type Progress struct {
	From, To float64
	Start    time.Time
	Over     time.Duration
}

// At returns the fill fraction at now, in [0, 1].
func (p Progress) At(now time.Time) float64 {
	v := p.To
	if p.Over > 0 && !p.Start.IsZero() {
		elapsed := now.Sub(p.Start)
		switch {
		case elapsed <= 0:
			v = p.From
		case elapsed < p.Over:
			v = p.From + (p.To-p.From)*float64(elapsed)/float64(p.Over)
		}
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Element is one node of the document. Everything the page mutates lives
// here; the renderer only reads it.
type Element struct {
	ID     ElementID
	Parent ElementID
	Kind   Kind

	Text    string
	Content []string // when set, replaces Text as the displayed content
	Icon    string   // drawn after the content
	Caption string   // floating caption drawn above the element

	Hidden  bool // hidden from view, keeps its slot in the tree
	Removed bool // display:none, never shown again by the page
	Fading  bool // fade-out transition in progress
	Bold    bool

	Scale    float64 // visual scale, does not affect layout flow
	Gap      int     // spacing between children of a row, in layout units
	Position Position
	X, Y     int

	Image    string // picture source for KindImage
	Progress Progress
}

// Label is the text shown on the element: the content spans joined with
// spaces (or Text when there are none), followed by the icon.
func (e *Element) Label() string {
	label := e.Text
	if len(e.Content) > 0 {
		label = strings.Join(e.Content, " ")
	}
	if e.Icon != "" {
		if label != "" {
			label += " "
		}
		label += e.Icon
	}
	return label
}

// EffectiveScale returns Scale, treating the zero value as 1.
func (e *Element) EffectiveScale() float64 {
	if e.Scale <= 0 {
		return 1
	}
	return e.Scale
}

// ButtonPadding is the number of columns a button adds around its label.
const ButtonPadding = 4

// ButtonHeight is the number of rows a boxed button occupies.
const ButtonHeight = 3

// Size returns the unscaled footprint of the element in cells.
func (e *Element) Size() (w, h int) {
	switch e.Kind {
	case KindButton:
		return runewidth.StringWidth(e.Label()) + ButtonPadding, ButtonHeight
	case KindImage:
		return ImageWidth, ImageHeight
	case KindProgress:
		return ProgressWidth, 1
	default:
		return runewidth.StringWidth(e.Label()), 1
	}
}

// Fixed footprints of pictures and progress bars.
const (
	ImageWidth    = 24
	ImageHeight   = 10
	ProgressWidth = 40
)
