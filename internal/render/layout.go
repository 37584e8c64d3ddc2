package render

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"valentine/internal/dom"
)

// gapUnit converts a row's Gap into terminal columns.
const gapUnit = 10

// Box is a screen rectangle in cells.
type Box struct {
	X, Y, W, H int
}

// Contains reports whether cell (x, y) lies inside b.
func (b Box) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Scaled grows b around its center by s. Only whole border rows are added,
// so a button stays readable at every scale.
func (b Box) Scaled(s float64) Box {
	if s <= 1 {
		return b
	}
	w := int(math.Round(float64(b.W) * s))
	h := b.H + 2*int(s-1)
	return Box{X: b.X - (w-b.W)/2, Y: b.Y - (h-b.H)/2, W: w, H: h}
}

// placed is one laid-out element.
type placed struct {
	el    *dom.Element
	box   Box
	lines []string // wrapped text for KindText
}

// flow lays out the shown subtree under a root container. Fixed elements
// are skipped here; they are drawn at their own coordinates.
type flow struct {
	doc   *dom.Document
	width int
	sizes map[dom.ElementID][2]int
	lines map[dom.ElementID][]string
	out   []placed
}

func newFlow(doc *dom.Document, width int) *flow {
	return &flow{
		doc:   doc,
		width: max(width, 1),
		sizes: make(map[dom.ElementID][2]int),
		lines: make(map[dom.ElementID][]string),
	}
}

// layout places root centered horizontally in [0, width) with its top at y,
// and returns the placed elements in drawing order.
func (f *flow) layout(root *dom.Element, y int) []placed {
	w, _ := f.measure(root)
	f.place(root, (f.width-w)/2, y)
	return f.out
}

// height returns the measured height of root.
func (f *flow) height(root *dom.Element) int {
	_, h := f.measure(root)
	return h
}

func (f *flow) children(parent dom.ElementID) []*dom.Element {
	var out []*dom.Element
	for _, c := range f.doc.Children(parent) {
		if c.Hidden || c.Removed || c.Position == dom.PositionFixed {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (f *flow) measure(el *dom.Element) (w, h int) {
	if s, ok := f.sizes[el.ID]; ok {
		return s[0], s[1]
	}
	switch el.Kind {
	case dom.KindSection:
		for i, c := range f.children(el.ID) {
			cw, ch := f.measure(c)
			w = max(w, cw)
			if i > 0 {
				h++
			}
			h += ch
		}
	case dom.KindRow:
		gap := el.Gap / gapUnit
		for i, c := range f.children(el.ID) {
			cw, ch := f.measure(c)
			if i > 0 {
				w += gap
			}
			w += cw
			h = max(h, ch)
		}
	case dom.KindText:
		lines := wrap(el.Label(), f.width-2)
		f.lines[el.ID] = lines
		for _, ln := range lines {
			w = max(w, runewidth.StringWidth(ln))
		}
		h = len(lines)
	default:
		w, h = el.Size()
	}
	f.sizes[el.ID] = [2]int{w, h}
	return w, h
}

func (f *flow) place(el *dom.Element, x, y int) {
	w, h := f.measure(el)
	f.out = append(f.out, placed{el: el, box: Box{X: x, Y: y, W: w, H: h}, lines: f.lines[el.ID]})

	switch el.Kind {
	case dom.KindSection:
		cy := y
		for _, c := range f.children(el.ID) {
			cw, ch := f.measure(c)
			f.place(c, x+(w-cw)/2, cy)
			cy += ch + 1
		}
	case dom.KindRow:
		cx := x
		gap := el.Gap / gapUnit
		for _, c := range f.children(el.ID) {
			cw, ch := f.measure(c)
			f.place(c, cx, y+(h-ch)/2)
			cx += cw + gap
		}
	}
}

// wrap breaks s into lines no wider than width cells, at spaces where it
// can and mid-word where it must.
func wrap(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			for runewidth.StringWidth(word) > width {
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				head := runewidth.Truncate(word, width, "")
				if head == "" {
					break
				}
				lines = append(lines, head)
				word = word[len(head):]
			}
			switch {
			case line == "":
				line = word
			case runewidth.StringWidth(line)+1+runewidth.StringWidth(word) <= width:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		lines = append(lines, line)
	}
	return lines
}
