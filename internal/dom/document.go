// Package dom holds the in-memory element tree that the page mutates and
// the renderer draws.
package dom

import "time"

// Floater is one decorative element drifting up the background.
type Floater struct {
	Glyph    string  // emoji drawn when Image is empty
	Image    string  // photo source, drawn as a thumbnail
	Width    int     // thumbnail width in cells; 0 for glyphs
	Column   float64 // horizontal position as a fraction of the viewport
	Delay    time.Duration
	Duration time.Duration // one full rise from bottom to top
	Born     time.Time
}

// Rise returns how far the floater has risen at now as a fraction in [0, 1),
// and false while it is still waiting out its delay.
func (f Floater) Rise(now time.Time) (float64, bool) {
	elapsed := now.Sub(f.Born) - f.Delay
	if elapsed < 0 || f.Duration <= 0 {
		return 0, false
	}
	cycle := elapsed % f.Duration
	return float64(cycle) / float64(f.Duration), true
}

// Document is a flat, ordered set of elements linked by parent IDs.
type Document struct {
	elements map[ElementID]*Element
	order    []ElementID
	width    int
	height   int
	floaters []Floater
}

// New creates an empty document for a viewport of w × h cells.
func New(w, h int) *Document {
	return &Document{
		elements: make(map[ElementID]*Element),
		width:    w,
		height:   h,
	}
}

// Add appends el to the document. An element with the same ID is replaced
// in place.
func (d *Document) Add(el *Element) *Element {
	if _, exists := d.elements[el.ID]; !exists {
		d.order = append(d.order, el.ID)
	}
	d.elements[el.ID] = el
	return el
}

// Remove deletes the element with the given ID. Children are left orphaned.
func (d *Document) Remove(id ElementID) {
	if _, ok := d.elements[id]; !ok {
		return
	}
	delete(d.elements, id)
	for i, oid := range d.order {
		if oid == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// Element looks up an element by ID.
func (d *Document) Element(id ElementID) (*Element, bool) {
	el, ok := d.elements[id]
	return el, ok
}

// Children returns the direct children of parent in insertion order.
// The empty ID selects top-level elements.
func (d *Document) Children(parent ElementID) []*Element {
	var out []*Element
	for _, id := range d.order {
		if el := d.elements[id]; el.Parent == parent {
			out = append(out, el)
		}
	}
	return out
}

// Elements returns every element in insertion order.
func (d *Document) Elements() []*Element {
	out := make([]*Element, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.elements[id])
	}
	return out
}

// Visible reports whether the element and all of its ancestors are shown.
func (d *Document) Visible(id ElementID) bool {
	for id != "" {
		el, ok := d.elements[id]
		if !ok || el.Hidden || el.Removed {
			return false
		}
		id = el.Parent
	}
	return true
}

// Viewport returns the viewport size in cells.
func (d *Document) Viewport() (int, int) { return d.width, d.height }

// SetViewport updates the viewport size after a terminal resize.
func (d *Document) SetViewport(w, h int) {
	d.width, d.height = w, h
}

// Floaters returns the background floaters.
func (d *Document) Floaters() []Floater { return d.floaters }

// SetFloaters replaces the background floaters.
func (d *Document) SetFloaters(f []Floater) { d.floaters = f }

// AddFloaters appends to the background floaters.
func (d *Document) AddFloaters(f ...Floater) { d.floaters = append(d.floaters, f...) }
