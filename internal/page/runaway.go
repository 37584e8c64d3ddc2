package page

import (
	"time"

	"valentine/assets"
	"valentine/internal/dom"
)

// RunawayGrace is how long an armed control stays put, so a pointer that
// already rests on it does not set it off.
const RunawayGrace = 2 * time.Second

// RunawayState is the phase of a runaway control.
type RunawayState uint8

const (
	RunawayDormant RunawayState = iota // grace delay still running
	RunawayArmed                       // listening, not moved yet
	RunawayFleeing                     // moved at least once
)

func (s RunawayState) String() string {
	switch s {
	case RunawayArmed:
		return "armed"
	case RunawayFleeing:
		return "fleeing"
	}
	return "dormant"
}

type runaway struct {
	state RunawayState
}

// ArmRunaway makes the control flee the pointer once RunawayGrace has
// passed. Arming the same control twice is a no-op, and nothing disarms it.
func (p *Page) ArmRunaway(id dom.ElementID) {
	if _, ok := p.element(id); !ok {
		return
	}
	if _, armed := p.runaways[id]; armed {
		return
	}
	r := &runaway{state: RunawayDormant}
	p.runaways[id] = r
	p.clock.AfterFunc(RunawayGrace, func() {
		r.state = RunawayArmed
	})
}

// Runaway returns the state of the control and whether it was ever armed.
func (p *Page) Runaway(id dom.ElementID) (RunawayState, bool) {
	r, ok := p.runaways[id]
	if !ok {
		return RunawayDormant, false
	}
	return r.state, true
}

// Proximity handles the pointer entering or moving over the control. While
// dormant it does nothing. The first event pins the control to the
// viewport and dresses it up with the troll icon and caption; every event
// moves it to a random spot that keeps it fully on screen. It reports
// whether the control moved.
func (p *Page) Proximity(id dom.ElementID) bool {
	r, ok := p.runaways[id]
	if !ok || r.state == RunawayDormant {
		return false
	}
	el, ok := p.element(id)
	if !ok {
		return false
	}
	if el.Position != dom.PositionFixed {
		el.Position = dom.PositionFixed
		el.Icon = assets.GlyphTroll
		el.Caption = assets.TrollCaption
		r.state = RunawayFleeing
	}

	w, h := el.Size()
	vw, vh := p.doc.Viewport()
	el.X = p.randUpTo(vw - w)
	el.Y = p.randUpTo(vh - h)
	return true
}

// randUpTo returns a uniform integer in [0, limit], or 0 when limit < 0.
func (p *Page) randUpTo(limit int) int {
	if limit <= 0 {
		return 0
	}
	return p.rng.Intn(limit + 1)
}
