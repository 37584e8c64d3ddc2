// Package page drives the greeting: which screen is visible, how the
// second question escalates, the runaway "No" button, the timed reveal
// before the final question, and the celebration. All state lives in one
// Page; the element tree, audio and timers are injected.
package page

import (
	"io"
	"log/slog"
	"math/rand"
	"time"

	"valentine/internal/clock"
	"valentine/internal/config"
	"valentine/internal/dom"
)

// Surface is the element tree the page reads from and writes to.
type Surface interface {
	Element(id dom.ElementID) (*dom.Element, bool)
	Viewport() (width, height int)
	Visible(id dom.ElementID) bool
	SetFloaters(f []dom.Floater)
	AddFloaters(f ...dom.Floater)
}

// Audio is a playable media handle. Play reports success (nil) or failure
// to done, either before returning or later on the event loop.
type Audio interface {
	Play(done func(error))
	Pause()
	Paused() bool
	Load()
	SetSource(src string)
	SetVolume(v float64)
}

// Options are the capabilities a Page runs on. Zero values get working
// defaults except Clock, which is required.
type Options struct {
	Audio  Audio
	Clock  clock.Scheduler
	Rand   *rand.Rand
	Logger *slog.Logger
}

// Page is the state of one greeting, from the entry overlay to the
// celebration. Its methods must be called from a single event loop.
type Page struct {
	cfg   config.Config
	doc   Surface
	audio Audio
	clock clock.Scheduler
	rng   *rand.Rand
	log   *slog.Logger

	current      Screen
	started      bool
	wrongAnswers int
	revealing    bool
	runaways     map[dom.ElementID]*runaway
	manualReplay bool // celebration autoplay failed; the toggle plays it
}

// New creates a Page over surface. cfg should already be validated.
func New(cfg config.Config, surface Surface, opts Options) *Page {
	p := &Page{
		cfg:      cfg,
		doc:      surface,
		audio:    opts.Audio,
		clock:    opts.Clock,
		rng:      opts.Rand,
		log:      opts.Logger,
		runaways: make(map[dom.ElementID]*runaway),
	}
	if p.audio == nil {
		p.audio = silence{}
	}
	if p.rng == nil {
		p.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if p.log == nil {
		p.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return p
}

// Current returns the screen shown last, or ScreenNone before Start.
func (p *Page) Current() Screen { return p.current }

// WrongAnswers returns the escalation counter.
func (p *Page) WrongAnswers() int { return p.wrongAnswers }

// VisibleScreens returns the screens whose sections are not hidden.
func (p *Page) VisibleScreens() []Screen {
	var out []Screen
	for _, s := range Screens {
		if el, ok := p.doc.Element(s.Element()); ok && !el.Hidden && !el.Removed {
			out = append(out, s)
		}
	}
	return out
}

// Activate runs the action of the button with the given ID. Unknown IDs,
// hidden buttons and buttons without an action do nothing.
func (p *Page) Activate(id dom.ElementID) {
	if !p.doc.Visible(id) {
		return
	}
	switch id {
	case ElStartBtn:
		p.Start()
	case ElYes1:
		p.GoTo(ScreenSecond)
	case ElCorrectBtn:
		p.HandleAnswer(true)
	case ElWrongBtn:
		p.HandleAnswer(false)
	case ElYes3:
		p.GoTo(ScreenFourth)
	case ElYes4:
		p.Celebrate()
	case ElMusicToggle:
		p.ToggleMusic()
	}
}

// PointerOver is called whenever the pointer or keyboard focus rests on an
// element (id is empty over the background). It reports whether the
// element ran away, in which case the pointer is no longer over it.
func (p *Page) PointerOver(id dom.ElementID) bool {
	if secret, ok := p.doc.Element(ElSecret); ok && secret.Text != "" {
		secret.Hidden = id != ElYes1
	}
	if _, ok := p.runaways[id]; ok {
		return p.Proximity(id)
	}
	return false
}

func (p *Page) element(id dom.ElementID) (*dom.Element, bool) {
	el, ok := p.doc.Element(id)
	if !ok {
		p.log.Debug("element not found", "id", id)
	}
	return el, ok
}

func (p *Page) setText(id dom.ElementID, text string) {
	if el, ok := p.element(id); ok {
		el.Text = text
	}
}

func (p *Page) setHidden(id dom.ElementID, hidden bool) {
	if el, ok := p.element(id); ok {
		el.Hidden = hidden
	}
}

func (p *Page) hideScreens() {
	for _, s := range Screens {
		if el, ok := p.doc.Element(s.Element()); ok {
			el.Hidden = true
		}
	}
}

// silence stands in when no audio is configured.
type silence struct{}

func (silence) Play(done func(error)) {
	if done != nil {
		done(nil)
	}
}
func (silence) Pause()            {}
func (silence) Paused() bool      { return false }
func (silence) Load()             {}
func (silence) SetSource(string)  {}
func (silence) SetVolume(float64) {}
