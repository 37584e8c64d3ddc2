// Package app runs one greeting on one terminal: it owns the tcell event
// loop, draws the page every frame and maps keys and the mouse onto page
// operations.
package app

import (
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"valentine/internal/clock"
	"valentine/internal/config"
	"valentine/internal/dom"
	"valentine/internal/page"
	"valentine/internal/render"
)

// FrameInterval is how often the screen is redrawn while idle, which
// drives the floaters and the progress bar.
const FrameInterval = 100 * time.Millisecond

// AudioFunc builds the audio handle for a session. post runs a function
// on the event loop; players use it to deliver Play results.
type AudioFunc func(post func(func())) page.Audio

// Options configure an App.
type Options struct {
	Config   config.Config
	Audio    AudioFunc
	Pictures *render.Pictures
	Logger   *slog.Logger
	Rand     *rand.Rand
}

// App is the event loop for one screen.
type App struct {
	screen   tcell.Screen
	doc      *dom.Document
	page     *page.Page
	renderer *render.Renderer
	loop     *clock.Loop
	log      *slog.Logger

	calls chan func()
	done  chan struct{}

	focus   dom.ElementID // keyboard focus
	hover   dom.ElementID // button under the pointer
	pressed bool          // primary mouse button is down
	quit    bool
}

// New prepares an App on an initialized screen.
func New(screen tcell.Screen, opts Options) *App {
	screen.EnableMouse(tcell.MouseMotionEvents)
	w, h := screen.Size()

	a := &App{
		screen: screen,
		doc:    page.NewDocument(opts.Config, w, h),
		log:    opts.Logger,
		calls:  make(chan func(), 64),
		done:   make(chan struct{}),
	}
	if a.log == nil {
		a.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	a.loop = clock.NewLoop(a.post)

	var player page.Audio
	if opts.Audio != nil {
		player = opts.Audio(a.post)
	}
	a.page = page.New(opts.Config, a.doc, page.Options{
		Audio:  player,
		Clock:  a.loop,
		Rand:   opts.Rand,
		Logger: a.log,
	})
	a.renderer = render.NewRenderer(screen, render.NewPalette(opts.Config.Colors), opts.Pictures)
	return a
}

// Page returns the page driven by the loop.
func (a *App) Page() *page.Page { return a.page }

// Run blocks until the user quits or the screen goes away. It finalizes
// the screen before returning.
func (a *App) Run() {
	defer a.shutdown()

	a.page.SetupMusic()
	a.page.SpawnFloating()
	go a.tick()

	for !a.quit {
		a.draw()
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		a.drain()
		a.handle(ev)
	}
}

func (a *App) draw() {
	a.renderer.DrawFrame(a.doc, time.Now(), a.highlight())
}

func (a *App) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		w, h := ev.Size()
		a.doc.SetViewport(w, h)
	case *tcell.EventKey:
		a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	}
}

// post queues fn for the loop and wakes it. Calls made after shutdown are
// dropped.
func (a *App) post(fn func()) {
	select {
	case a.calls <- fn:
	case <-a.done:
		return
	}
	_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

func (a *App) drain() {
	for {
		select {
		case fn := <-a.calls:
			fn()
		default:
			return
		}
	}
}

// tick wakes the loop every frame so animations advance without input.
func (a *App) tick() {
	t := time.NewTicker(FrameInterval)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-a.done:
			return
		}
	}
}

func (a *App) shutdown() {
	close(a.done)
	a.loop.Stop()
	a.screen.Fini()
}

// highlight is the element drawn in its hover color.
func (a *App) highlight() dom.ElementID {
	if a.hover != "" {
		return a.hover
	}
	return a.focus
}
