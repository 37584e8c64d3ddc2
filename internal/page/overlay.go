package page

import (
	"strconv"
	"time"

	"valentine/internal/clock"
)

const (
	// OverlayFade is how long the overlay fades before it is removed.
	OverlayFade = 800 * time.Millisecond

	// CountdownFrom is where the first question's countdown starts.
	CountdownFrom = 5
)

// Start dismisses the entry overlay: music starts if enabled, the main
// container and first screen appear, and the countdown begins. Later calls
// do nothing.
func (p *Page) Start() {
	if p.started {
		return
	}
	p.started = true

	if p.cfg.Music.Enabled {
		p.audio.Play(func(err error) {
			if err != nil {
				p.log.Warn("audio play failed", "error", err)
				return
			}
			p.setText(ElMusicToggle, p.cfg.Music.StopText)
		})
	}

	if overlay, ok := p.element(ElOverlay); ok {
		overlay.Fading = true
		p.clock.AfterFunc(OverlayFade, func() {
			overlay.Removed = true
		})
	}
	p.setHidden(ElMain, false)
	if el, ok := p.doc.Element(ScreenFirst.Element()); ok && !el.Hidden {
		p.current = ScreenFirst
	}

	p.startCountdown()
}

// startCountdown ticks the countdown once a second and reveals the first
// yes button when it reaches zero.
func (p *Page) startCountdown() {
	countdown, okC := p.element(ElCountdown)
	yes, okY := p.element(ElYes1)
	if !okC || !okY {
		return
	}
	countdown.Text = strconv.Itoa(CountdownFrom)
	countdown.Hidden = false

	seq := make(clock.Sequence, 0, CountdownFrom)
	for i := 1; i <= CountdownFrom; i++ {
		left := CountdownFrom - i
		seq = append(seq, clock.Step{At: time.Duration(i) * time.Second, Do: func() {
			countdown.Text = strconv.Itoa(left)
			if left <= 0 {
				countdown.Hidden = true
				yes.Hidden = false
			}
		}})
	}
	seq.Run(p.clock)
}
