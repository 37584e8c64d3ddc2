// Package audio plays the background music. Play reports its outcome
// through a callback instead of blocking the caller.
package audio

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/hajimehoshi/go-mp3"
	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2 // go-mp3 always decodes to 16-bit little-endian stereo
)

// ErrAborted is reported to pending Play callbacks when Load replaces the
// source before playback started.
var ErrAborted = errors.New("audio: play aborted by load")

// ErrSampleRate is returned for tracks that are not 44.1kHz.
var ErrSampleRate = errors.New("audio: unsupported sample rate")

// oto allows one context per process.
var (
	ctxOnce sync.Once
	ctx     *oto.Context
	ctxErr  error
)

func audioContext() (*oto.Context, error) {
	ctxOnce.Do(func() {
		var ready chan struct{}
		ctx, ready, ctxErr = oto.NewContext(SampleRate, ChannelCount, oto.FormatSignedInt16LE)
		if ctxErr == nil {
			<-ready
		}
	})
	return ctx, ctxErr
}

// Player streams mp3 tracks from a URL or file through oto.
type Player struct {
	post func(func())

	mu      sync.Mutex
	source  string
	volume  float64
	out     oto.Player
	body    io.Closer
	pending bool
	waiters []func(error)
	gen     int
}

// NewPlayer creates a Player. Play callbacks are handed to post so they run
// on the caller's event loop; a nil post runs them on the audio goroutine.
func NewPlayer(post func(func())) *Player {
	return &Player{post: post, volume: 1}
}

// SetSource sets the track used by the next Play after Load.
func (p *Player) SetSource(src string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.source = src
}

// SetVolume sets the output volume in [0, 1].
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = v
	if p.out != nil {
		p.out.SetVolume(v)
	}
}

// Load drops the current track so the next Play opens the current source.
// Play attempts still in flight fail with ErrAborted.
func (p *Player) Load() {
	p.mu.Lock()
	p.closeLocked()
	p.gen++
	p.pending = false
	waiters := p.waiters
	p.waiters = nil
	p.mu.Unlock()

	for _, done := range waiters {
		p.finish(done, ErrAborted)
	}
}

// Pause pauses playback.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.out != nil {
		p.out.Pause()
	}
}

// Paused reports whether nothing is playing and no Play is in flight.
func (p *Player) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pending {
		return false
	}
	return p.out == nil || !p.out.IsPlaying()
}

// Play starts or resumes playback and reports the outcome to done.
// Opening and decoding happen off the caller's goroutine.
func (p *Player) Play(done func(error)) {
	p.mu.Lock()
	if p.out != nil {
		p.out.Play()
		p.mu.Unlock()
		p.finish(done, nil)
		return
	}
	p.waiters = append(p.waiters, done)
	if p.pending {
		p.mu.Unlock()
		return
	}
	p.pending = true
	gen, src, vol := p.gen, p.source, p.volume
	p.mu.Unlock()

	go func() {
		out, body, err := open(src, vol)

		p.mu.Lock()
		if gen != p.gen {
			p.mu.Unlock()
			if out != nil {
				out.Close()
				body.Close()
			}
			return
		}
		p.pending = false
		waiters := p.waiters
		p.waiters = nil
		if err == nil {
			p.out, p.body = out, body
			out.Play()
		}
		p.mu.Unlock()

		for _, w := range waiters {
			p.finish(w, err)
		}
	}()
}

// Close stops playback and releases the stream.
func (p *Player) Close() error {
	p.Load()
	return nil
}

func (p *Player) finish(done func(error), err error) {
	if done == nil {
		return
	}
	if p.post != nil {
		p.post(func() { done(err) })
		return
	}
	done(err)
}

func (p *Player) closeLocked() {
	if p.out != nil {
		p.out.Close()
		p.out = nil
	}
	if p.body != nil {
		p.body.Close()
		p.body = nil
	}
}

// open fetches and decodes src and prepares an oto player for it.
func open(src string, volume float64) (oto.Player, io.Closer, error) {
	rc, err := openSource(src)
	if err != nil {
		return nil, nil, err
	}
	dec, err := mp3.NewDecoder(rc)
	if err != nil {
		rc.Close()
		return nil, nil, fmt.Errorf("decode %s: %w", src, err)
	}
	if dec.SampleRate() != SampleRate {
		rc.Close()
		return nil, nil, fmt.Errorf("%s: %w %d", src, ErrSampleRate, dec.SampleRate())
	}
	c, err := audioContext()
	if err != nil {
		rc.Close()
		return nil, nil, fmt.Errorf("audio device: %w", err)
	}
	out := c.NewPlayer(dec)
	out.SetVolume(volume)
	return out, rc, nil
}
