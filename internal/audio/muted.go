package audio

import "errors"

// ErrBlocked is what a Muted player reports for every Play.
var ErrBlocked = errors.New("audio: playback blocked")

// Muted is a player for sessions that have no speaker, such as remote SSH
// terminals. Every Play is rejected the way a browser blocks autoplay.
type Muted struct {
	Source string
	Volume float64
}

// Play reports ErrBlocked immediately.
func (m *Muted) Play(done func(error)) {
	if done != nil {
		done(ErrBlocked)
	}
}

func (m *Muted) Pause()               {}
func (m *Muted) Paused() bool         { return true }
func (m *Muted) Load()                {}
func (m *Muted) SetSource(src string) { m.Source = src }
func (m *Muted) SetVolume(v float64)  { m.Volume = v }
