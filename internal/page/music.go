package page

import "valentine/assets"

// SetupMusic prepares the background track. With music disabled the
// controls are removed. Autoplay failures only flip the toggle back to
// its start label.
func (p *Page) SetupMusic() {
	m := p.cfg.Music
	if !m.Enabled {
		if controls, ok := p.element(ElMusicControls); ok {
			controls.Removed = true
		}
		return
	}

	p.audio.SetSource(m.MusicURL)
	volume := m.Volume
	if volume == 0 {
		volume = 0.5
	}
	p.audio.SetVolume(volume)
	p.audio.Load()

	if m.Autoplay {
		p.audio.Play(func(err error) {
			if err != nil {
				p.log.Warn("autoplay prevented", "error", err)
				p.setText(ElMusicToggle, m.StartText)
				return
			}
			p.setText(ElMusicToggle, m.StopText)
		})
	}
}

// ToggleMusic plays or pauses the current track. After a failed
// celebration autoplay the first toggle plays the celebration song.
func (p *Page) ToggleMusic() {
	if p.manualReplay {
		p.manualReplay = false
		p.audio.Play(p.logPlayError("celebration audio"))
		p.setText(ElMusicToggle, assets.CelebrationStop)
		return
	}
	if p.audio.Paused() {
		p.audio.Play(p.logPlayError("audio"))
		p.setText(ElMusicToggle, p.cfg.Music.StopText)
		return
	}
	p.audio.Pause()
	p.setText(ElMusicToggle, p.cfg.Music.StartText)
}

// resumeMusic retries playback on a user-driven screen change.
func (p *Page) resumeMusic() {
	if !p.cfg.Music.Enabled || !p.audio.Paused() {
		return
	}
	p.audio.Play(p.logPlayError("audio"))
	p.setText(ElMusicToggle, p.cfg.Music.StopText)
}

func (p *Page) logPlayError(what string) func(error) {
	return func(err error) {
		if err != nil {
			p.log.Warn(what+" play failed", "error", err)
		}
	}
}
