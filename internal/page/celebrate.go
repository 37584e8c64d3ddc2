package page

import "valentine/assets"

// Celebrate shows the celebration screen, swaps the floating emojis for
// photos and plays the celebration track. If the track cannot start on its
// own, the music toggle becomes a manual "play celebration song" button.
// It is the terminal state; later calls do nothing.
func (p *Page) Celebrate() {
	if p.current == ScreenCelebration {
		return
	}
	p.current = ScreenCelebration
	p.setText(ElTitle, "")

	p.hideScreens()
	p.setHidden(ElCelebration, false)

	c := p.cfg.Celebration
	p.setText(ElCelebrationTtl, c.Title)
	p.setText(ElCelebrationMsg, c.Message)
	p.setText(ElCelebrationEmj, c.Emojis)
	if c.Image != "" {
		if img, ok := p.element(ElCelebrationImg); ok {
			img.Image = c.Image
			img.Hidden = false
		}
	}

	p.startFloatingPhotos()
	p.heartExplosion()

	win := p.cfg.MusicWin
	if !win.Enabled || win.MusicURL == "" {
		return
	}
	p.log.Info("playing celebration music", "src", win.MusicURL)
	if controls, ok := p.doc.Element(ElMusicControls); ok {
		controls.Removed = false
	}
	p.audio.SetSource(win.MusicURL)
	p.audio.Load()
	p.audio.Play(func(err error) {
		if err == nil {
			p.setText(ElMusicToggle, assets.CelebrationStop)
			return
		}
		p.log.Warn("celebration audio play failed", "error", err)
		p.setText(ElMusicToggle, assets.CelebrationRetry)
		p.manualReplay = true
	})
}
