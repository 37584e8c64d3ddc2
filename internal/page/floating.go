package page

import (
	"math"
	"time"

	"valentine/internal/config"
	"valentine/internal/dom"
)

const (
	photoCount     = 20
	explosionCount = 50
)

// SpawnFloating fills the background with the configured hearts and bears.
func (p *Page) SpawnFloating() {
	var floaters []dom.Floater
	for _, g := range p.cfg.FloatingEmojis.Hearts {
		floaters = append(floaters, p.randomFloater(dom.Floater{Glyph: g}))
	}
	for _, g := range p.cfg.FloatingEmojis.Bears {
		floaters = append(floaters, p.randomFloater(dom.Floater{Glyph: g}))
	}
	p.doc.SetFloaters(floaters)
}

// startFloatingPhotos replaces the background with photos picked at random
// from the celebration's floating images.
func (p *Page) startFloatingPhotos() {
	images := p.cfg.Celebration.FloatingImages
	var floaters []dom.Floater
	if len(images) > 0 {
		for range photoCount {
			floaters = append(floaters, p.randomFloater(dom.Floater{
				Image: images[p.rng.Intn(len(images))],
				Width: 12 + p.rng.Intn(7),
			}))
		}
	}
	p.doc.SetFloaters(floaters)
}

// heartExplosion adds a burst of random hearts on top of the background,
// scaled by the configured explosion size.
func (p *Page) heartExplosion() {
	hearts := p.cfg.FloatingEmojis.Hearts
	if len(hearts) == 0 {
		return
	}
	n := explosionCount
	if size := p.cfg.Animations.HeartExplosionSize; size > 0 {
		n = int(math.Round(explosionCount * size / config.DefaultExplosionSize))
	}
	burst := make([]dom.Floater, 0, n)
	for range n {
		burst = append(burst, p.randomFloater(dom.Floater{Glyph: hearts[p.rng.Intn(len(hearts))]}))
	}
	p.doc.AddFloaters(burst...)
}

// randomFloater places f at a random column with a 0-5s delay and a
// 10-30s rise.
func (p *Page) randomFloater(f dom.Floater) dom.Floater {
	f.Column = p.rng.Float64()
	f.Delay = time.Duration(p.rng.Float64() * float64(5*time.Second))
	f.Duration = 10*time.Second + time.Duration(p.rng.Float64()*float64(20*time.Second))
	f.Born = p.clock.Now()
	return f
}
