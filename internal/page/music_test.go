package page

import (
	"errors"
	"testing"

	"valentine/internal/config"
)

func musicConfig() config.Config {
	cfg := config.Default()
	cfg.Music.Enabled = true
	cfg.Music.MusicURL = "https://example.com/song.mp3"
	return cfg
}

func TestSetupMusicDisabled(t *testing.T) {
	h := newHarness(t, config.Default())
	h.page.SetupMusic()
	if !h.el(t, ElMusicControls).Removed {
		t.Error("controls should be removed when music is disabled")
	}
	if h.audio.plays != 0 || h.audio.source != "" {
		t.Error("disabled music touched the audio handle")
	}
}

func TestSetupMusicAutoplay(t *testing.T) {
	cfg := musicConfig()
	cfg.Music.Volume = 0

	h := newHarness(t, cfg)
	h.page.SetupMusic()
	if h.audio.source != cfg.Music.MusicURL {
		t.Errorf("source = %q; want %q", h.audio.source, cfg.Music.MusicURL)
	}
	if h.audio.volume != 0.5 {
		t.Errorf("volume = %v; want 0.5 for an unset volume", h.audio.volume)
	}
	if h.audio.loads != 1 || h.audio.plays != 1 {
		t.Errorf("loads=%d plays=%d; want 1 and 1", h.audio.loads, h.audio.plays)
	}
	if got := h.el(t, ElMusicToggle).Text; got != cfg.Music.StopText {
		t.Errorf("toggle = %q; want %q", got, cfg.Music.StopText)
	}
}

func TestSetupMusicAutoplayBlocked(t *testing.T) {
	cfg := musicConfig()
	h := newHarness(t, cfg)
	h.el(t, ElMusicToggle).Text = "?"
	h.audio.err = errors.New("NotAllowedError")
	h.page.SetupMusic()
	if got := h.el(t, ElMusicToggle).Text; got != cfg.Music.StartText {
		t.Errorf("toggle = %q; want %q", got, cfg.Music.StartText)
	}
}

func TestSetupMusicNoAutoplay(t *testing.T) {
	cfg := musicConfig()
	cfg.Music.Autoplay = false
	h := newHarness(t, cfg)
	h.page.SetupMusic()
	if h.audio.plays != 0 {
		t.Errorf("plays = %d; want 0 without autoplay", h.audio.plays)
	}
}

func TestToggleMusic(t *testing.T) {
	cfg := musicConfig()
	cfg.Music.Autoplay = false
	h := newHarness(t, cfg)
	h.page.SetupMusic()
	toggle := h.el(t, ElMusicToggle)

	h.page.ToggleMusic()
	if h.audio.Paused() || toggle.Text != cfg.Music.StopText {
		t.Errorf("after first toggle paused=%v label=%q", h.audio.Paused(), toggle.Text)
	}
	h.page.ToggleMusic()
	if !h.audio.Paused() || toggle.Text != cfg.Music.StartText {
		t.Errorf("after second toggle paused=%v label=%q", h.audio.Paused(), toggle.Text)
	}
}
