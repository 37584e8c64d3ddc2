package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var hexColor = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// IsValidHex reports whether s is a "#rgb" or "#rrggbb" color.
func IsValidHex(s string) bool { return hexColor.MatchString(s) }

// Validate repairs configuration defects in place and returns one warning
// per repair. It never fails: every defect has a default.
func Validate(cfg *Config) []string {
	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	if strings.TrimSpace(cfg.ValentineName) == "" {
		warn("Valentine's name is not set! Using default.")
		cfg.ValentineName = DefaultName
	}

	for _, slot := range colorSlots(&cfg.Colors) {
		if !IsValidHex(*slot.value) {
			warn("Invalid color for %s! Using default.", slot.name)
			*slot.value = slot.fallback
		}
	}

	if secs, ok := LeadingFloat(cfg.Animations.FloatDuration); ok && secs < 5 {
		warn("Float duration too short! Setting to %s minimum.", MinFloatDuration)
		cfg.Animations.FloatDuration = MinFloatDuration
	}
	if size := cfg.Animations.HeartExplosionSize; size < 1 || size > 3 {
		warn("Heart explosion size should be between 1 and 3! Using default.")
		cfg.Animations.HeartExplosionSize = DefaultExplosionSize
	}

	for _, m := range []struct {
		name  string
		music *Music
	}{
		{"music", &cfg.Music},
		{"music_win", &cfg.MusicWin},
	} {
		if v := m.music.Volume; v < 0 || v > 1 {
			warn("Volume for %s should be between 0 and 1! Using default.", m.name)
			m.music.Volume = DefaultVolume
		}
	}
	if cfg.Music.Enabled && strings.TrimSpace(cfg.Music.MusicURL) == "" {
		warn("Music is enabled but musicUrl is empty! Disabling music.")
		cfg.Music.Enabled = false
	}
	return warnings
}

type colorSlot struct {
	name     string
	value    *string
	fallback string
}

func colorSlots(c *Colors) []colorSlot {
	return []colorSlot{
		{"backgroundStart", &c.BackgroundStart, DefaultColors.BackgroundStart},
		{"backgroundEnd", &c.BackgroundEnd, DefaultColors.BackgroundEnd},
		{"buttonBackground", &c.ButtonBackground, DefaultColors.ButtonBackground},
		{"buttonHover", &c.ButtonHover, DefaultColors.ButtonHover},
		{"textColor", &c.TextColor, DefaultColors.TextColor},
	}
}

// LeadingFloat parses the longest numeric prefix of s, the way CSS-ish
// values such as "15s" or "50px" are read. ok is false when s has no
// numeric prefix.
func LeadingFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	for i := len(s); i > 0; i-- {
		if v, err := strconv.ParseFloat(s[:i], 64); err == nil {
			return v, true
		}
	}
	return 0, false
}
