package config

import (
	"fmt"
	"strings"
)

// SpeedPreset is a named tick interval selectable from the command line.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
)

// ParseSpeedPreset parses a preset name, case-insensitively.
func ParseSpeedPreset(s string) (SpeedPreset, error) {
	switch p := SpeedPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case SpeedSlow, SpeedNormal, SpeedFast:
		return p, nil
	default:
		return "", fmt.Errorf("unknown speed %q (want slow, normal or fast)", s)
	}
}

// TickForPreset returns the built-in tick interval in milliseconds.
func TickForPreset(p SpeedPreset) int {
	switch p {
	case SpeedSlow:
		return 120
	case SpeedFast:
		return 50
	default:
		return 80
	}
}

// ApplySpeedPreset sets the tick interval from a preset. A setup speed
// option with the same name takes precedence over the built-in value.
func ApplySpeedPreset(cfg *SnakeConfig, p SpeedPreset) {
	for _, opt := range cfg.Setup.Speeds {
		if strings.EqualFold(opt.Name, string(p)) {
			cfg.Timing.TickMS = opt.TickMS
			return
		}
	}
	cfg.Timing.TickMS = TickForPreset(p)
}
