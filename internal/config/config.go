// Package config provides YAML-based configuration loading for the game:
// snake color, tick timing, scoring and the options offered on the setup
// screen.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// SnakeConfig contains all configuration for the game.
type SnakeConfig struct {
	Snake   SnakeAppearance `yaml:"snake"`
	Timing  Timing          `yaml:"timing"`
	Scoring Scoring         `yaml:"scoring"`
	Setup   Setup           `yaml:"setup"`
}

// SnakeAppearance defines how the snake is drawn.
type SnakeAppearance struct {
	Color string `yaml:"color"`
}

// Timing defines tick intervals in milliseconds.
type Timing struct {
	TickMS       int `yaml:"tick_ms"`
	LosingTickMS int `yaml:"losing_tick_ms"`
}

// Scoring defines what eating a prey is worth.
type Scoring struct {
	PreyPoints int `yaml:"prey_points"`
	GrowScale  int `yaml:"grow_scale"`
}

// Setup lists the choices offered on the pre-game setup screen.
type Setup struct {
	Colors []ColorOption `yaml:"colors"`
	Speeds []SpeedOption `yaml:"speeds"`
}

// ColorOption is a named snake color.
type ColorOption struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// SpeedOption is a named tick interval.
type SpeedOption struct {
	Name   string `yaml:"name"`
	TickMS int    `yaml:"tick_ms"`
}

// Interval returns the option's tick interval.
func (o SpeedOption) Interval() time.Duration {
	return time.Duration(o.TickMS) * time.Millisecond
}

// Validate checks the configuration and normalizes colors in place.
// All problems are reported together.
func (c *SnakeConfig) Validate() error {
	var errs []error

	if col, err := core.ParseColor(c.Snake.Color); err != nil {
		errs = append(errs, fmt.Errorf("snake.color: %w", err))
	} else {
		c.Snake.Color = col.String()
	}

	if c.Timing.TickMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_ms must be positive, got %d", c.Timing.TickMS))
	}
	if c.Timing.LosingTickMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.losing_tick_ms must be positive, got %d", c.Timing.LosingTickMS))
	}
	if c.Scoring.PreyPoints < 0 {
		errs = append(errs, fmt.Errorf("scoring.prey_points must not be negative, got %d", c.Scoring.PreyPoints))
	}
	if c.Scoring.GrowScale < 0 {
		errs = append(errs, fmt.Errorf("scoring.grow_scale must not be negative, got %d", c.Scoring.GrowScale))
	}

	if len(c.Setup.Colors) == 0 {
		errs = append(errs, errors.New("setup.colors must not be empty"))
	}
	for i := range c.Setup.Colors {
		opt := &c.Setup.Colors[i]
		col, err := core.ParseColor(opt.Value)
		if err != nil {
			errs = append(errs, fmt.Errorf("setup.colors[%d]: %w", i, err))
			continue
		}
		opt.Value = col.String()
		if opt.Name == "" {
			opt.Name = opt.Value
		}
	}

	if len(c.Setup.Speeds) == 0 {
		errs = append(errs, errors.New("setup.speeds must not be empty"))
	}
	for i, opt := range c.Setup.Speeds {
		if opt.TickMS <= 0 {
			errs = append(errs, fmt.Errorf("setup.speeds[%d] (%s): tick_ms must be positive, got %d", i, opt.Name, opt.TickMS))
		}
	}

	return errors.Join(errs...)
}

// Rules converts the configuration into engine rules.
func (c SnakeConfig) Rules() snake.Rules {
	return snake.Rules{
		TickInterval:   time.Duration(c.Timing.TickMS) * time.Millisecond,
		LosingInterval: time.Duration(c.Timing.LosingTickMS) * time.Millisecond,
		GrowScale:      c.Scoring.GrowScale,
		PreyPoints:     c.Scoring.PreyPoints,
	}
}

// SnakeColor returns the configured snake color. Call Validate first.
func (c SnakeConfig) SnakeColor() core.Color {
	return core.Color(c.Snake.Color)
}

// ColorIndex returns the palette index of the configured snake color,
// appending a "Custom" entry when it is not in the palette.
func (c *SnakeConfig) ColorIndex() int {
	for i, opt := range c.Setup.Colors {
		if opt.Value == c.Snake.Color {
			return i
		}
	}
	c.Setup.Colors = append(c.Setup.Colors, ColorOption{Name: "Custom", Value: c.Snake.Color})
	return len(c.Setup.Colors) - 1
}

// SpeedIndex returns the index of the speed option matching the configured
// tick, appending a "Custom" entry when none matches.
func (c *SnakeConfig) SpeedIndex() int {
	for i, opt := range c.Setup.Speeds {
		if opt.TickMS == c.Timing.TickMS {
			return i
		}
	}
	c.Setup.Speeds = append(c.Setup.Speeds, SpeedOption{Name: "Custom", TickMS: c.Timing.TickMS})
	return len(c.Setup.Speeds) - 1
}
