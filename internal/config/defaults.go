package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration. It matches the
// embedded defaults/snake.yaml and is used when that file cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Snake: SnakeAppearance{
			Color: "#228b22",
		},
		Timing: Timing{
			TickMS:       80,
			LosingTickMS: 10,
		},
		Scoring: Scoring{
			PreyPoints: 10,
			GrowScale:  1,
		},
		Setup: Setup{
			Colors: []ColorOption{
				{Name: "Forest", Value: "#228b22"},
				{Name: "Lime", Value: "#32cd32"},
				{Name: "Ocean", Value: "#1e90ff"},
				{Name: "Gold", Value: "#ffd700"},
				{Name: "Violet", Value: "#9400d3"},
			},
			Speeds: []SpeedOption{
				{Name: "Slow", TickMS: 120},
				{Name: "Normal", TickMS: 80},
				{Name: "Fast", TickMS: 50},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
