package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSnake loads the game configuration.
// Search order: customPath -> ~/.snake/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Fields missing from a file keep their default values.
func LoadSnake(customPath string) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "snake.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	var embedded SnakeConfig
	if err := yaml.Unmarshal(defaultSnakeYAML, &embedded); err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file over the defaults.
func tryLoad(path string) (SnakeConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SnakeConfig{}, false
	}
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}

// Overrides are command-line values layered over the loaded file.
// Zero values leave the file's setting alone.
type Overrides struct {
	Color  string
	TickMS int
	Speed  string
}

// Apply layers o over cfg. An explicit tick wins over a speed preset.
func (o Overrides) Apply(cfg *SnakeConfig) error {
	if o.Speed != "" {
		preset, err := ParseSpeedPreset(o.Speed)
		if err != nil {
			return err
		}
		ApplySpeedPreset(cfg, preset)
	}
	if o.TickMS != 0 {
		if o.TickMS < 0 {
			return fmt.Errorf("tick must be positive, got %d", o.TickMS)
		}
		cfg.Timing.TickMS = o.TickMS
	}
	if o.Color != "" {
		cfg.Snake.Color = o.Color
	}
	return nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
