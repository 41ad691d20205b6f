package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

var (
	flagColor string
	flagTick  int
	flagSpeed string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game. A setup screen lets you pick the snake color and
speed before each run.

Controls:
  W/A/S/D, arrows  - Steer
  Enter            - Start (setup screen)
  Esc              - Quit (setup screen)
  Q/Ctrl+C         - Quit

Speed options:
  slow    - 120ms per move
  normal  - 80ms per move
  fast    - 50ms per move

Examples:
  snake play
  snake play --speed fast
  snake play --tick 65 --color 10
  snake play --seed 42 --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the gameplay flags on cmd.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagColor, "color", "", "Snake color: #rrggbb or ANSI code 0-255")
	cmd.Flags().IntVar(&flagTick, "tick", 0, "Tick interval in milliseconds")
	cmd.Flags().StringVar(&flagSpeed, "speed", "", "Speed preset: slow, normal, fast")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	engine := snake.New(cfg.Rules(), rand.New(rand.NewSource(rt.Seed)))

	logger.Info("starting",
		"seed", rt.Seed,
		"tick", cfg.Timing.TickMS,
		"losing_tick", cfg.Timing.LosingTickMS,
		"screen", fmt.Sprintf("%dx%d", width, height),
	)

	runErr := tui.Run(tui.Options{
		Engine:  engine,
		Config:  cfg,
		Runtime: rt,
		Logger:  logger,
	})
	if runErr != nil {
		logger.Error("program exited", "err", runErr)
		return runErr
	}
	logger.Info("bye")
	return nil
}

// loadConfig loads the config file, layers the flag overrides on top and
// validates the result.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}

	overrides := config.Overrides{
		Color:  flagColor,
		TickMS: flagTick,
		Speed:  flagSpeed,
	}
	if err := overrides.Apply(&cfg); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
