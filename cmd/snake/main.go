// snake is a terminal Snake game.
//
// Usage:
//
//	snake play      - Play (default when no command is given)
//	snake colors    - List the setup screen colors and speeds
//	snake config    - Print the effective configuration as YAML
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible prey placement
//	--log-file <path>    - Write logs to a file (discarded by default)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
	flagConfig   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a terminal rendition of the classic game: steer the snake
onto the prey to grow, and avoid the walls and your own tail.

Available commands:
  play     - Play the game (default)
  colors   - Show the colors and speeds offered on the setup screen
  config   - Print the effective configuration

Examples:
  snake
  snake play --speed fast --color "#ff8800"
  snake config --config ./my-snake.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(colorsCmd)
	rootCmd.AddCommand(configCmd)
}
