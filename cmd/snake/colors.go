package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List setup screen colors and speeds",
	Long:  `Shows the snake colors and speeds offered on the setup screen.`,
	Args:  cobra.NoArgs,
	RunE:  runColors,
}

func init() {
	addPlayFlags(colorsCmd)
}

func runColors(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	colorIdx := cfg.ColorIndex()
	speedIdx := cfg.SpeedIndex()

	fmt.Println("Colors:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, c := range cfg.Setup.Colors {
		maxNameLen = max(maxNameLen, len(c.Name))
	}

	fmt.Printf("    %-*s  %-8s  %s\n", maxNameLen, "Name", "Value", "Swatch")
	fmt.Printf("    %-*s  %-8s  %s\n", maxNameLen, "----", "-----", "------")
	for i, c := range cfg.Setup.Colors {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Value)).Render("████")
		fmt.Printf("  %s%-*s  %-8s  %s\n", marker(i == colorIdx), maxNameLen, c.Name, c.Value, swatch)
	}

	fmt.Println()
	fmt.Println("Speeds:")
	fmt.Println()

	maxNameLen = 4
	for _, s := range cfg.Setup.Speeds {
		maxNameLen = max(maxNameLen, len(s.Name))
	}

	fmt.Printf("    %-*s  %s\n", maxNameLen, "Name", "Tick")
	fmt.Printf("    %-*s  %s\n", maxNameLen, "----", "----")
	for i, s := range cfg.Setup.Speeds {
		fmt.Printf("  %s%-*s  %dms\n", marker(i == speedIdx), maxNameLen, s.Name, s.TickMS)
	}

	fmt.Println()
	fmt.Println("Run 'snake play --color <value> --speed <name>' to preselect.")
	return nil
}

func marker(selected bool) string {
	if selected {
		return "* "
	}
	return "  "
}
