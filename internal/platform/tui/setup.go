package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// setupField is a row of the setup form.
type setupField int

const (
	fieldColor setupField = iota
	fieldSpeed
	fieldCount
)

// SetupResult is what a key press on the setup screen asks for.
type SetupResult int

const (
	SetupNone SetupResult = iota
	SetupStart
	SetupQuit
)

var (
	setupTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(core.ColorForest)).
			MarginBottom(1)
	setupLabelStyle = lipgloss.NewStyle().
			Width(8).
			Foreground(lipgloss.Color(core.ColorGray))
	setupActiveLabelStyle = setupLabelStyle.
				Foreground(lipgloss.Color(core.ColorWhite)).
				Bold(true)
	setupNoteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(core.ColorGray)).
			MarginTop(1)
)

// Setup is the pre-game form: snake color, speed and a start trigger.
// It is shown before the first game and again after every reset.
type Setup struct {
	colors   []config.ColorOption
	speeds   []config.SpeedOption
	colorIdx int
	speedIdx int
	field    setupField
	keys     SetupKeyMap
	help     help.Model
}

// NewSetup creates a setup form from the configuration, pre-selecting
// the configured color and speed.
func NewSetup(cfg config.SnakeConfig) Setup {
	colorIdx := cfg.ColorIndex()
	speedIdx := cfg.SpeedIndex()

	return Setup{
		colors:   cfg.Setup.Colors,
		speeds:   cfg.Setup.Speeds,
		colorIdx: colorIdx,
		speedIdx: speedIdx,
		keys:     DefaultSetupKeyMap(),
		help:     help.New(),
	}
}

// HandleKey applies a key press to the form.
func (s *Setup) HandleKey(msg tea.KeyMsg) SetupResult {
	switch {
	case key.Matches(msg, s.keys.Quit):
		return SetupQuit
	case key.Matches(msg, s.keys.Start):
		return SetupStart
	case key.Matches(msg, s.keys.PrevField):
		s.field = setupField(core.Wrap(int(s.field)-1, int(fieldCount)))
	case key.Matches(msg, s.keys.NextField):
		s.field = setupField(core.Wrap(int(s.field)+1, int(fieldCount)))
	case key.Matches(msg, s.keys.PrevValue):
		s.cycle(-1)
	case key.Matches(msg, s.keys.NextValue):
		s.cycle(1)
	}
	return SetupNone
}

func (s *Setup) cycle(delta int) {
	switch s.field {
	case fieldColor:
		s.colorIdx = core.Wrap(s.colorIdx+delta, len(s.colors))
	case fieldSpeed:
		s.speedIdx = core.Wrap(s.speedIdx+delta, len(s.speeds))
	}
}

// Color returns the selected snake color.
func (s Setup) Color() core.Color {
	return core.Color(s.colors[s.colorIdx].Value)
}

// ColorName returns the name of the selected color.
func (s Setup) ColorName() string {
	return s.colors[s.colorIdx].Name
}

// Interval returns the selected tick interval.
func (s Setup) Interval() time.Duration {
	return s.speeds[s.speedIdx].Interval()
}

// SpeedName returns the name of the selected speed.
func (s Setup) SpeedName() string {
	return s.speeds[s.speedIdx].Name
}

// View renders the form centered in a width x height area. note is shown
// under the form when non-empty.
func (s Setup) View(width, height int, note string) string {
	var b strings.Builder

	b.WriteString(setupTitleStyle.Render("S N A K E"))
	b.WriteString("\n")

	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color())).Render("████")
	b.WriteString(s.row(fieldColor, "Color", fmt.Sprintf("%s %s", swatch, s.ColorName())))
	b.WriteString("\n")
	b.WriteString(s.row(fieldSpeed, "Speed", fmt.Sprintf("%s (%dms)", s.SpeedName(), s.Interval().Milliseconds())))
	b.WriteString("\n")

	if note != "" {
		b.WriteString(setupNoteStyle.Render(note))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.help.View(s.keys))

	content := lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String())
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s Setup) row(f setupField, label, value string) string {
	cursor := "  "
	style := setupLabelStyle
	if s.field == f {
		cursor = "> "
		style = setupActiveLabelStyle
	}
	return fmt.Sprintf("%s%s ‹ %s ›", cursor, style.Render(label), value)
}
