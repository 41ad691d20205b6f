// Package render draws engine snapshots onto a core.Screen.
package render

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Renderer draws one frame of the game.
type Renderer interface {
	Render(frame snake.Snapshot, dst *core.Screen)
}

// Board geometry in terminal cells. Each terminal row shows two grid rows
// using half-block characters, so grid cells come out roughly square.
const (
	gridCols = snake.Width
	gridRows = (snake.Height + 1) / 2

	// MinWidth and MinHeight are the smallest screen that fits the board.
	MinWidth  = gridCols + 2
	MinHeight = gridRows + 2
)

const gameOverText = "Game Over"

// Board renders the grid inside a frame, with the score label set into
// the top border.
type Board struct {
	SnakeColor  core.Color
	PreyColor   core.Color
	TextColor   core.Color
	BorderColor core.Color
}

// NewBoard returns a Board drawing the snake in snakeColor.
func NewBoard(snakeColor core.Color) *Board {
	return &Board{
		SnakeColor:  snakeColor,
		PreyColor:   core.ColorPrey,
		TextColor:   core.ColorWhite,
		BorderColor: core.ColorBorder,
	}
}

// Layout holds the screen areas used by the board.
type Layout struct {
	Frame core.Rect // Border around the grid; the score sits on its top edge
	Grid  core.Rect // Playfield, one terminal cell per column and two grid rows
}

// LayoutFor centers the board on a w x h screen. Returns false when the
// screen is too small.
func LayoutFor(w, h int) (Layout, bool) {
	if w < MinWidth || h < MinHeight {
		return Layout{}, false
	}

	frame := core.NewRect((w-MinWidth)/2, (h-MinHeight)/2, MinWidth, MinHeight)

	return Layout{
		Frame: frame,
		Grid:  core.NewRect(frame.X+1, frame.Y+1, gridCols, gridRows),
	}, true
}

// Render draws frame into dst. The Game Over banner is drawn on every
// frame of the losing animation.
func (b *Board) Render(frame snake.Snapshot, dst *core.Screen) {
	dst.Clear()

	layout, ok := LayoutFor(dst.Width(), dst.Height())
	if !ok {
		b.renderTooSmall(dst)
		return
	}

	dst.DrawBox(layout.Frame, b.BorderColor)
	dst.DrawText(layout.Frame.X+2, layout.Frame.Y, ScoreLabel(frame.Score), b.TextColor)

	colors := b.paint(frame)
	for row := 0; row < gridRows; row++ {
		for x := 0; x < gridCols; x++ {
			top := colors[2*row][x]
			var bottom core.Color
			if 2*row+1 < snake.Height {
				bottom = colors[2*row+1][x]
			}
			dst.SetCell(layout.Grid.X+x, layout.Grid.Y+row, halfBlock(top, bottom))
		}
	}

	if frame.State == snake.StateLosing {
		b.renderBanner(dst, layout.Grid, gameOverText)
	}
}

// ScoreLabel formats the score as shown in the board's top border.
func ScoreLabel(score int) string {
	return fmt.Sprintf(" Score: %d ", score)
}

// paint returns the color of every grid cell. The prey is painted last so
// it stays visible when it spawns under the snake.
func (b *Board) paint(frame snake.Snapshot) [snake.Height][snake.Width]core.Color {
	var colors [snake.Height][snake.Width]core.Color

	for _, seg := range frame.Snake {
		if seg.InBounds() {
			colors[seg.Y][seg.X] = b.SnakeColor
		}
	}
	if frame.Prey.InBounds() {
		colors[frame.Prey.Y][frame.Prey.X] = b.PreyColor
	}
	return colors
}

// halfBlock combines two vertically stacked grid cells into one terminal cell.
func halfBlock(top, bottom core.Color) core.Cell {
	switch {
	case top == core.ColorDefault && bottom == core.ColorDefault:
		return core.Cell{Rune: ' '}
	case top == bottom:
		return core.Cell{Rune: '█', Fg: top}
	case bottom == core.ColorDefault:
		return core.Cell{Rune: '▀', Fg: top}
	case top == core.ColorDefault:
		return core.Cell{Rune: '▄', Fg: bottom}
	default:
		return core.Cell{Rune: '▀', Fg: top, Bg: bottom}
	}
}

// renderBanner draws a boxed one-line message centered in area.
func (b *Board) renderBanner(dst *core.Screen, area core.Rect, text string) {
	w := len(text) + 4
	h := 3
	cx, cy := area.Center()
	box := core.NewRect(cx-w/2, cy-h/2, w, h)

	dst.FillRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box, b.TextColor)
	dst.DrawTextCentered(box, box.Y+1, text, b.TextColor)
}

func (b *Board) renderTooSmall(dst *core.Screen) {
	area := dst.Bounds()
	_, cy := area.Center()
	dst.DrawTextCentered(area, cy-1, "Terminal too small", b.TextColor)
	dst.DrawTextCentered(area, cy, fmt.Sprintf("Need %dx%d", MinWidth, MinHeight), b.TextColor)
}
