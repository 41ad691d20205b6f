package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a terminal color: either a hex RGB value ("#228b22") or an
// ANSI 256-color code ("9"). The zero value is the terminal default.
type Color string

// Colors used by the board and HUD.
const (
	ColorDefault Color = ""
	ColorForest  Color = "#228b22"
	ColorPrey    Color = "9"
	ColorWhite   Color = "15"
	ColorGray    Color = "245"
	ColorBorder  Color = "240"
)

// ParseColor validates s and returns it in canonical form.
// Hex values are lower-cased and expanded to #rrggbb.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ColorDefault, fmt.Errorf("empty color")
	}

	if strings.HasPrefix(s, "#") {
		hex := expandShortHex(s)
		if len(hex) != 7 {
			return ColorDefault, fmt.Errorf("invalid hex color %q: want #rgb or #rrggbb", s)
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return ColorDefault, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return Color(c.Hex()), nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return ColorDefault, fmt.Errorf("invalid color %q: want #rrggbb or an ANSI code 0-255", s)
	}
	return Color(strconv.Itoa(n)), nil
}

// expandShortHex turns "#abc" into "#aabbcc"; other strings pass through.
func expandShortHex(s string) string {
	if len(s) != 4 {
		return s
	}
	return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
}

// String returns the raw color value.
func (c Color) String() string {
	return string(c)
}
