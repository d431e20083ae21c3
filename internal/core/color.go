package core

import (
	"fmt"
	"strings"
)

// Color is a palette index shared by every drawing surface.
// Hosts map it to ANSI 256 codes (terminal) or RGBA (window).
type Color uint8

// Palette entries.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	colorCount
)

var colorNames = [colorCount]string{
	"default", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright_red", "bright_green", "bright_yellow", "bright_blue",
	"bright_magenta", "bright_cyan", "bright_white", "orange", "gray",
}

// String returns the palette name of the color.
func (c Color) String() string {
	if c >= colorCount {
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
	return colorNames[c]
}

// ParseColor looks up a palette entry by name (case-insensitive).
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return ColorDefault, fmt.Errorf("core: unknown color %q", name)
}

// UnmarshalText lets colors appear by name in YAML settings.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
