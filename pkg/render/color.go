package render

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var namedColors = map[string]string{
	"black":  "#000000",
	"white":  "#ffffff",
	"red":    "#d62728",
	"blue":   "#1f77b4",
	"green":  "#2ca02c",
	"orange": "#ff7f0e",
	"gray":   "#7f7f7f",
	"grey":   "#7f7f7f",
	"purple": "#9467bd",
}

// ParseColor converts a colour string to a color.Color. See the package
// documentation for accepted forms.
func ParseColor(s string) (color.Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, ok := namedColors[s]; ok {
		s = hex
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, false
		}
		return c.Clamped(), true
	}
	if g, err := strconv.ParseFloat(s, 64); err == nil && g >= 0 && g <= 1 {
		return colorful.Color{R: g, G: g, B: g}, true
	}
	return nil, false
}

func colorOr(s string, fallback color.Color) color.Color {
	if c, ok := ParseColor(s); ok {
		return c
	}
	return fallback
}
