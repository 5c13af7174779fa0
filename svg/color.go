package svg

import (
	"fmt"
	"strconv"
)

// Color is an SVG paint value. The zero value renders as "none".
type Color struct {
	name string
}

// NoneColor leaves a shape unpainted
var NoneColor = Color{}

// Named returns a color given by keyword or any other literal SVG paint
func Named(name string) Color { return Color{name: name} }

// RGB returns an opaque color
func RGB(r, g, b uint8) Color {
	return Color{name: fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)}
}

// RGBA returns a color with opacity in [0, 1]
func RGBA(r, g, b uint8, opacity float64) Color {
	return Color{name: fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, formatNumber(opacity))}
}

func (c Color) String() string {
	if c.name == "" {
		return "none"
	}
	return c.name
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
