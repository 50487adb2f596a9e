package render

import (
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Theme holds the chart palette.
type Theme struct {
	Background drawing.Color
	Grid       drawing.Color
	Label      drawing.Color
	Bullish    drawing.Color
	Bearish    drawing.Color
	OrderBlock drawing.Color
	FVG        drawing.Color
	Liquidity  drawing.Color
}

// DefaultTheme is the dark terminal palette.
var DefaultTheme = Theme{
	Background: drawing.ColorFromHex("0a0e17"),
	Grid:       withAlpha(drawing.ColorWhite, 0.05),
	Label:      withAlpha(drawing.ColorWhite, 0.3),
	Bullish:    drawing.ColorFromHex("00d4ff"),
	Bearish:    drawing.ColorFromHex("ff6b6b"),
	OrderBlock: drawing.ColorFromHex("00d4ff"),
	FVG:        drawing.ColorFromHex("ffc107"),
	Liquidity:  drawing.ColorFromHex("ff6b6b"),
}

// withAlpha returns c with its alpha replaced by a (0.0~1.0).
func withAlpha(c drawing.Color, a float64) drawing.Color {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(a * 255))}
}
