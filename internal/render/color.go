package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/color-tools-mcp/internal/palette"
)

// fillColor decodes a hex color, optionally prefixed with symbol, into an
// opaque fill usable by both gg and imaging.
func fillColor(hex, symbol string) (colorful.Color, error) {
	r, g, b, err := palette.ParseHex(hex, symbol)
	if err != nil {
		return colorful.Color{}, err
	}
	return colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}, nil
}
