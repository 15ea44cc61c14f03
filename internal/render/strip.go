package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// GradientStrip lays out colors left to right as swatches of the given size.
//
// Colors are hex strings with an optional symbol prefix. The result is
// len(colors)*swatchWidth pixels wide and height pixels tall.
func GradientStrip(colors []string, symbol string, swatchWidth, height int) (*image.NRGBA, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("no colors to draw")
	}
	if swatchWidth <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid swatch size %dx%d", swatchWidth, height)
	}

	strip := imaging.New(len(colors)*swatchWidth, height, color.White)
	for i, hex := range colors {
		fill, err := fillColor(hex, symbol)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i, err)
		}
		swatch := imaging.New(swatchWidth, height, fill)
		strip = imaging.Paste(strip, swatch, image.Pt(i*swatchWidth, 0))
	}

	return strip, nil
}
