package render

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Legend layout in pixels.
const (
	DefaultLegendWidth = 320
	legendMargin       = 12
	legendRowHeight    = 24
	legendMarkerRadius = 6
	legendLabelGap     = 10
)

// ImageRenderer draws a legend image and saves it to Path.
//
// Each entry is one row: a filled circle in the entry's color followed by
// its label in black on a white background. The image grows vertically with
// the number of entries.
type ImageRenderer struct {
	Path   string // Output file; the extension selects the encoder
	Width  int    // Image width; DefaultLegendWidth if zero
	Symbol string // Prefix carried by the entry colors, usually "#"
}

// Render draws entries and writes the image to r.Path.
func (r *ImageRenderer) Render(entries []PlotEntry) error {
	img, err := r.Draw(entries)
	if err != nil {
		return err
	}
	return SaveImage(r.Path, img)
}

// Draw renders entries to an in-memory image without saving it.
func (r *ImageRenderer) Draw(entries []PlotEntry) (image.Image, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("nothing to plot")
	}

	width := r.Width
	if width <= 0 {
		width = DefaultLegendWidth
	}
	height := legendMargin*2 + len(entries)*legendRowHeight

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	for i, e := range entries {
		fill, err := fillColor(e.Hex, r.Symbol)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", e.Label, err)
		}

		cx, cy := markerCenter(i)
		dc.SetColor(fill)
		dc.DrawCircle(cx, cy, legendMarkerRadius)
		dc.Fill()

		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(e.Label, cx+legendMarkerRadius+legendLabelGap, cy, 0, 0.5)
	}

	return dc.Image(), nil
}

// markerCenter returns the center of the marker for row i.
func markerCenter(i int) (float64, float64) {
	x := float64(legendMargin + legendMarkerRadius)
	y := float64(legendMargin + i*legendRowHeight + legendRowHeight/2)
	return x, y
}
