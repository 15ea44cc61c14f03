// Package render turns palette results into something a person can look at.
//
// It sits outside the color core: render imports palette, never the other
// way around. Callers hand a Renderer an ordered list of PlotEntry values,
// usually built with EntriesFrom, and the Renderer produces its artifact.
//
// # Renderers
//
//   - ScriptRenderer writes a gnuplot command sequence that plots one colored
//     point per label and sends the legend to an EPS file.
//   - ImageRenderer draws the legend directly to a PNG, JPEG or BMP file.
//
// GradientStrip is a separate helper that lays out a gradient sequence as
// equal-width swatches; SaveImage writes any image using the encoder that
// matches the file extension.
package render
