// Package palette provides the color conversion, hue allocation and gradient
// operations behind the MCP color tools.
//
// All functions in this package are pure: they perform no I/O, hold no shared
// state and are safe to call concurrently from multiple goroutines.
//
// # Color Representation
//
// Three representations are supported:
//   - RGB: three integer channels, each 0-255
//   - HSV: Hue (0-360), Saturation (0-100), Value (0-100)
//   - Hex: 6-character string "RRGGBB", uppercase on output, case-insensitive
//     on input, optionally prefixed with a symbol such as "#"
//
// # Hue Allocation
//
// AssignColors partitions a hue range into equal integer steps, one per item,
// and returns an insertion-ordered Assignment from label to hex color. The
// step size is truncated to a whole number of degrees, so a range that does
// not divide evenly leaves a gap after the last item.
//
// # Gradients
//
// LinearGradient interpolates between two hex colors in RGB space. Channel
// values are truncated, not rounded, so intermediate colors lean slightly
// toward the start color and the last element may fall one unit short of
// the finish color.
//
// # Error Handling
//
// Out-of-range components return a *RangeError naming the offending
// parameter; malformed hex strings return a *FormatError. Both unwrap to the
// sentinels ErrOutOfRange and ErrInvalidHex for use with errors.Is.
// Duplicate labels and empty inputs return ErrDuplicateLabel and
// ErrDegenerateSize respectively.
package palette
