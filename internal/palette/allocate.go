package palette

import (
	"fmt"
	"math"
)

// Options controls hue allocation in AssignColors.
//
// Use DefaultOptions and override fields as needed; the zero value is a
// valid but rarely useful configuration (black, zero-width range).
type Options struct {
	Saturation float64 // HSV saturation for every item, 0-100
	Value      float64 // HSV value for every item, 0-100
	Symbol     string  // Prefix prepended to each hex string, e.g. "#"
	StartAngle float64 // First hue in degrees
	EndAngle   float64 // End of the hue range in degrees
	Clockwise  bool    // Step toward decreasing hue when true
}

// DefaultOptions returns saturation 50, value 100, symbol "#", and the full
// 0-360 range stepped counterclockwise.
func DefaultOptions() Options {
	return Options{
		Saturation: 50,
		Value:      100,
		Symbol:     "#",
		StartAngle: 0,
		EndAngle:   360,
		Clockwise:  false,
	}
}

// AssignColors gives every item its own evenly spaced hue.
//
// Parameters:
//   - items: Labels to color. Must be non-empty and pairwise distinct.
//   - opts: Saturation, value, symbol and hue range applied to all items.
//
// Returns:
//   - *Assignment[K]: One hex color per item, in input order.
//   - error: ErrDuplicateLabel, ErrDegenerateSize, or a *RangeError if the
//     saturation or value is out of bounds or an angle is not finite. No
//     partial result is returned.
//
// # Algorithm
//
// The hue step is the range divided by the item count, truncated to a whole
// number of degrees:
//
//	div  = |trunc((EndAngle - StartAngle) / len(items))|
//	h[i] = StartAngle + d*i*div     (d = -1 when Clockwise, else +1)
//
// Each hue is then wrapped by adding 360 while negative and subtracting 360
// while strictly greater than 360. A hue of exactly 360 is left as is; it
// encodes to the same color as 0.
func AssignColors[K comparable](items []K, opts Options) (*Assignment[K], error) {
	seen := make(map[K]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item]; dup {
			return nil, ErrDuplicateLabel
		}
		seen[item] = struct{}{}
	}

	num := len(items)
	if num == 0 {
		return nil, fmt.Errorf("%w: cannot partition zero items", ErrDegenerateSize)
	}

	if err := checkRange("s (saturation)", opts.Saturation, 0, 100); err != nil {
		return nil, err
	}
	if err := checkRange("v (value)", opts.Value, 0, 100); err != nil {
		return nil, err
	}

	if err := checkRange("start angle", opts.StartAngle, -math.MaxFloat64, math.MaxFloat64); err != nil {
		return nil, err
	}
	if err := checkRange("end angle", opts.EndAngle, -math.MaxFloat64, math.MaxFloat64); err != nil {
		return nil, err
	}

	div := math.Abs(math.Trunc((opts.EndAngle - opts.StartAngle) / float64(num)))

	d := 1.0
	if opts.Clockwise {
		d = -1.0
	}

	result := newAssignment[K](num)
	for i, item := range items {
		h := wrapHue(opts.StartAngle + d*float64(i)*div)

		hex, err := HSVToHex(h, opts.Saturation, opts.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to color item %d: %w", i, err)
		}
		result.add(item, opts.Symbol+hex)
	}

	return result, nil
}

// wrapHue folds h into [0, 360]. Negative hues land in [0, 360) and hues
// above 360 land in (0, 360], so an exact multiple of 360 becomes 360.
func wrapHue(h float64) float64 {
	switch {
	case h < 0:
		h = math.Mod(h, 360)
		if h < 0 {
			h += 360
		}
	case h > 360:
		h = math.Mod(h, 360)
		if h == 0 {
			h = 360
		}
	}
	return h
}
