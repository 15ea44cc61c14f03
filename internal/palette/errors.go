package palette

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrOutOfRange is wrapped by every *RangeError.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidHex is wrapped by every *FormatError.
	ErrInvalidHex = errors.New("invalid hex color")

	// ErrDuplicateLabel is returned when AssignColors receives repeated labels.
	ErrDuplicateLabel = errors.New("duplicate item is not allowed in the input")

	// ErrDegenerateSize is returned for inputs too small to partition or
	// interpolate: zero items to AssignColors, or n < 1 to LinearGradient.
	ErrDegenerateSize = errors.New("degenerate size")
)

// RangeError reports a color component outside its documented bounds.
type RangeError struct {
	Param string  // Parameter name, e.g. "r (red)" or "h (hue)"
	Value float64 // The rejected value
	Min   float64 // Inclusive lower bound
	Max   float64 // Inclusive upper bound
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s value %g out of range (%g-%g)", e.Param, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// FormatError reports a hex string that could not be decoded.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid hex color %q: %s", e.Input, e.Reason)
}

func (e *FormatError) Unwrap() error { return ErrInvalidHex }

func checkRange(param string, value, min, max float64) error {
	if math.IsNaN(value) || value < min || value > max {
		return &RangeError{Param: param, Value: value, Min: min, Max: max}
	}
	return nil
}
