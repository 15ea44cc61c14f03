package palette

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGBToHex converts 8-bit RGB channels to a 6-character uppercase hex string.
//
// Each channel must lie in 0-255 inclusive. Channels are zero-padded to two
// digits and written in R, G, B order, e.g. RGBToHex(255, 5, 0) == "FF0500".
// The returned string carries no symbol prefix.
func RGBToHex(r, g, b int) (string, error) {
	if err := checkRange("r (red)", float64(r), 0, 255); err != nil {
		return "", err
	}
	if err := checkRange("g (green)", float64(g), 0, 255); err != nil {
		return "", err
	}
	if err := checkRange("b (blue)", float64(b), 0, 255); err != nil {
		return "", err
	}
	return fmt.Sprintf("%02X%02X%02X", r, g, b), nil
}

// HSVToHex converts an HSV color to a 6-character uppercase hex string.
//
// Parameters:
//   - h: Hue in degrees, 0-360. 360 lands in the same sector as 0.
//   - s: Saturation percentage, 0-100.
//   - v: Value percentage, 0-100.
//
// # Rounding
//
// Each RGB channel is computed as x*255 and rounded half to even, so 127.5
// becomes 128 and 76.5 becomes 76. Tests pin exact values against this rule.
func HSVToHex(h, s, v float64) (string, error) {
	if err := checkRange("h (hue)", h, 0, 360); err != nil {
		return "", err
	}
	if err := checkRange("s (saturation)", s, 0, 100); err != nil {
		return "", err
	}
	if err := checkRange("v (value)", v, 0, 100); err != nil {
		return "", err
	}

	r, g, b := hsvToRGB(h/360, s/100, v/100)
	return RGBToHex(channel255(r), channel255(g), channel255(b))
}

// hsvToRGB is the six-sector transform on unit inputs. The largest channel
// is always exactly v.
func hsvToRGB(h, s, v float64) (r, g, b float64) {
	if s == 0 {
		return v, v, v
	}

	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch i % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

func channel255(x float64) int {
	return int(math.RoundToEven(x * 255))
}

// HexToRGB decodes a 6-character hex string into RGB channels.
//
// The input must be exactly six hexadecimal digits with no symbol prefix;
// letters may be upper or lower case. Use ParseHex for prefixed input.
func HexToRGB(hex string) (r, g, b int, err error) {
	if len(hex) != 6 {
		return 0, 0, 0, &FormatError{Input: hex, Reason: fmt.Sprintf("expected 6 hex digits, got %d characters", len(hex))}
	}

	var ch [3]int
	for i := range ch {
		pair := hex[i*2 : i*2+2]
		val, perr := strconv.ParseUint(pair, 16, 8)
		if perr != nil {
			return 0, 0, 0, &FormatError{Input: hex, Reason: fmt.Sprintf("%q is not a hex byte", pair)}
		}
		ch[i] = int(val)
	}

	return ch[0], ch[1], ch[2], nil
}

// ParseHex decodes a hex color that may start with symbol, e.g. "#FF8080".
// An empty symbol makes ParseHex equivalent to HexToRGB.
func ParseHex(hex, symbol string) (r, g, b int, err error) {
	if symbol != "" {
		hex = strings.TrimPrefix(hex, symbol)
	}
	return HexToRGB(hex)
}
