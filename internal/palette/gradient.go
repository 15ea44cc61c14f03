package palette

import "fmt"

// LinearGradient returns n colors stepping from start toward finish in RGB space.
//
// Both colors are 6-digit hex strings without a symbol prefix. The first
// element is start re-encoded in uppercase. Each later element t (1..n-1) has
// channels
//
//	int(start + t/(n-1) * (finish - start))
//
// truncated toward zero, so the last element can fall short of finish.
// When n is 1 the result holds only the start color. n < 1 returns
// ErrDegenerateSize.
func LinearGradient(start, finish string, n int) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: gradient needs at least one color, got %d", ErrDegenerateSize, n)
	}

	sr, sg, sb, err := HexToRGB(start)
	if err != nil {
		return nil, fmt.Errorf("invalid start color: %w", err)
	}
	fr, fg, fb, err := HexToRGB(finish)
	if err != nil {
		return nil, fmt.Errorf("invalid finish color: %w", err)
	}

	first, err := RGBToHex(sr, sg, sb)
	if err != nil {
		return nil, err
	}

	colors := make([]string, 0, n)
	colors = append(colors, first)
	if n == 1 {
		return colors, nil
	}

	steps := float64(n - 1)
	for t := 1; t < n; t++ {
		frac := float64(t) / steps
		hex, err := RGBToHex(lerp(sr, fr, frac), lerp(sg, fg, frac), lerp(sb, fb, frac))
		if err != nil {
			return nil, err
		}
		colors = append(colors, hex)
	}

	return colors, nil
}

func lerp(from, to int, frac float64) int {
	return int(float64(from) + frac*float64(to-from))
}
