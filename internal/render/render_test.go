package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/color-tools-mcp/internal/palette"
)

// assignTestColors colors labels with the default options
func assignTestColors(t *testing.T, labels ...string) []PlotEntry {
	t.Helper()

	a, err := palette.AssignColors(labels, palette.DefaultOptions())
	if err != nil {
		t.Fatalf("AssignColors failed: %v", err)
	}
	return EntriesFrom(a)
}

// rgbAt returns the 8-bit color of a pixel
func rgbAt(img image.Image, x, y int) (uint8, uint8, uint8) {
	r, g, b, _ := img.At(x, y).RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}

func TestEntriesFrom(t *testing.T) {
	entries := assignTestColors(t, "alpha", "beta")

	if len(entries) != 2 {
		t.Fatalf("len: got %d, want 2", len(entries))
	}

	first := entries[0]
	if first.Label != "alpha" || first.Hex != "#FF8080" {
		t.Errorf("first entry: got (%s,%s), want (alpha,#FF8080)", first.Label, first.Hex)
	}
	if first.Style != "with points pointtype 7 linecolor rgb '#FF8080'" {
		t.Errorf("Style: got %q", first.Style)
	}
	if first.Entry != "'-' using 1:2" {
		t.Errorf("Entry: got %q", first.Entry)
	}
	if entries[1].Label != "beta" {
		t.Errorf("second label: got %s, want beta", entries[1].Label)
	}
}

func TestScriptRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := &ScriptRenderer{W: &buf}

	if err := r.Render(assignTestColors(t, "a", "b", "c")); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	script := buf.String()
	lines := strings.Split(strings.TrimSuffix(script, "\n"), "\n")

	if !strings.Contains(script, "set output 'color_table.eps'") {
		t.Error("script should default to color_table.eps")
	}

	wantSeries := []string{
		"'-' using 1:2 with points pointtype 7 linecolor rgb '#FF8080' title 'a',\\",
		"'-' using 1:2 with points pointtype 7 linecolor rgb '#80FF80' title 'b',\\",
		"'-' using 1:2 with points pointtype 7 linecolor rgb '#8080FF' title 'c',\\",
	}
	plotAt := -1
	for i, line := range lines {
		if line == "plot \\" {
			plotAt = i
			break
		}
	}
	if plotAt < 0 {
		t.Fatal("script has no plot command")
	}
	for i, want := range wantSeries {
		if got := lines[plotAt+1+i]; got != want {
			t.Errorf("series %d: got %q, want %q", i, got, want)
		}
	}

	if got := strings.Count(script, "\n0 0\ne\n"); got != 3 {
		t.Errorf("data blocks: got %d, want 3", got)
	}
	if lines[len(lines)-1] != "exit" {
		t.Errorf("last line: got %q, want exit", lines[len(lines)-1])
	}
}

func TestScriptRenderer_QuotesLabels(t *testing.T) {
	var buf bytes.Buffer
	r := &ScriptRenderer{W: &buf, Output: "it's.eps"}

	if err := r.Render(assignTestColors(t, "o'clock")); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	script := buf.String()
	if !strings.Contains(script, "title 'o''clock'") {
		t.Errorf("label not escaped:\n%s", script)
	}
	if !strings.Contains(script, "set output 'it''s.eps'") {
		t.Errorf("output not escaped:\n%s", script)
	}
}

func TestScriptRenderer_Empty(t *testing.T) {
	r := &ScriptRenderer{W: &bytes.Buffer{}}
	if err := r.Render(nil); err == nil {
		t.Error("Render should fail with no entries")
	}
}

func TestImageRenderer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legend.png")
	entries := assignTestColors(t, "a", "b", "c", "d")

	r := &ImageRenderer{Path: path, Symbol: "#"}
	if err := r.Render(entries); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open legend: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("failed to decode legend: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != DefaultLegendWidth {
		t.Errorf("width: got %d, want %d", bounds.Dx(), DefaultLegendWidth)
	}
	if want := legendMargin*2 + 4*legendRowHeight; bounds.Dy() != want {
		t.Errorf("height: got %d, want %d", bounds.Dy(), want)
	}

	// Marker centers carry the assigned colors
	want := [][3]uint8{{255, 128, 128}, {191, 255, 128}, {128, 255, 255}, {191, 128, 255}}
	for i, w := range want {
		cx, cy := markerCenter(i)
		r8, g8, b8 := rgbAt(img, int(cx), int(cy))
		if r8 != w[0] || g8 != w[1] || b8 != w[2] {
			t.Errorf("marker %d: got (%d,%d,%d), want (%d,%d,%d)", i, r8, g8, b8, w[0], w[1], w[2])
		}
	}

	// Top-left corner is background
	if r8, g8, b8 := rgbAt(img, 0, 0); r8 != 255 || g8 != 255 || b8 != 255 {
		t.Errorf("background: got (%d,%d,%d), want white", r8, g8, b8)
	}
}

func TestImageRenderer_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		r       *ImageRenderer
		entries []PlotEntry
	}{
		{"no entries", &ImageRenderer{Path: filepath.Join(dir, "a.png"), Symbol: "#"}, nil},
		{"unsupported extension", &ImageRenderer{Path: filepath.Join(dir, "a.gif"), Symbol: "#"},
			[]PlotEntry{{Label: "x", Hex: "#FF0000"}}},
		{"bad color", &ImageRenderer{Path: filepath.Join(dir, "b.png"), Symbol: "#"},
			[]PlotEntry{{Label: "x", Hex: "#FF00"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.r.Render(tt.entries); err == nil {
				t.Error("Render should fail")
			}
		})
	}
}

func TestGradientStrip(t *testing.T) {
	colors, err := palette.LinearGradient("000000", "FFFFFF", 3)
	if err != nil {
		t.Fatalf("LinearGradient failed: %v", err)
	}

	strip, err := GradientStrip(colors, "", 10, 5)
	if err != nil {
		t.Fatalf("GradientStrip failed: %v", err)
	}

	bounds := strip.Bounds()
	if bounds.Dx() != 30 || bounds.Dy() != 5 {
		t.Fatalf("dimensions: got %dx%d, want 30x5", bounds.Dx(), bounds.Dy())
	}

	tests := []struct {
		x    int
		want uint8
	}{
		{0, 0},
		{9, 0},
		{10, 127},
		{19, 127},
		{20, 255},
		{29, 255},
	}
	for _, tt := range tests {
		r8, g8, b8 := rgbAt(strip, tt.x, 2)
		if r8 != tt.want || g8 != tt.want || b8 != tt.want {
			t.Errorf("x=%d: got (%d,%d,%d), want gray %d", tt.x, r8, g8, b8, tt.want)
		}
	}
}

func TestGradientStrip_WithSymbol(t *testing.T) {
	strip, err := GradientStrip([]string{"#FF0000", "#0000FF"}, "#", 4, 4)
	if err != nil {
		t.Fatalf("GradientStrip failed: %v", err)
	}
	if r8, _, b8 := rgbAt(strip, 5, 0); r8 != 0 || b8 != 255 {
		t.Errorf("second swatch: got r=%d b=%d, want blue", r8, b8)
	}
}

func TestGradientStrip_Errors(t *testing.T) {
	if _, err := GradientStrip(nil, "", 10, 10); err == nil {
		t.Error("GradientStrip should fail with no colors")
	}
	if _, err := GradientStrip([]string{"000000"}, "", 0, 10); err == nil {
		t.Error("GradientStrip should fail with zero width")
	}
	if _, err := GradientStrip([]string{"00000G"}, "", 10, 10); err == nil {
		t.Error("GradientStrip should fail with a bad color")
	}
}

func TestSaveImage(t *testing.T) {
	strip, err := GradientStrip([]string{"102030"}, "", 8, 8)
	if err != nil {
		t.Fatalf("GradientStrip failed: %v", err)
	}

	dir := t.TempDir()
	for _, name := range []string{"s.png", "s.JPG", "s.jpeg", "s.bmp"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := SaveImage(path, strip); err != nil {
				t.Fatalf("SaveImage failed: %v", err)
			}
			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("stat failed: %v", err)
			}
			if info.Size() == 0 {
				t.Error("saved file is empty")
			}
		})
	}

	if err := SaveImage(filepath.Join(dir, "s.tiff"), strip); err == nil {
		t.Error("SaveImage should reject .tiff")
	}
}

func TestFillColor(t *testing.T) {
	tests := []struct {
		hex, symbol string
		want        color.NRGBA
	}{
		{"#FF8080", "#", color.NRGBA{R: 255, G: 128, B: 128, A: 255}},
		{"01FE7F", "", color.NRGBA{R: 1, G: 254, B: 127, A: 255}},
	}

	for _, tt := range tests {
		fill, err := fillColor(tt.hex, tt.symbol)
		if err != nil {
			t.Fatalf("fillColor(%q) failed: %v", tt.hex, err)
		}
		if got := color.NRGBAModel.Convert(fill).(color.NRGBA); got != tt.want {
			t.Errorf("fillColor(%q): got %v, want %v", tt.hex, got, tt.want)
		}
	}

	if _, err := fillColor("#GG0000", "#"); err == nil {
		t.Error("fillColor should reject invalid hex")
	}
}
