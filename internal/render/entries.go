package render

import (
	"fmt"

	"github.com/ironsheep/color-tools-mcp/internal/palette"
)

// PlotEntry is one labeled line of a legend.
type PlotEntry struct {
	Label string `json:"label"`
	Hex   string `json:"hex"`   // Color including its symbol, e.g. "#FF8080"
	Style string `json:"style"` // gnuplot style clause for the point
	Entry string `json:"entry"` // gnuplot data source token
}

// Renderer consumes legend entries in order and produces an artifact.
type Renderer interface {
	Render(entries []PlotEntry) error
}

// inlineData plots from data supplied after the plot command.
const inlineData = "'-' using 1:2"

// EntriesFrom converts an assignment into plot entries, preserving order.
func EntriesFrom(a *palette.Assignment[string]) []PlotEntry {
	colors := a.Entries()
	entries := make([]PlotEntry, len(colors))
	for i, c := range colors {
		entries[i] = PlotEntry{
			Label: c.Label,
			Hex:   c.Hex,
			Style: fmt.Sprintf("with points pointtype 7 linecolor rgb '%s'", c.Hex),
			Entry: inlineData,
		}
	}
	return entries
}
