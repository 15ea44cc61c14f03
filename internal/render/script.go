package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DefaultScriptOutput is the EPS file the generated script plots into.
const DefaultScriptOutput = "color_table.eps"

// ScriptRenderer writes a gnuplot script for a color legend.
//
// Each entry becomes one series drawn as a filled circle with the entry's
// color and titled with its label. Every series plots the single point (0,0)
// outside the visible range, so only the key is shown. The script ends with
// "exit" and can be piped straight into gnuplot.
type ScriptRenderer struct {
	W      io.Writer
	Output string // EPS path written by gnuplot; DefaultScriptOutput if empty
}

// Render writes the script for entries to r.W.
func (r *ScriptRenderer) Render(entries []PlotEntry) error {
	if len(entries) == 0 {
		return fmt.Errorf("nothing to plot")
	}

	output := r.Output
	if output == "" {
		output = DefaultScriptOutput
	}

	w := bufio.NewWriter(r.W)

	lines := []string{
		"set terminal postscript eps  size 3.5, 2.62 \\",
		"                             enhanced color \\",
		"                             font 'Helvetica,14' \\",
		"                             linewidth 2",
		fmt.Sprintf("set output %s", quote(output)),
		"set xrange [1:2]",
		"set yrange [1:2]",
		"unset border",
		"unset xtics",
		"unset ytics",
		"plot \\",
	}
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s %s title %s,\\", e.Entry, e.Style, quote(e.Label)))
	}
	lines = append(lines, "")
	for range entries {
		lines = append(lines, "0 0", "e")
	}
	lines = append(lines, "exit")

	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("failed to write script: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write script: %w", err)
	}
	return nil
}

// quote wraps s in gnuplot single quotes, doubling embedded quotes.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
