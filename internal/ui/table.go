// Package ui renders computed benchmark diffs for the terminal.
package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"

	"jmhdiff/internal/jmh"
)

// Options controls diff rendering.
type Options struct {
	// Color enables styled cells; plain output is kept stable for pipes.
	Color bool
	// Threshold is the percentage magnitude above which a diff is
	// highlighted in styled output.
	Threshold float64
}

func diffRow(d jmh.Diff) []string {
	return []string{
		d.Name,
		d.Mode.String(),
		fmt.Sprintf("%v", d.OldScore),
		fmt.Sprintf("%v", d.NewScore),
		d.Units,
		d.Percent(),
	}
}

// RenderTable writes diffs as an aligned table with columns name, mode,
// old score, new score, units, diff.
func RenderTable(w io.Writer, diffs []jmh.Diff, opts Options) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "NAME\tMODE\tOLD\tNEW\tUNITS\tDIFF")
	for _, d := range diffs {
		row := diffRow(d)
		row[5] = styleDelta(d, opts)
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
}

// styleDelta colors the diff cell. A change is "better" when the score moved
// in the direction the mode favors: up for throughput, down for the time
// modes. Non-finite deltas (zero baseline) get their own marker color.
func styleDelta(d jmh.Diff, opts Options) string {
	s := d.Percent()
	if !opts.Color {
		return s
	}
	if !d.Finite() {
		return undefinedStyle.Render(s)
	}

	pct := d.Delta * 100
	if pct < opts.Threshold && pct > -opts.Threshold {
		return s
	}
	better := (d.Mode == jmh.Throughput) == (pct > 0)
	if better {
		return betterStyle.Render(s)
	}
	return worseStyle.Render(s)
}

// RenderMarkdown returns the diffs as a markdown table.
func RenderMarkdown(diffs []jmh.Diff) string {
	var b strings.Builder
	b.WriteString("| name | mode | old | new | units | diff |\n")
	b.WriteString("| --- | --- | ---: | ---: | --- | ---: |\n")
	for _, row := range lo.Map(diffs, func(d jmh.Diff, _ int) []string { return diffRow(d) }) {
		fmt.Fprintf(&b, "| %s |\n", strings.Join(row, " | "))
	}
	return b.String()
}
