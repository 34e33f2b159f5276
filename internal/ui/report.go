package ui

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"jmhdiff/internal/jmh"
)

// RenderReport renders the diffs as a markdown table styled for the terminal.
func RenderReport(diffs []jmh.Diff) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return "", fmt.Errorf("building report renderer: %w", err)
	}

	md := "# Benchmark comparison\n\n" + RenderMarkdown(diffs)
	out, err := renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering report: %w", err)
	}
	return out, nil
}
