package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// This file centralizes the lipgloss styles used for rendered output.

var (
	betterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")) // Green

	worseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	undefinedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // Orange, for non-finite deltas

	viewerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62"))

	viewerHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// ColorEnabled reports whether styled output should be produced. noColor is
// the user override; otherwise the terminal's color profile decides.
func ColorEnabled(noColor bool) bool {
	if noColor {
		return false
	}
	return termenv.DefaultOutput().Profile != termenv.Ascii
}
