package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"jmhdiff/internal/jmh"
)

type viewerModel struct {
	table  table.Model
	total  int
	width  int
	height int
}

// NewViewerModel builds the interactive diff browser.
func NewViewerModel(diffs []jmh.Diff) viewerModel {
	columns := []table.Column{
		{Title: "NAME", Width: 40},
		{Title: "MODE", Width: 8},
		{Title: "OLD", Width: 14},
		{Title: "NEW", Width: 14},
		{Title: "UNITS", Width: 10},
		{Title: "DIFF", Width: 14},
	}

	rows := lo.Map(diffs, func(d jmh.Diff, _ int) table.Row {
		return table.Row(diffRow(d))
	})

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return viewerModel{table: t, total: len(diffs)}
}

func (m viewerModel) Init() tea.Cmd {
	return nil
}

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(m.width)
		m.table.SetHeight(m.height - 4)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m viewerModel) View() string {
	title := viewerTitleStyle.Render(fmt.Sprintf("Benchmark diffs (%d)", m.total))
	help := viewerHelpStyle.Render("↑/↓: scroll • q: quit")
	return title + "\n" + m.table.View() + "\n" + help
}

// RunViewer opens the interactive diff browser and blocks until it exits.
func RunViewer(diffs []jmh.Diff) error {
	p := tea.NewProgram(NewViewerModel(diffs), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
