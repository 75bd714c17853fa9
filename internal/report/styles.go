// Package report renders fit results for the terminal: styled banners,
// ranking tables and an interactive ranking browser.
package report

import "github.com/charmbracelet/lipgloss"

var (
	// Panel around the best-fit banner.
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	// Best is green, as the best fit always has been.
	Best = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ff88"))

	Warn = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffaa00"))

	Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888899"))

	Value = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00ccff")).
		Bold(true)

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)

	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffffff")).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color("#444466"))

	selected = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dim      = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// KV renders a "label value" pair.
func KV(label string, value any) string {
	return Label.Render(label+":") + " " + Value.Render(format(value))
}
