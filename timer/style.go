package timer

import "github.com/charmbracelet/lipgloss"

type style struct {
	base      lipgloss.Style
	main      lipgloss.Style
	secondary lipgloss.Style
	hint      lipgloss.Style
	focus     lipgloss.Style
	brk       lipgloss.Style
	countUp   lipgloss.Style
}

func newStyle(dark bool) style {
	primary := lipgloss.Color("#1F2937")
	muted := lipgloss.Color("#6B7280")

	if dark {
		primary = lipgloss.Color("#F9FAFB")
		muted = lipgloss.Color("#9CA3AF")
	}

	label := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		MarginRight(1).
		Foreground(lipgloss.Color("#0B0B0B"))

	return style{
		base:      lipgloss.NewStyle().Padding(1, padding),
		main:      lipgloss.NewStyle().Bold(true).Foreground(primary),
		secondary: lipgloss.NewStyle().Foreground(primary),
		hint:      lipgloss.NewStyle().Foreground(muted),
		focus:     label.Background(lipgloss.Color("#B0DB43")).SetString("FOCUS"),
		brk:       label.Background(lipgloss.Color("#12EAEA")).SetString("BREAK"),
		countUp:   label.Background(lipgloss.Color("#C492B1")).SetString("FLOW"),
	}
}
