package tui

import (
	"github.com/charmbracelet/lipgloss"

	"radar/internal/domain"
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle      = lipgloss.NewStyle().Bold(true)
	inputBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8"))
	focusedBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("12"))
	resultBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	tabStyle        = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("8"))
	activeTabStyle  = lipgloss.NewStyle().Padding(0, 2).Bold(true).Underline(true)
	categoryStyle   = lipgloss.NewStyle().Bold(true)
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	helpStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	skillChipStyle = lipgloss.NewStyle().
			Padding(0, 1).MarginRight(1).
			Foreground(lipgloss.Color("#1e40af")).
			Background(lipgloss.Color("#e0e7ff"))
	missingChipStyle = lipgloss.NewStyle().
				Padding(0, 1).MarginRight(1).
				Foreground(lipgloss.Color("#991b1b")).
				Background(lipgloss.Color("#fee2e2"))

	scoreBase = lipgloss.NewStyle().Bold(true).Padding(0, 2).Foreground(lipgloss.Color("#ffffff"))
)

func scoreStyle(b domain.Band) lipgloss.Style {
	switch b {
	case domain.BandHigh:
		return scoreBase.Background(lipgloss.Color("#10b981"))
	case domain.BandMedium:
		return scoreBase.Background(lipgloss.Color("#f59e0b"))
	default:
		return scoreBase.Background(lipgloss.Color("#ef4444"))
	}
}
