package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#2563EB")).
			Bold(true).
			Padding(0, 1)
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748B"))
	sectionStyle  = lipgloss.NewStyle().Bold(true).MarginTop(1)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#16A34A")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	wordStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#0F172A")).Bold(true)
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2563EB")).Bold(true)
	correctStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#2563EB")).Bold(true)
	wrongStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")).Bold(true)
	scoreStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#2563EB")).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle     = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#CBD5E1"))
	correctCardStyle = cardStyle.BorderForeground(lipgloss.Color("#3B82F6"))
	wrongCardStyle   = cardStyle.BorderForeground(lipgloss.Color("#EF4444"))
	modalStyle       = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#F97316")).
				Padding(1, 2)
)
