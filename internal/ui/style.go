package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	priorityHighStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	priorityMediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	priorityLowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	overdueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Strikethrough(true)
	idPrefixStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	labelStyle     = lipgloss.NewStyle().Bold(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// styled renders value with style only when stdout accepts color, so piped
// output stays plain.
func styled(style lipgloss.Style, value string) string {
	if value == "" || !ColorEnabled() {
		return value
	}
	return style.Render(value)
}

// Priority renders a priority name in its color.
func Priority(name string) string {
	switch name {
	case "high":
		return styled(priorityHighStyle, name)
	case "medium":
		return styled(priorityMediumStyle, name)
	case "low":
		return styled(priorityLowStyle, name)
	default:
		return name
	}
}

// Overdue renders text in the overdue color.
func Overdue(value string) string { return styled(overdueStyle, value) }

// Completed renders text as finished.
func Completed(value string) string { return styled(completedStyle, value) }

// Label renders a field label in the detail view.
func Label(value string) string { return styled(labelStyle, value) }

// Muted renders secondary text.
func Muted(value string) string { return styled(mutedStyle, value) }

// Success renders a success message.
func Success(value string) string { return styled(successStyle, value) }

// Error renders a failure message.
func Error(value string) string { return styled(errorStyle, value) }
