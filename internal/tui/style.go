package tui

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236"))
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Bold(true).Padding(0, 1)

	labelStyle         = lipgloss.NewStyle().Bold(true)
	valueMuted         = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	statusErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	statusSuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	itemNormalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	itemSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24"))
	itemDoneStyle     = valueMuted.Strikethrough(true)
	itemOverdueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	modalStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 2)
)
