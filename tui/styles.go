// ABOUTME: Defines lipgloss style constants for the board browser panels and task rows.
// ABOUTME: Provides StyleForPriority to map task priority levels to their display styles.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/2389-research/deckhand/weeek"
)

var (
	// Panel borders
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))

	// Title styling
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	// Board list
	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true)
	UnselectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
	ProjectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	// Column headers and task rows
	ColumnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("75"))
	CompletedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Strikethrough(true)
	AssigneeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	// Priority colors
	LowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	MediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	HighStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	UrgentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	// Errors and the help line
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// StyleForPriority returns the appropriate lipgloss style for a priority level.
func StyleForPriority(priority int) lipgloss.Style {
	switch priority {
	case weeek.PriorityLow:
		return LowStyle
	case weeek.PriorityMedium:
		return MediumStyle
	case weeek.PriorityHigh:
		return HighStyle
	case weeek.PriorityUrgent:
		return UrgentStyle
	default:
		return LowStyle
	}
}
