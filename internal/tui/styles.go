package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/talia-cli/talia/internal/domain"
)

// Colors defines the color palette for the task browser.
var Colors = struct {
	Primary  lipgloss.Color
	Muted    lipgloss.Color
	Success  lipgloss.Color
	Warning  lipgloss.Color
	Error    lipgloss.Color
	Selected lipgloss.Color
}{
	Primary:  lipgloss.Color("#6C5CE7"), // Purple
	Muted:    lipgloss.Color("#636E72"), // Gray
	Success:  lipgloss.Color("#00B894"), // Green
	Warning:  lipgloss.Color("#FDCB6E"), // Yellow
	Error:    lipgloss.Color("#D63031"), // Red
	Selected: lipgloss.Color("#FFEAA7"), // Yellow (selected row)
}

// Styles contains the lipgloss styles for the task browser.
type Styles struct {
	Title    lipgloss.Style
	Row      lipgloss.Style
	RowFocus lipgloss.Style
	Status   lipgloss.Style
	Message  lipgloss.Style
	Err      lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(Colors.Primary).Padding(0, 1),
		Row:      lipgloss.NewStyle(),
		RowFocus: lipgloss.NewStyle().Foreground(Colors.Selected).Bold(true),
		Status:   lipgloss.NewStyle().Foreground(Colors.Muted),
		Message:  lipgloss.NewStyle().Foreground(Colors.Success),
		Err:      lipgloss.NewStyle().Foreground(Colors.Error),
		Help:     lipgloss.NewStyle().Foreground(Colors.Muted),
	}
}

// statusColor maps a status to its display color.
func statusColor(s domain.Status) lipgloss.Color {
	switch s {
	case domain.StatusCompleted:
		return Colors.Success
	case domain.StatusArchived:
		return Colors.Muted
	case domain.StatusReview:
		return Colors.Primary
	default:
		return Colors.Warning
	}
}
