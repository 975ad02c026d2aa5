package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-pet-locator/models"
)

var (
	appStyle      = lipgloss.NewStyle().Padding(1, 2)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	verifiedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	lockedStyle   = lipgloss.NewStyle().Faint(true)
)

func statusStyle(kind models.StatusKind) lipgloss.Style {
	switch kind {
	case models.StatusPending:
		return pendingStyle
	case models.StatusSuccess:
		return successStyle
	case models.StatusError:
		return errorStyle
	default:
		return helpStyle
	}
}
