package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pet-locator/internal/logger"
	"github.com/MKhiriev/go-pet-locator/internal/service"
	"github.com/MKhiriev/go-pet-locator/models"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}
}

// Run blocks until the user quits or ctx is cancelled. A cancelled ctx is
// a normal exit.
func (t *TUI) Run(ctx context.Context) error {
	program := tea.NewProgram(newModel(ctx, t.services, t.buildInfo), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("ui stopped with error")
		return err
	}
	return nil
}
