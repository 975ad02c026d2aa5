package http

import (
	"time"

	"github.com/MKhiriev/go-pet-locator/internal/devnet"
	"github.com/MKhiriev/go-pet-locator/internal/logger"
	"github.com/MKhiriev/go-pet-locator/models"
)

// DefaultSessionTTL is the lifetime of sessions issued by POST /api/session.
const DefaultSessionTTL = 24 * time.Hour

type Handler struct {
	devnet    *devnet.Devnet
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func NewHandler(devnet *devnet.Devnet, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		devnet:    devnet,
		buildInfo: buildInfo,
		logger:    logger,
	}
}
