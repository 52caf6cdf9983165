package http

import (
	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/service"
	"github.com/MKhiriev/go-users-api/internal/utils"
)

type Handler struct {
	services *service.Services

	// authHeader is the exact Authorization header value accepted by auth.
	authHeader string
	traceIDs   *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		authHeader: bearerPrefix + cfg.AuthToken,
		traceIDs:   utils.NewUUIDGenerator(),
		logger:     logger,
	}
}
