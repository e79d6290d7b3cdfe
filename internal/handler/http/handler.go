package http

import (
	"time"

	"github.com/MKhiriev/co-script/internal/config"
	"github.com/MKhiriev/co-script/internal/logger"
	"github.com/MKhiriev/co-script/internal/service"
)

type Handler struct {
	services *service.Services

	// secureCookies marks the session cookie Secure.
	secureCookies  bool
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		secureCookies:  cfg.SecureCookies,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
