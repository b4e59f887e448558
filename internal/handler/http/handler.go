package http

import (
	"time"

	"github.com/MKhiriev/occupa-lo-studente/internal/config"
	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/internal/service"
	"github.com/MKhiriev/occupa-lo-studente/internal/validators"
)

type Handler struct {
	services *service.Services
	schemas  *validators.Schemas
	limiter  RateLimiter

	app            config.App
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, schemas *validators.Schemas, limiter RateLimiter, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		schemas:        schemas,
		limiter:        limiter,
		app:            cfg.App,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
