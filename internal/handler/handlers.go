package handler

import (
	"github.com/MKhiriev/occupa-lo-studente/internal/config"
	"github.com/MKhiriev/occupa-lo-studente/internal/handler/grpc"
	"github.com/MKhiriev/occupa-lo-studente/internal/handler/http"
	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/internal/service"
	"github.com/MKhiriev/occupa-lo-studente/internal/validators"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// Dependencies are the collaborators shared by the transport handlers.
type Dependencies struct {
	Services *service.Services
	Schemas  *validators.Schemas
	Limiter  http.RateLimiter
	Database grpc.Pinger
}

func NewHandlers(deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(deps.Services, deps.Schemas, deps.Limiter, cfg, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(deps.Database, cfg.Server.HealthProbeInterval, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
