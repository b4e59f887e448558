// Package grpc exposes the standard gRPC health service of the job board.
//
// The serving status follows the database: [Handler.Run] pings it every
// probe interval and flips the status between SERVING and NOT_SERVING.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
)

// ServiceName is the health service name reported next to the overall ("")
// status.
const ServiceName = "occupa-lo-studente"

const defaultProbeInterval = 10 * time.Second

// Pinger checks that a dependency is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
type Handler struct {
	health   *health.Server
	database Pinger
	interval time.Duration

	logger *logger.Logger
}

// NewHandler returns a handler reporting NOT_SERVING until the first
// successful probe. A zero interval selects the default.
func NewHandler(database Pinger, interval time.Duration, logger *logger.Logger) *Handler {
	if interval <= 0 {
		interval = defaultProbeInterval
	}

	h := &Handler{
		health:   health.NewServer(),
		database: database,
		interval: interval,
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// Check answers a health check without going through the network.
func (h *Handler) Check(ctx context.Context, service string) (healthpb.HealthCheckResponse_ServingStatus, error) {
	resp, err := h.health.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN, err
	}
	return resp.GetStatus(), nil
}

// Run probes the database until ctx is cancelled. On return every service
// is reported as NOT_SERVING.
func (h *Handler) Run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return
		case <-ticker.C:
			h.probe(ctx)
		}
	}
}

func (h *Handler) probe(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, h.interval)
	defer cancel()

	if err := h.database.PingContext(ctx); err != nil {
		h.logger.Warn().Err(err).Str("func", "*Handler.probe").Msg("database is not reachable")
		h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
