package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/occupa-lo-studente/internal/config"
	"github.com/MKhiriev/occupa-lo-studente/internal/handler"
	myGRPC "github.com/MKhiriev/occupa-lo-studente/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/occupa-lo-studente/internal/handler/http"
	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/internal/validators"
)

type nopPinger struct{}

func (nopPinger) PingContext(context.Context) error { return nil }

func testHandlers() *handler.Handlers {
	cfg := config.StructuredConfig{}
	return &handler.Handlers{
		HTTP: myHTTP.NewHandler(nil, validators.NewSchemas(validators.Dependencies{}), nil, cfg, logger.Nop()),
		GRPC: myGRPC.NewHandler(nopPinger{}, time.Minute, logger.Nop()),
	}
}

func TestNewServer_NoServers(t *testing.T) {
	s, err := NewServer(testHandlers(), config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_ListenError(t *testing.T) {
	_, err := NewServer(testHandlers(), config.Server{HTTPAddress: "127.0.0.1:99999"}, logger.Nop())

	assert.Error(t, err)
}

func TestServer_RunAndShutdown(t *testing.T) {
	s, err := NewServer(testHandlers(), config.Server{
		HTTPAddress: "127.0.0.1:0",
		GRPCAddress: "127.0.0.1:0",
	}, logger.Nop())
	require.NoError(t, err)
	srv := s.(*server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.RunServer(ctx) }()

	resp, err := http.Get("http://" + srv.httpServer.listener.Addr().String() + "/api/unknown")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	conn, err := grpc.NewClient(srv.gRPCServer.listener.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	health, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: myGRPC.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, health.GetStatus())

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
