package server

import (
	"context"
	"net"

	"google.golang.org/grpc"

	myGRPC "github.com/MKhiriev/occupa-lo-studente/internal/handler/grpc"
	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
)

type grpcServer struct {
	server   *grpc.Server
	listener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, address string, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, err
	}

	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		server:   server,
		listener: listener,
		logger:   logger,
	}, nil
}

func (g *grpcServer) RunServer() {
	g.logger.Info().Str("address", g.listener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.listener); err != nil {
		g.logger.Err(err).Str("func", "*grpcServer.RunServer").Msg("gRPC server stopped")
	}
}

// Shutdown waits for pending RPCs and falls back to a hard stop when ctx
// expires first.
func (g *grpcServer) Shutdown(ctx context.Context) {
	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		g.logger.Warn().Str("func", "*grpcServer.Shutdown").Msg("graceful stop timed out, forcing")
		g.server.Stop()
	}
}
