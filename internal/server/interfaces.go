package server

import "context"

// Server defines the lifecycle contract for the transport servers managed
// by this package.
type Server interface {
	// RunServer serves requests until ctx is cancelled, then shuts down
	// gracefully.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting new work and waits for in-flight requests,
	// at most until ctx expires.
	Shutdown(ctx context.Context)
}
