// Package server wires and runs the job board's transport servers.
//
// It listens on the configured HTTP and gRPC addresses, serves until the
// caller's context is cancelled and then drains in-flight requests.
package server
