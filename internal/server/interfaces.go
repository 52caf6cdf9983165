package server

import "context"

// Server defines the lifecycle contract of the transport server managed by
// this package.
type Server interface {
	// RunServer starts serving requests and blocks until SIGINT, SIGTERM or
	// SIGQUIT is received and the server has shut down.
	RunServer()

	// Run serves requests until ctx is done, then shuts down gracefully.
	// It returns the first error of either phase.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()
}
