package server

import "context"

// Server is the lifecycle contract of the application server.
type Server interface {
	// RunServer serves until ctx is cancelled or a termination signal
	// arrives, then shuts down gracefully.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting requests and waits for in-flight ones until
	// ctx expires.
	Shutdown(ctx context.Context) error
}
