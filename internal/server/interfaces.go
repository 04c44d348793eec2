package server

import "context"

// Server is the lifecycle of a transport server.
type Server interface {
	// RunServer serves requests until ctx is cancelled or the listener
	// fails, then shuts down.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting requests and waits for in-flight ones until
	// ctx expires.
	Shutdown(ctx context.Context) error
}
