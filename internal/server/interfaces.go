package server

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// RunServer blocks until SIGINT, SIGTERM or SIGQUIT is received, after which
// every transport is stopped gracefully. Shutdown may also be called directly.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
