// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that runs every
// worker until the shared context is cancelled.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run is expected to block until ctx is done.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// Pinger reports whether a dependency is reachable.
// store.CredentialRepository satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthReporter receives health transitions. The gRPC handler satisfies it.
type HealthReporter interface {
	SetServing(serving bool)
}
