// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
// Run starts the worker's execution; Stop asks it to finish.
//
// Implementations are expected to return from Run immediately and do their
// work in goroutines spawned internally.
type Worker interface {
	Run()
	Stop()
}
