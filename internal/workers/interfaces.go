// Package workers runs the background jobs of the co-script server next to
// the HTTP transport.
//
// Every [Worker] blocks until its context is cancelled. [Workers] runs them
// together under one errgroup so that the first failing worker stops the
// rest.
package workers

import "context"

// Worker is a long-running background job.
//
// Run blocks until ctx is cancelled and returns nil on a clean stop. A
// non-nil error means the worker cannot continue.
type Worker interface {
	Name() string
	Run(ctx context.Context) error
}
