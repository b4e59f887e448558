// Package workers runs the background workers of the server.
//
// A [Worker] blocks in Run until its context is cancelled. [Workers] starts
// every registered worker on its own goroutine and waits for all of them on
// shutdown.
package workers

import "context"

// Worker is a long-running background task.
//
// Run must return once ctx is cancelled, after finishing the work it
// already accepted.
type Worker interface {
	Run(ctx context.Context)
}
