// Package workers runs the background jobs of the cargo-settings server.
// Every worker runs until the context passed to Run is cancelled.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}
