// Package workers runs the background jobs of the vault, such as the
// periodic file sync behind `teamvault sync --watch`.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled or the job
// fails for good; a cancelled ctx is a clean stop and returns nil.
//
// Example implementation:
//
//	type heartbeat struct{}
//
//	func (heartbeat) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}
