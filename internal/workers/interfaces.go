// Package workers runs the client's background jobs.
//
// A [Worker] is started once for the lifetime of the client and stopped on
// shutdown. [Workers] groups them so the runtime manages a single handle.
package workers

import (
	"context"

	"github.com/MKhiriev/go-pet-locator/models"
)

// Worker is a background job with an explicit lifecycle.
type Worker interface {
	// Start launches the job and returns immediately. Calling Start on a
	// running worker restarts it.
	Start(ctx context.Context)

	// Stop halts the job and blocks until it has exited. Safe to call on a
	// worker that is not running.
	Stop()
}

// Refresher reloads the record snapshot.
type Refresher interface {
	Refresh(ctx context.Context) ([]models.Record, error)
}
