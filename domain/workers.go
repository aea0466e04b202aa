package domain

import "context"

// ViewSyncWorker batches post view increments and flushes them to storage.
type ViewSyncWorker interface {
	Start(ctx context.Context)

	// Send records one view of the given post. Non-blocking: increments may
	// be dropped under pressure.
	Send(postID int64)
}
