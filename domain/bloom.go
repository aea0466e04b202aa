package domain

import "context"

type BloomRepository interface {
	// Add puts a post ID into the filter.
	Add(ctx context.Context, id int64) error

	// Exists checks whether a post ID may exist.
	// true: possibly exists (still need to check the store).
	// false: definitely absent (safe to return 404 directly).
	Exists(ctx context.Context, id int64) (bool, error)

	// BulkAdd is used to warm the filter with many IDs at once.
	BulkAdd(ctx context.Context, ids []int64) error
}
