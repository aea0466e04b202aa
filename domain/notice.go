package domain

import (
	"context"
	"time"
)

// Notice is representing a campus announcement
type Notice struct {
	ID        int64
	Title     string
	Content   string
	User      User // publisher information
	CreatedAt time.Time
	UpdatedAt time.Time
}

type NoticeRepository interface {
	// Fetch retrieves a paginated list of notices, newest first.
	Fetch(ctx context.Context, cursor string, num int64) ([]Notice, error)

	// GetByID retrieves a single notice.
	// Returns ErrNotFound if the notice doesn't exist.
	GetByID(ctx context.Context, id int64) (Notice, error)

	// Store publishes a new notice.
	Store(ctx context.Context, n *Notice) error

	// Delete removes a notice by its ID.
	Delete(ctx context.Context, id int64) error
}

// NoticeCache caches the latest-notices listing.
type NoticeCache interface {
	GetLatest(ctx context.Context) (res []Notice, expired bool, err error)
	SetLatest(ctx context.Context, notices []Notice, ttl time.Duration) error
	DeleteLatest(ctx context.Context) error
}

type NoticeUsecase interface {
	Fetch(ctx context.Context, cursor string, num int64) ([]Notice, string, error)
	GetByID(ctx context.Context, id int64) (Notice, error)
	Store(ctx context.Context, n *Notice) error
	Delete(ctx context.Context, id int64) error
}
