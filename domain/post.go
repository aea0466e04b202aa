package domain

import (
	"context"
	"time"
)

// Post is representing a discussion forum post.
// Comments do not live in their own table: the whole collection is serialized
// into CommentsRaw, and CommentCount caches its length (see CommentUsecase).
type Post struct {
	ID           int64     // Unique identifier for the post
	Title        string    // Post title
	Content      string    // Post body content
	User         User      // Author information
	CommentsRaw  string    // Serialized comment collection (may be empty on legacy rows)
	CommentCount int64     // Cached length of the decoded collection
	Views        int64     // Number of views
	UpdatedAt    time.Time // Last update timestamp
	CreatedAt    time.Time // Creation timestamp
}

// PostRepository defines the contract for post data persistence
type PostRepository interface {
	// Fetch retrieves a paginated list of posts.
	// cursor: for pagination, pass the encoded cursor or empty string for the first page.
	// The comment blob is not selected on list queries.
	Fetch(ctx context.Context, cursor string, num int64) (res []Post, err error)

	// GetByID retrieves a single post by its ID, including the comment blob.
	// Returns ErrNotFound if the post doesn't exist.
	GetByID(ctx context.Context, id int64) (Post, error)

	// Store creates a new post with an empty comment collection.
	Store(ctx context.Context, p *Post) error

	// Delete removes a post (and with it the embedded comment collection).
	// Returns ErrNotFound if not exists.
	Delete(ctx context.Context, id int64) error

	// AddViews increments the view count of a post by deltaViews.
	AddViews(ctx context.Context, id int64, deltaViews int64) error

	// UpdateComments persists the serialized comment collection together with
	// the recomputed cached count and a fresh updated_at in one write. The
	// three columns must never be persisted separately.
	UpdateComments(ctx context.Context, id int64, raw string, count int64) error

	// FetchCommented returns every post whose comment collection is
	// non-empty, in ascending id order. Posts with an absent or
	// empty-collection blob are filtered out by the storage layer so they
	// are never decoded.
	FetchCommented(ctx context.Context) ([]Post, error)

	// FetchIDs pages over post ids, used to warm the bloom filter.
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}

// PostCache caches the home-page listing. The cached entries never carry the
// comment blob: decoded collections must always be read fresh from the store.
type PostCache interface {
	// GetHome returns the cached home listing and whether it is logically expired.
	GetHome(ctx context.Context) (res []Post, expired bool, err error)
	SetHome(ctx context.Context, posts []Post, ttl time.Duration) error
	DeleteHome(ctx context.Context) error
}

type PostUsecase interface {
	Fetch(ctx context.Context, cursor string, num int64) ([]Post, string, error)
	GetByID(ctx context.Context, id int64) (Post, error)
	Store(ctx context.Context, p *Post) error
	Delete(ctx context.Context, id int64) error
}
