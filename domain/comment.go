package domain

import (
	"context"
	"time"
)

// CommentStatus is the integer-coded moderation state of a comment.
type CommentStatus int

const (
	CommentStatusPublished CommentStatus = 0 // default state at creation
	CommentStatusPending   CommentStatus = 1
	CommentStatusBlocked   CommentStatus = 2
)

// Valid reports whether s is a recognized moderation state.
func (s CommentStatus) Valid() bool {
	return s >= CommentStatusPublished && s <= CommentStatusBlocked
}

// UnknownUserName is the display name substituted when an author id cannot
// be resolved through the user directory.
const UnknownUserName = "unknown user"

// Comment is one entry of a post's embedded comment collection.
//
// Comments have no table of their own. The full collection is serialized into
// a single text column on the owning post, so a comment is only addressable
// through its post and its id is unique within that post only.
type Comment struct {
	ID        string        `json:"id"`
	AuthorID  int64         `json:"author_id"`
	Body      string        `json:"body"`
	CreatedAt time.Time     `json:"created_at"`
	Status    CommentStatus `json:"status"`

	// Enrichment fields, populated on read paths only, never persisted.
	AuthorName string `json:"author_name,omitempty"`
	PostID     int64  `json:"post_id,omitempty"`
	PostTitle  string `json:"post_title,omitempty"`
}

// CommentQuery is the moderation-view filter. A nil Status and an empty
// Keyword each mean "no constraint".
type CommentQuery struct {
	Status   *CommentStatus
	Keyword  string // case-insensitive substring match against Body
	Page     int    // 1-based
	PageSize int
}

// CommentUsecase 业务逻辑接口
type CommentUsecase interface {
	// Create appends a comment with a generated id to the post's collection.
	Create(ctx context.Context, postID, actorID int64, body string) (Comment, error)

	// Delete removes the actor's own comment from the post's collection.
	// Returns ErrForbidden when the comment belongs to someone else.
	Delete(ctx context.Context, postID, actorID int64, commentID string) error

	// SetStatus changes the moderation state of one comment. Administrative:
	// no ownership check.
	SetStatus(ctx context.Context, postID int64, commentID string, status CommentStatus) error

	// FetchByPost lists a post's comments in stored order, enriched with
	// author display names.
	FetchByPost(ctx context.Context, postID int64) ([]Comment, error)

	// FetchAll serves the cross-post moderation view: it scans every post
	// with a non-empty collection and filters/enriches/pages in memory.
	// Returns the total match count alongside the requested page.
	FetchAll(ctx context.Context, q CommentQuery) (int64, []Comment, error)
}
