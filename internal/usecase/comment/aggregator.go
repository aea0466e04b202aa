package comment

import (
	"context"
	"strings"

	"github.com/Guyuepp/Go-Campus-Backend/domain"
)

const DefaultModerationPageSize = 10

// FetchAll serves the cross-post moderation view. Comments have no storage
// location of their own, so the only way to answer is a linear scan: every
// post with a non-empty collection is decoded and the union is filtered,
// enriched, ordered and paged in memory. Cost is O(total comments across all
// posts) per call, there is no index to do better against.
//
// Ordering is deterministic between calls as long as the underlying data
// does not change: posts arrive in ascending id order and per-post comment
// order is the stored append order.
func (s *service) FetchAll(ctx context.Context, q domain.CommentQuery) (int64, []domain.Comment, error) {
	posts, err := s.postRepo.FetchCommented(ctx)
	if err != nil {
		return 0, nil, err
	}

	keyword := strings.ToLower(q.Keyword)
	matched := make([]domain.Comment, 0)
	for _, post := range posts {
		// posts with an empty or absent blob were already filtered out by
		// the repository and never reach the decoder
		for _, c := range DecodeComments(post.CommentsRaw) {
			if q.Status != nil && c.Status != *q.Status {
				continue
			}
			if keyword != "" && !strings.Contains(strings.ToLower(c.Body), keyword) {
				continue
			}
			c.PostID = post.ID
			c.PostTitle = post.Title
			matched = append(matched, c)
		}
	}

	total := int64(len(matched))
	if total == 0 {
		return 0, []domain.Comment{}, nil
	}

	authorIDs := make([]int64, len(matched))
	for i := range matched {
		authorIDs[i] = matched[i].AuthorID
	}
	names, err := s.users.GetDisplayNames(ctx, authorIDs)
	if err != nil {
		return 0, nil, err
	}
	for i := range matched {
		matched[i].AuthorName = names[matched[i].AuthorID]
	}

	size := q.PageSize
	if size <= 0 {
		size = DefaultModerationPageSize
	}

	// an out-of-range page is an empty page with the correct total, not an
	// error
	if q.Page < 1 {
		return total, []domain.Comment{}, nil
	}
	start := (q.Page - 1) * size
	if start >= len(matched) {
		return total, []domain.Comment{}, nil
	}
	end := start + size
	if end > len(matched) {
		end = len(matched)
	}

	return total, matched[start:end], nil
}
