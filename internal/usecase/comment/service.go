package comment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Campus-Backend/domain"
)

// service owns the read-modify-write protocol against a post's embedded
// comment collection. Every mutation decodes the whole blob, applies one
// change in memory and writes the whole blob back together with the cached
// count and updated_at.
//
// There is no version check against the stored blob: two concurrent
// mutations on the same post race, and the writer with the stale read
// silently discards the other's change. That lost-update hazard is a
// property of the storage shape, kept as-is so callers see the same
// semantics the column layout implies.
type service struct {
	postRepo  domain.PostRepository
	users     domain.UserDirectory
	bloomRepo domain.BloomRepository
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(postRepo domain.PostRepository, users domain.UserDirectory, bloomRepo domain.BloomRepository) *service {
	return &service{
		postRepo:  postRepo,
		users:     users,
		bloomRepo: bloomRepo,
	}
}

func (s *service) mustExists(ctx context.Context, id int64) error {
	exists, err := s.bloomRepo.Exists(ctx, id)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says post %d does not exist", id)
		return fmt.Errorf("post %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Create appends a comment to the tail of the post's collection. New
// comments are always logically last in storage, independent of any display
// ordering.
func (s *service) Create(ctx context.Context, postID, actorID int64, body string) (domain.Comment, error) {
	if actorID == 0 {
		return domain.Comment{}, domain.ErrUnauthorized
	}
	if strings.TrimSpace(body) == "" {
		return domain.Comment{}, domain.ErrBadParamInput
	}
	if err := s.mustExists(ctx, postID); err != nil {
		return domain.Comment{}, err
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("post %d: %w", postID, domain.ErrNotFound)
	}

	comments := DecodeComments(post.CommentsRaw)
	created := domain.Comment{
		ID:        uuid.NewString(),
		AuthorID:  actorID,
		Body:      body,
		CreatedAt: time.Now(),
		Status:    domain.CommentStatusPublished,
	}
	comments = append(comments, created)

	raw, err := EncodeComments(comments)
	if err != nil {
		logrus.Errorf("failed to encode comment collection for post %d: %v", postID, err)
		return domain.Comment{}, domain.ErrInternalServerError
	}

	if err := s.postRepo.UpdateComments(ctx, postID, raw, int64(len(comments))); err != nil {
		return domain.Comment{}, err
	}

	return created, nil
}

// Delete removes the actor's own comment. Acting on an id that is not in
// the collection is an error, not a no-op.
func (s *service) Delete(ctx context.Context, postID, actorID int64, commentID string) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return fmt.Errorf("post %d: %w", postID, domain.ErrNotFound)
	}

	comments := DecodeComments(post.CommentsRaw)
	if len(comments) == 0 {
		return fmt.Errorf("post %d has no comments: %w", postID, domain.ErrNotFound)
	}

	idx := indexOf(comments, commentID)
	if idx < 0 {
		return fmt.Errorf("comment %s in post %d: %w", commentID, postID, domain.ErrNotFound)
	}
	if comments[idx].AuthorID != actorID {
		return domain.ErrForbidden
	}

	comments = append(comments[:idx], comments[idx+1:]...)

	raw, err := EncodeComments(comments)
	if err != nil {
		logrus.Errorf("failed to encode comment collection for post %d: %v", postID, err)
		return domain.ErrInternalServerError
	}

	return s.postRepo.UpdateComments(ctx, postID, raw, int64(len(comments)))
}

// SetStatus is the moderation path: no ownership check, but the status code
// must be recognized and the comment must exist.
func (s *service) SetStatus(ctx context.Context, postID int64, commentID string, status domain.CommentStatus) error {
	if !status.Valid() {
		return domain.ErrBadParamInput
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return fmt.Errorf("post %d: %w", postID, domain.ErrNotFound)
	}

	comments := DecodeComments(post.CommentsRaw)
	idx := indexOf(comments, commentID)
	if idx < 0 {
		return fmt.Errorf("comment %s in post %d: %w", commentID, postID, domain.ErrNotFound)
	}

	comments[idx].Status = status

	raw, err := EncodeComments(comments)
	if err != nil {
		logrus.Errorf("failed to encode comment collection for post %d: %v", postID, err)
		return domain.ErrInternalServerError
	}

	// the collection length did not change, the count is rewritten with the
	// blob anyway so the two always travel together
	return s.postRepo.UpdateComments(ctx, postID, raw, int64(len(comments)))
}

// FetchByPost lists a post's comments in stored order with author display
// names resolved. Unresolvable authors get the unknown-user sentinel.
func (s *service) FetchByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	if err := s.mustExists(ctx, postID); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("post %d: %w", postID, domain.ErrNotFound)
	}

	comments := DecodeComments(post.CommentsRaw)
	if len(comments) == 0 {
		return []domain.Comment{}, nil
	}

	authorIDs := make([]int64, len(comments))
	for i := range comments {
		authorIDs[i] = comments[i].AuthorID
	}

	names, err := s.users.GetDisplayNames(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	for i := range comments {
		comments[i].AuthorName = names[comments[i].AuthorID]
	}

	return comments, nil
}

func indexOf(comments []domain.Comment, commentID string) int {
	for i := range comments {
		if comments[i].ID == commentID {
			return i
		}
	}
	return -1
}
