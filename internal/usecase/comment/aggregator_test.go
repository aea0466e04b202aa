package comment_test

import (
	"context"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/Go-Campus-Backend/domain"
	ucComment "github.com/Guyuepp/Go-Campus-Backend/internal/usecase/comment"
)

func statusPtr(s domain.CommentStatus) *domain.CommentStatus { return &s }

func TestFetchAllSingleStatusFilter(t *testing.T) {
	// one post holding [a1 pending, a2 published]; filtering on published
	// must report total=1 and a page of exactly [a2]
	raw := seedRaw(t, []domain.Comment{
		{ID: "a1", AuthorID: 7, Body: "awaiting review", Status: domain.CommentStatusPending},
		{ID: "a2", AuthorID: 8, Body: "visible", Status: domain.CommentStatusPublished},
	})
	repo := newFakePostRepo(domain.Post{ID: 1, Title: "announcements", CommentsRaw: raw, CommentCount: 2})
	svc := newTestService(repo, nil)

	total, page, err := svc.FetchAll(context.Background(), domain.CommentQuery{
		Status: statusPtr(domain.CommentStatusPublished),
		Page:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, page, 1)
	assert.Equal(t, "a2", page[0].ID)
}

func TestFetchAllFilterComposition(t *testing.T) {
	repo := newFakePostRepo(
		domain.Post{ID: 1, Title: "post one", CommentsRaw: seedRaw(t, []domain.Comment{
			{ID: "c-1", AuthorID: 1, Body: "the Exam schedule is out", Status: domain.CommentStatusPublished},
			{ID: "c-2", AuthorID: 2, Body: "exam stress is real", Status: domain.CommentStatusBlocked},
		})},
		domain.Post{ID: 2, Title: "post two", CommentsRaw: seedRaw(t, []domain.Comment{
			{ID: "c-3", AuthorID: 3, Body: "EXAM tips inside", Status: domain.CommentStatusPublished},
			{ID: "c-4", AuthorID: 4, Body: "unrelated chatter", Status: domain.CommentStatusPublished},
		})},
	)
	svc := newTestService(repo, nil)

	// both constraints must hold at once: published AND body contains "exam"
	total, page, err := svc.FetchAll(context.Background(), domain.CommentQuery{
		Status:  statusPtr(domain.CommentStatusPublished),
		Keyword: "exam",
		Page:    1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, page, 2)
	assert.Equal(t, "c-1", page[0].ID)
	assert.Equal(t, "c-3", page[1].ID)
}

func TestFetchAllKeywordIsCaseInsensitive(t *testing.T) {
	repo := newFakePostRepo(domain.Post{ID: 1, Title: "t", CommentsRaw: seedRaw(t, []domain.Comment{
		{ID: "c-1", AuthorID: 1, Body: "Cafeteria food"},
		{ID: "c-2", AuthorID: 2, Body: "library hours"},
	})})
	svc := newTestService(repo, nil)

	total, page, err := svc.FetchAll(context.Background(), domain.CommentQuery{Keyword: "CAFETERIA", Page: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, page, 1)
	assert.Equal(t, "c-1", page[0].ID)
}

func TestFetchAllOrderingAndEnrichment(t *testing.T) {
	repo := newFakePostRepo(
		domain.Post{ID: 9, Title: "later post", CommentsRaw: seedRaw(t, []domain.Comment{
			{ID: "c-91", AuthorID: 7, Body: "nine one"},
		})},
		domain.Post{ID: 3, Title: "earlier post", CommentsRaw: seedRaw(t, []domain.Comment{
			{ID: "c-31", AuthorID: 7, Body: "three one"},
			{ID: "c-32", AuthorID: 999, Body: "three two"},
		})},
	)
	svc := newTestService(repo, map[int64]string{7: "Li Si"})

	total, page, err := svc.FetchAll(context.Background(), domain.CommentQuery{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 3)

	// posts in ascending id order, comments in stored order within a post
	assert.Equal(t, []string{"c-31", "c-32", "c-91"}, []string{page[0].ID, page[1].ID, page[2].ID})

	assert.Equal(t, int64(3), page[0].PostID)
	assert.Equal(t, "earlier post", page[0].PostTitle)
	assert.Equal(t, "Li Si", page[0].AuthorName)
	assert.Equal(t, domain.UnknownUserName, page[1].AuthorName)
	assert.Equal(t, int64(9), page[2].PostID)
	assert.Equal(t, "later post", page[2].PostTitle)
}

func TestFetchAllPaginationIsExhaustiveAndStable(t *testing.T) {
	var first, second []domain.Comment
	for i := 0; i < 3; i++ {
		first = append(first, domain.Comment{ID: faker.UUIDHyphenated(), AuthorID: int64(i + 1), Body: faker.Sentence()})
	}
	for i := 0; i < 2; i++ {
		second = append(second, domain.Comment{ID: faker.UUIDHyphenated(), AuthorID: int64(i + 10), Body: faker.Sentence()})
	}
	repo := newFakePostRepo(
		domain.Post{ID: 1, Title: "p1", CommentsRaw: seedRaw(t, first)},
		domain.Post{ID: 2, Title: "p2", CommentsRaw: seedRaw(t, second)},
	)
	svc := newTestService(repo, nil)

	seen := make(map[string]bool)
	var collected []string
	for pageNum := 1; pageNum <= 3; pageNum++ {
		total, page, err := svc.FetchAll(context.Background(), domain.CommentQuery{Page: pageNum, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
		for _, c := range page {
			assert.False(t, seen[c.ID], "comment %s appeared on two pages", c.ID)
			seen[c.ID] = true
			collected = append(collected, c.ID)
		}
	}
	require.Len(t, collected, 5)

	// walking the pages reproduces one full scan in the same order
	totalAll, all, err := svc.FetchAll(context.Background(), domain.CommentQuery{Page: 1, PageSize: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(5), totalAll)
	for i, c := range all {
		assert.Equal(t, c.ID, collected[i])
	}
}

func TestFetchAllOutOfRangePage(t *testing.T) {
	repo := newFakePostRepo(domain.Post{ID: 1, Title: "t", CommentsRaw: seedRaw(t, []domain.Comment{
		{ID: "c-1", AuthorID: 1, Body: "only one"},
	})})
	svc := newTestService(repo, nil)

	total, page, err := svc.FetchAll(context.Background(), domain.CommentQuery{Page: 7, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.NotNil(t, page)
	assert.Empty(t, page)

	// page zero and negative pages behave the same way
	for _, p := range []int{0, -1} {
		total, page, err = svc.FetchAll(context.Background(), domain.CommentQuery{Page: p})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Empty(t, page)
	}
}

func TestFetchAllDefaultPageSize(t *testing.T) {
	var comments []domain.Comment
	for i := 0; i < ucComment.DefaultModerationPageSize+3; i++ {
		comments = append(comments, domain.Comment{ID: faker.UUIDHyphenated(), AuthorID: 1, Body: "filler"})
	}
	repo := newFakePostRepo(domain.Post{ID: 1, Title: "t", CommentsRaw: seedRaw(t, comments)})
	svc := newTestService(repo, nil)

	total, page, err := svc.FetchAll(context.Background(), domain.CommentQuery{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(ucComment.DefaultModerationPageSize+3), total)
	assert.Len(t, page, ucComment.DefaultModerationPageSize)
}

func TestFetchAllNoMatches(t *testing.T) {
	repo := newFakePostRepo(domain.Post{ID: 1, Title: "t", CommentsRaw: seedRaw(t, []domain.Comment{
		{ID: "c-1", AuthorID: 1, Body: "hello", Status: domain.CommentStatusPublished},
	})})
	svc := newTestService(repo, nil)

	total, page, err := svc.FetchAll(context.Background(), domain.CommentQuery{
		Status: statusPtr(domain.CommentStatusBlocked),
		Page:   1,
	})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NotNil(t, page)
	assert.Empty(t, page)
}
