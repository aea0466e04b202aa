package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/Go-Campus-Backend/domain"
	"github.com/Guyuepp/Go-Campus-Backend/internal/rest"
	"github.com/Guyuepp/Go-Campus-Backend/internal/rest/response"
)

type stubCommentUsecase struct {
	createFn    func(ctx context.Context, postID, actorID int64, body string) (domain.Comment, error)
	deleteFn    func(ctx context.Context, postID, actorID int64, commentID string) error
	setStatusFn func(ctx context.Context, postID int64, commentID string, status domain.CommentStatus) error
	fetchFn     func(ctx context.Context, postID int64) ([]domain.Comment, error)
	fetchAllFn  func(ctx context.Context, q domain.CommentQuery) (int64, []domain.Comment, error)
}

func (s *stubCommentUsecase) Create(ctx context.Context, postID, actorID int64, body string) (domain.Comment, error) {
	return s.createFn(ctx, postID, actorID, body)
}

func (s *stubCommentUsecase) Delete(ctx context.Context, postID, actorID int64, commentID string) error {
	return s.deleteFn(ctx, postID, actorID, commentID)
}

func (s *stubCommentUsecase) SetStatus(ctx context.Context, postID int64, commentID string, status domain.CommentStatus) error {
	return s.setStatusFn(ctx, postID, commentID, status)
}

func (s *stubCommentUsecase) FetchByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	return s.fetchFn(ctx, postID)
}

func (s *stubCommentUsecase) FetchAll(ctx context.Context, q domain.CommentQuery) (int64, []domain.Comment, error) {
	return s.fetchAllFn(ctx, q)
}

func newCommentRouter(svc domain.CommentUsecase, actorID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if actorID != 0 {
		r.Use(func(c *gin.Context) {
			c.Set("user_id", actorID)
			c.Next()
		})
	}

	h := rest.NewCommentHandler(svc)
	r.POST("/posts/:id/comments", h.CreateComment)
	r.DELETE("/posts/:id/comments/:commentId", h.DeleteComment)
	r.GET("/posts/:id/comments", h.FetchCommentsByPost)
	r.PUT("/admin/posts/:id/comments/:commentId/status", h.ModerateComment)
	r.GET("/admin/comments", h.FetchAllComments)
	return r
}

func TestCreateCommentHandler(t *testing.T) {
	svc := &stubCommentUsecase{
		createFn: func(_ context.Context, postID, actorID int64, body string) (domain.Comment, error) {
			assert.Equal(t, int64(42), postID)
			assert.Equal(t, int64(7), actorID)
			assert.Equal(t, "nice post", body)
			return domain.Comment{ID: "c-1", AuthorID: actorID, Body: body, CreatedAt: time.Now()}, nil
		},
	}
	router := newCommentRouter(svc, 7)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/posts/42/comments", strings.NewReader(`{"body":"nice post"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got response.Comment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "c-1", got.ID)
	assert.Equal(t, "nice post", got.Body)
}

func TestCreateCommentRejectsMissingBody(t *testing.T) {
	svc := &stubCommentUsecase{}
	router := newCommentRouter(svc, 7)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/posts/42/comments", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateCommentWithoutActor(t *testing.T) {
	svc := &stubCommentUsecase{}
	router := newCommentRouter(svc, 0)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/posts/42/comments", strings.NewReader(`{"body":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDeleteCommentStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"internal", domain.ErrInternalServerError, http.StatusInternalServerError},
		{"ok", nil, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubCommentUsecase{
				deleteFn: func(_ context.Context, postID, actorID int64, commentID string) error {
					assert.Equal(t, "c-9", commentID)
					return tc.err
				},
			}
			router := newCommentRouter(svc, 7)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/posts/1/comments/c-9", nil)
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestFetchCommentsByPostHandler(t *testing.T) {
	svc := &stubCommentUsecase{
		fetchFn: func(_ context.Context, postID int64) ([]domain.Comment, error) {
			assert.Equal(t, int64(5), postID)
			return []domain.Comment{
				{ID: "c-1", AuthorID: 7, AuthorName: "Zhang San", Body: "hi"},
			}, nil
		},
	}
	router := newCommentRouter(svc, 0)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/posts/5/comments", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Comments []response.Comment `json:"comments"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "Zhang San", got.Comments[0].AuthorName)
}

func TestModerateCommentHandler(t *testing.T) {
	var gotStatus domain.CommentStatus
	svc := &stubCommentUsecase{
		setStatusFn: func(_ context.Context, postID int64, commentID string, status domain.CommentStatus) error {
			gotStatus = status
			return nil
		},
	}
	router := newCommentRouter(svc, 7)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/posts/1/comments/c-1/status", strings.NewReader(`{"status":2}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.CommentStatusBlocked, gotStatus)
}

func TestModerateCommentRejectsUnknownStatus(t *testing.T) {
	svc := &stubCommentUsecase{}
	router := newCommentRouter(svc, 7)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/posts/1/comments/c-1/status", strings.NewReader(`{"status":42}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFetchAllCommentsQueryParsing(t *testing.T) {
	var gotQuery domain.CommentQuery
	svc := &stubCommentUsecase{
		fetchAllFn: func(_ context.Context, q domain.CommentQuery) (int64, []domain.Comment, error) {
			gotQuery = q
			return 1, []domain.Comment{{ID: "c-1", AuthorID: 7, Body: "hi", PostID: 3, PostTitle: "t"}}, nil
		},
	}
	router := newCommentRouter(svc, 7)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/comments?status=1&keyword=exam&page=2&size=5", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotQuery.Status)
	assert.Equal(t, domain.CommentStatusPending, *gotQuery.Status)
	assert.Equal(t, "exam", gotQuery.Keyword)
	assert.Equal(t, 2, gotQuery.Page)
	assert.Equal(t, 5, gotQuery.PageSize)

	var page response.CommentPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Comments, 1)
	assert.Equal(t, int64(3), page.Comments[0].PostID)
}

func TestFetchAllCommentsInvalidPaging(t *testing.T) {
	svc := &stubCommentUsecase{
		fetchAllFn: func(_ context.Context, q domain.CommentQuery) (int64, []domain.Comment, error) {
			t.Fatal("service must not be reached with unparseable paging")
			return 0, nil, nil
		},
	}
	router := newCommentRouter(svc, 7)

	for _, q := range []string{"page=abc", "size=abc", "page=1&size=1x"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/comments?"+q, nil)
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestFetchAllCommentsInvalidStatus(t *testing.T) {
	svc := &stubCommentUsecase{}
	router := newCommentRouter(svc, 7)

	for _, q := range []string{"status=abc", "status=42", "status=-1"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/comments?"+q, nil)
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}
