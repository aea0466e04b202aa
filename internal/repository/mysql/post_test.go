package mysql_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Guyuepp/Go-Campus-Backend/domain"
	"github.com/Guyuepp/Go-Campus-Backend/internal/repository/mysql"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return db, mock
}

func TestPostGetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysql.NewPostRepository(db)

	rows := sqlmock.NewRows([]string{"id", "title", "content", "user_id", "comments", "comment_count", "views"}).
		AddRow(1, "hello", "body", 7, `[{"id":"c-1","author_id":7,"body":"hi"}]`, 1, 12)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `post` WHERE id = ?")).
		WillReturnRows(rows)

	post, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), post.ID)
	assert.Equal(t, "hello", post.Title)
	assert.Equal(t, int64(7), post.User.ID)
	assert.Contains(t, post.CommentsRaw, "c-1")
	assert.Equal(t, int64(1), post.CommentCount)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysql.NewPostRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `post` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostUpdateCommentsSingleWrite(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysql.NewPostRepository(db)

	raw := `[{"id":"c-1","author_id":7,"body":"hi"}]`

	// blob, cached count and updated_at travel in one UPDATE statement
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `post` SET `comment_count`=?,`comments`=?,`updated_at`=? WHERE id = ?")).
		WithArgs(int64(1), raw, sqlmock.AnyArg(), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateComments(context.Background(), 1, raw, 1)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostUpdateCommentsMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysql.NewPostRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `post` SET `comment_count`=?,`comments`=?,`updated_at`=? WHERE id = ?")).
		WithArgs(int64(0), "[]", sqlmock.AnyArg(), int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.UpdateComments(context.Background(), 404, "[]", 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostFetchCommented(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysql.NewPostRepository(db)

	rows := sqlmock.NewRows([]string{"id", "title", "user_id", "comments", "comment_count"}).
		AddRow(3, "first", 7, `[{"id":"c-31"}]`, 1).
		AddRow(9, "second", 8, `[{"id":"c-91"}]`, 1)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, user_id, comments, comment_count FROM `post` WHERE comments IS NOT NULL AND comments <> '' AND comments <> '[]' ORDER BY id")).
		WillReturnRows(rows)

	posts, err := repo.FetchCommented(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, int64(3), posts[0].ID)
	assert.Equal(t, int64(9), posts[1].ID)
	assert.Contains(t, posts[0].CommentsRaw, "c-31")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostDeleteNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysql.NewPostRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `post` WHERE `post`.`id` = ?")).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostAddViews(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysql.NewPostRepository(db)

	// gorm bumps updated_at alongside the counter
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `post` SET `views`=views \\+ \\?,`updated_at`=\\? WHERE id = \\?").
		WithArgs(int64(5), sqlmock.AnyArg(), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.AddViews(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
