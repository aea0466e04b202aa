package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Campus-Backend/domain"
	"github.com/Guyuepp/Go-Campus-Backend/internal/repository"
	"github.com/Guyuepp/Go-Campus-Backend/internal/repository/mysql/model"
)

type postRepository struct {
	DB *gorm.DB
}

var _ domain.PostRepository = (*postRepository)(nil)

// NewPostRepository 创建帖子数据库操作层
func NewPostRepository(db *gorm.DB) *postRepository {
	return &postRepository{db}
}

func (m *postRepository) Fetch(ctx context.Context, cursor string, num int64) (res []domain.Post, err error) {
	var posts []model.Post
	decodedCursor, err := repository.DecodeCursor(cursor)
	if err != nil && cursor != "" {
		return nil, domain.ErrBadParamInput
	}

	repository.PageVerify(&num)
	// the comment blob is never selected on list queries
	err = m.DB.WithContext(ctx).Select("id, title, user_id, comment_count, views, updated_at, created_at").
		Where("created_at > ?", decodedCursor).
		Order("created_at").
		Limit(int(num)).
		Find(&posts).
		Error

	if err != nil {
		return
	}

	for _, post := range posts {
		res = append(res, post.ToDomain())
	}

	return
}

func (m *postRepository) GetByID(ctx context.Context, id int64) (res domain.Post, err error) {
	var post model.Post
	err = m.DB.WithContext(ctx).First(&post, "id = ?", id).Error
	if err != nil {
		return res, domain.ErrNotFound
	}
	res = post.ToDomain()
	return
}

func (m *postRepository) Store(ctx context.Context, p *domain.Post) (err error) {
	postModel := model.NewPostFromDomain(p)
	result := m.DB.WithContext(ctx).Create(&postModel)
	if result.Error != nil {
		return result.Error
	}
	p.ID = postModel.ID
	p.CreatedAt = postModel.CreatedAt
	p.UpdatedAt = postModel.UpdatedAt
	return
}

func (m *postRepository) Delete(ctx context.Context, id int64) error {
	result := m.DB.WithContext(ctx).Delete(&model.Post{}, id)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (m *postRepository) AddViews(ctx context.Context, id int64, deltaViews int64) error {
	result := m.DB.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Update("views", gorm.Expr("views + ?", deltaViews))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// UpdateComments writes blob, cached count and updated_at in a single UPDATE
// so the three columns can never drift apart within one mutation.
func (m *postRepository) UpdateComments(ctx context.Context, id int64, raw string, count int64) error {
	result := m.DB.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).
		Updates(map[string]any{
			"comments":      raw,
			"comment_count": count,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// FetchCommented filters empty and legacy-NULL blobs in SQL so callers never
// decode a post that contributes nothing.
func (m *postRepository) FetchCommented(ctx context.Context) ([]domain.Post, error) {
	var posts []model.Post
	err := m.DB.WithContext(ctx).
		Select("id, title, user_id, comments, comment_count").
		Where("comments IS NOT NULL AND comments <> '' AND comments <> '[]'").
		Order("id").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Post, len(posts))
	for i := range posts {
		res[i] = posts[i].ToDomain()
	}
	return res, nil
}

func (m *postRepository) FetchIDs(ctx context.Context, cursor, limit int64) (ids []int64, err error) {
	err = m.DB.WithContext(ctx).
		Model(&model.Post{}).
		Select("id").
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Find(&ids).Error
	return
}
