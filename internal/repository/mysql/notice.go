package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Campus-Backend/domain"
	"github.com/Guyuepp/Go-Campus-Backend/internal/repository"
	"github.com/Guyuepp/Go-Campus-Backend/internal/repository/mysql/model"
)

type noticeRepository struct {
	DB *gorm.DB
}

var _ domain.NoticeRepository = (*noticeRepository)(nil)

func NewNoticeRepository(db *gorm.DB) *noticeRepository {
	return &noticeRepository{db}
}

func (m *noticeRepository) Fetch(ctx context.Context, cursor string, num int64) (res []domain.Notice, err error) {
	var notices []model.Notice
	decodedCursor, err := repository.DecodeCursor(cursor)
	if err != nil && cursor != "" {
		return nil, domain.ErrBadParamInput
	}

	repository.PageVerify(&num)
	query := m.DB.WithContext(ctx).Order("created_at DESC").Limit(int(num))
	if cursor != "" {
		query = query.Where("created_at < ?", decodedCursor)
	}
	err = query.Find(&notices).Error
	if err != nil {
		return
	}

	for _, notice := range notices {
		res = append(res, notice.ToDomain())
	}
	return
}

func (m *noticeRepository) GetByID(ctx context.Context, id int64) (res domain.Notice, err error) {
	var notice model.Notice
	err = m.DB.WithContext(ctx).First(&notice, "id = ?", id).Error
	if err != nil {
		return res, domain.ErrNotFound
	}
	res = notice.ToDomain()
	return
}

func (m *noticeRepository) Store(ctx context.Context, n *domain.Notice) error {
	noticeModel := model.NewNoticeFromDomain(n)
	result := m.DB.WithContext(ctx).Create(&noticeModel)
	if result.Error != nil {
		return result.Error
	}
	n.ID = noticeModel.ID
	n.CreatedAt = noticeModel.CreatedAt
	n.UpdatedAt = noticeModel.UpdatedAt
	return nil
}

func (m *noticeRepository) Delete(ctx context.Context, id int64) error {
	result := m.DB.WithContext(ctx).Delete(&model.Notice{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
