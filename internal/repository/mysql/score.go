package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/Go-Campus-Backend/domain"
	"github.com/Guyuepp/Go-Campus-Backend/internal/repository/mysql/model"
)

type scoreRepository struct {
	DB *gorm.DB
}

var _ domain.ScoreRepository = (*scoreRepository)(nil)

func NewScoreRepository(db *gorm.DB) *scoreRepository {
	return &scoreRepository{db}
}

func (m *scoreRepository) Store(ctx context.Context, s *domain.Score) error {
	scoreModel := model.NewScoreFromDomain(s)
	result := m.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&scoreModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrConflict
	}
	s.ID = scoreModel.ID
	s.CreatedAt = scoreModel.CreatedAt
	return nil
}

func (m *scoreRepository) FetchByStudent(ctx context.Context, studentID int64) ([]domain.Score, error) {
	var scores []model.Score
	err := m.DB.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("term DESC, course_id").
		Find(&scores).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Score, len(scores))
	for i := range scores {
		res[i] = scores[i].ToDomain()
	}
	return res, nil
}
