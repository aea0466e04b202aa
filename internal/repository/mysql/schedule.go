package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Campus-Backend/domain"
	"github.com/Guyuepp/Go-Campus-Backend/internal/repository/mysql/model"
)

type scheduleRepository struct {
	DB *gorm.DB
}

var _ domain.ScheduleRepository = (*scheduleRepository)(nil)

func NewScheduleRepository(db *gorm.DB) *scheduleRepository {
	return &scheduleRepository{db}
}

func (m *scheduleRepository) FetchByCourse(ctx context.Context, courseID int64) ([]domain.Schedule, error) {
	var schedules []model.Schedule
	err := m.DB.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("weekday, slot").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Schedule, len(schedules))
	for i := range schedules {
		res[i] = schedules[i].ToDomain()
	}
	return res, nil
}

func (m *scheduleRepository) Store(ctx context.Context, s *domain.Schedule) error {
	scheduleModel := model.NewScheduleFromDomain(s)
	result := m.DB.WithContext(ctx).Create(&scheduleModel)
	if result.Error != nil {
		return result.Error
	}
	s.ID = scheduleModel.ID
	return nil
}
