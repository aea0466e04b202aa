package schedule

import (
	"context"

	"github.com/Guyuepp/Go-Campus-Backend/domain"
)

type service struct {
	scheduleRepo domain.ScheduleRepository
	courseRepo   domain.CourseRepository
}

var _ domain.ScheduleUsecase = (*service)(nil)

func NewService(scheduleRepo domain.ScheduleRepository, courseRepo domain.CourseRepository) *service {
	return &service{
		scheduleRepo: scheduleRepo,
		courseRepo:   courseRepo,
	}
}

func (s *service) FetchByCourse(ctx context.Context, courseID int64) ([]domain.Schedule, error) {
	return s.scheduleRepo.FetchByCourse(ctx, courseID)
}

func (s *service) Store(ctx context.Context, sc *domain.Schedule) error {
	if sc.Weekday < 1 || sc.Weekday > 7 || sc.Slot < 1 {
		return domain.ErrBadParamInput
	}

	if _, err := s.courseRepo.GetByID(ctx, sc.CourseID); err != nil {
		return err
	}

	return s.scheduleRepo.Store(ctx, sc)
}
