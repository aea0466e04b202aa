package course

import (
	"context"

	"github.com/Guyuepp/Go-Campus-Backend/domain"
	"github.com/Guyuepp/Go-Campus-Backend/internal/repository"
)

type service struct {
	courseRepo domain.CourseRepository
}

var _ domain.CourseUsecase = (*service)(nil)

func NewService(courseRepo domain.CourseRepository) *service {
	return &service{
		courseRepo: courseRepo,
	}
}

func (s *service) Fetch(ctx context.Context, cursor string, num int64) ([]domain.Course, string, error) {
	res, err := s.courseRepo.Fetch(ctx, cursor, num)
	if err != nil {
		return nil, "", err
	}

	var nextCursor string
	if len(res) > 0 {
		nextCursor = repository.EncodeCursor(res[len(res)-1].CreatedAt)
	}

	return res, nextCursor, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (domain.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

func (s *service) Store(ctx context.Context, c *domain.Course) error {
	if c.Capacity <= 0 || c.Credit < 0 {
		return domain.ErrBadParamInput
	}
	return s.courseRepo.Store(ctx, c)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.courseRepo.Delete(ctx, id)
}
