package score

import (
	"context"

	"github.com/Guyuepp/Go-Campus-Backend/domain"
)

type service struct {
	scoreRepo  domain.ScoreRepository
	courseRepo domain.CourseRepository
}

var _ domain.ScoreUsecase = (*service)(nil)

func NewService(scoreRepo domain.ScoreRepository, courseRepo domain.CourseRepository) *service {
	return &service{
		scoreRepo:  scoreRepo,
		courseRepo: courseRepo,
	}
}

func (s *service) Store(ctx context.Context, sc *domain.Score) error {
	if sc.Value < 0 || sc.Value > 100 || sc.Term == "" {
		return domain.ErrBadParamInput
	}

	if _, err := s.courseRepo.GetByID(ctx, sc.CourseID); err != nil {
		return err
	}

	return s.scoreRepo.Store(ctx, sc)
}

func (s *service) FetchByStudent(ctx context.Context, studentID int64) ([]domain.Score, error) {
	scores, err := s.scoreRepo.FetchByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	for i := range scores {
		course, err := s.courseRepo.GetByID(ctx, scores[i].CourseID)
		if err == nil {
			scores[i].Course = course
		}
	}

	return scores, nil
}
