package notice

import (
	"context"
	"strings"

	"github.com/Guyuepp/Go-Campus-Backend/domain"
	"github.com/Guyuepp/Go-Campus-Backend/internal/repository"
)

type service struct {
	noticeRepo domain.NoticeRepository
}

var _ domain.NoticeUsecase = (*service)(nil)

func NewService(noticeRepo domain.NoticeRepository) *service {
	return &service{
		noticeRepo: noticeRepo,
	}
}

func (s *service) Fetch(ctx context.Context, cursor string, num int64) ([]domain.Notice, string, error) {
	res, err := s.noticeRepo.Fetch(ctx, cursor, num)
	if err != nil {
		return nil, "", err
	}

	var nextCursor string
	if len(res) > 0 {
		nextCursor = repository.EncodeCursor(res[len(res)-1].CreatedAt)
	}

	return res, nextCursor, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (domain.Notice, error) {
	return s.noticeRepo.GetByID(ctx, id)
}

func (s *service) Store(ctx context.Context, n *domain.Notice) error {
	if strings.TrimSpace(n.Title) == "" || strings.TrimSpace(n.Content) == "" {
		return domain.ErrBadParamInput
	}
	return s.noticeRepo.Store(ctx, n)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.noticeRepo.Delete(ctx, id)
}
