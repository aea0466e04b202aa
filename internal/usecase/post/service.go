package post

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Campus-Backend/domain"
	"github.com/Guyuepp/Go-Campus-Backend/internal/repository"
)

const bloomWarmBatch = 1000

type service struct {
	postRepo   domain.PostRepository
	bloomRepo  domain.BloomRepository
	viewWorker domain.ViewSyncWorker
}

var _ domain.PostUsecase = (*service)(nil)

func NewService(postRepo domain.PostRepository, bloomRepo domain.BloomRepository, viewWorker domain.ViewSyncWorker) *service {
	return &service{
		postRepo:   postRepo,
		bloomRepo:  bloomRepo,
		viewWorker: viewWorker,
	}
}

func (s *service) Fetch(ctx context.Context, cursor string, num int64) ([]domain.Post, string, error) {
	res, err := s.postRepo.Fetch(ctx, cursor, num)
	if err != nil {
		return nil, "", err
	}

	var nextCursor string
	if len(res) > 0 {
		nextCursor = repository.EncodeCursor(res[len(res)-1].CreatedAt)
	}

	return res, nextCursor, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	exists, err := s.bloomRepo.Exists(ctx, id)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says post %d does not exist", id)
		return domain.Post{}, domain.ErrNotFound
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Post{}, err
	}

	s.viewWorker.Send(id)

	return post, nil
}

func (s *service) Store(ctx context.Context, p *domain.Post) error {
	if err := s.postRepo.Store(ctx, p); err != nil {
		return err
	}

	if err := s.bloomRepo.Add(ctx, p.ID); err != nil {
		logrus.Warnf("failed to add post %d to bloom filter: %v", p.ID, err)
	}

	return nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.postRepo.Delete(ctx, id)
}

// InitBloomFilter warms the filter with every existing post id. Run once at
// startup.
func (s *service) InitBloomFilter(ctx context.Context) error {
	var cursor int64
	for {
		ids, err := s.postRepo.FetchIDs(ctx, cursor, bloomWarmBatch)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		if err := s.bloomRepo.BulkAdd(ctx, ids); err != nil {
			return err
		}

		cursor = ids[len(ids)-1]
		if len(ids) < bloomWarmBatch {
			return nil
		}
	}
}
