package workers

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Campus-Backend/domain"
)

type viewSyncWorker struct {
	postRepo domain.PostRepository
	ch       chan int64
}

var _ domain.ViewSyncWorker = (*viewSyncWorker)(nil)

func NewViewSyncWorker(postRepo domain.PostRepository) *viewSyncWorker {
	return &viewSyncWorker{
		postRepo: postRepo,
		ch:       make(chan int64, 1024),
	}
}

// Send records one view of the given post without blocking the request path.
func (s *viewSyncWorker) Send(postID int64) {
	select {
	case s.ch <- postID:
	default:
		logrus.Info("ViewSyncWorker's channel is full, view dropped")
	}
}

func (s *viewSyncWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	const batchSize = 100
	batch := make(map[int64]int64, batchSize)
	for {
		select {
		case postID := <-s.ch:
			batch[postID]++
			if len(batch) >= batchSize {
				s.flush(ctx, batch)
				batch = make(map[int64]int64, batchSize)
			}
		case <-ticker.C:
			s.flush(ctx, batch)
			batch = make(map[int64]int64, batchSize)
		case <-ctx.Done():
			logrus.Info("shutting down ViewSyncWorker, flushing remaining views...")
			s.flush(context.Background(), batch)
			return
		}
	}
}

func (s *viewSyncWorker) flush(ctx context.Context, batch map[int64]int64) {
	for postID, delta := range batch {
		err := s.postRepo.AddViews(ctx, postID, delta)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			logrus.Errorf("failed to flush %d views for post %d: %v", delta, postID, err)
		}
	}
}
