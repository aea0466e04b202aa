package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/Go-Campus-Backend/domain"
)

type recordingPostRepo struct {
	mu    sync.Mutex
	views map[int64]int64
	errs  map[int64]error
}

func newRecordingPostRepo() *recordingPostRepo {
	return &recordingPostRepo{views: make(map[int64]int64), errs: make(map[int64]error)}
}

func (r *recordingPostRepo) AddViews(_ context.Context, id int64, delta int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.errs[id]; err != nil {
		return err
	}
	r.views[id] += delta
	return nil
}

func (r *recordingPostRepo) snapshot() map[int64]int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make(map[int64]int64, len(r.views))
	for k, v := range r.views {
		res[k] = v
	}
	return res
}

func (r *recordingPostRepo) Fetch(context.Context, string, int64) ([]domain.Post, error) {
	return nil, nil
}
func (r *recordingPostRepo) GetByID(context.Context, int64) (domain.Post, error) {
	return domain.Post{}, nil
}
func (r *recordingPostRepo) Store(context.Context, *domain.Post) error                { return nil }
func (r *recordingPostRepo) Delete(context.Context, int64) error                      { return nil }
func (r *recordingPostRepo) UpdateComments(context.Context, int64, string, int64) error { return nil }
func (r *recordingPostRepo) FetchCommented(context.Context) ([]domain.Post, error)    { return nil, nil }
func (r *recordingPostRepo) FetchIDs(context.Context, int64, int64) ([]int64, error)  { return nil, nil }

func TestFlushAggregatesDeltas(t *testing.T) {
	repo := newRecordingPostRepo()
	worker := NewViewSyncWorker(repo)

	worker.flush(context.Background(), map[int64]int64{1: 3, 2: 1})

	assert.Equal(t, map[int64]int64{1: 3, 2: 1}, repo.snapshot())
}

func TestFlushSkipsDeletedPosts(t *testing.T) {
	repo := newRecordingPostRepo()
	repo.errs[404] = domain.ErrNotFound
	worker := NewViewSyncWorker(repo)

	// a view for a post deleted in the meantime is dropped silently
	worker.flush(context.Background(), map[int64]int64{404: 2, 1: 1})

	assert.Equal(t, map[int64]int64{1: 1}, repo.snapshot())
}

func TestStartFlushesOnShutdown(t *testing.T) {
	repo := newRecordingPostRepo()
	worker := NewViewSyncWorker(repo)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.Start(ctx)
		close(done)
	}()

	worker.Send(1)
	worker.Send(1)
	worker.Send(2)

	// give the worker loop a moment to drain the channel into its batch
	require.Eventually(t, func() bool {
		return len(worker.ch) == 0
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}

	views := repo.snapshot()
	assert.Equal(t, int64(2), views[1])
	assert.Equal(t, int64(1), views[2])
}
