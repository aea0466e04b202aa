package repository

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/Go-Campus-Backend/domain"
)

const latestNoticeTTL = 1 * time.Minute

// noticeRepository 协调层，最新公告走缓存
type noticeRepository struct {
	db           domain.NoticeRepository
	cache        domain.NoticeCache
	userRepo     domain.UserRepository
	rebuildGroup singleflight.Group
}

var _ domain.NoticeRepository = (*noticeRepository)(nil)

func NewNoticeRepository(db domain.NoticeRepository, cache domain.NoticeCache, userRepo domain.UserRepository) *noticeRepository {
	return &noticeRepository{
		db:       db,
		cache:    cache,
		userRepo: userRepo,
	}
}

func (r *noticeRepository) Fetch(ctx context.Context, cursor string, num int64) ([]domain.Notice, error) {
	if cursor == "" {
		notices, expired, err := r.cache.GetLatest(ctx)
		if err == nil {
			if expired {
				go r.rebuildLatestCache(context.Background(), num)
			}
			return notices, nil
		}
	}

	notices, err := r.db.Fetch(ctx, cursor, num)
	if err != nil {
		return nil, err
	}

	notices, err = r.fillUserDetails(ctx, notices)
	if err != nil {
		return nil, err
	}

	if cursor == "" {
		go func(data []domain.Notice) {
			_ = r.cache.SetLatest(context.Background(), data, latestNoticeTTL)
		}(notices)
	}

	return notices, nil
}

func (r *noticeRepository) GetByID(ctx context.Context, id int64) (domain.Notice, error) {
	notice, err := r.db.GetByID(ctx, id)
	if err != nil {
		return domain.Notice{}, err
	}

	user, err := r.userRepo.GetByID(ctx, notice.User.ID)
	if err == nil {
		notice.User = user
	}

	return notice, nil
}

func (r *noticeRepository) Store(ctx context.Context, n *domain.Notice) error {
	err := r.db.Store(ctx, n)
	if err != nil {
		return err
	}

	go func() {
		_ = r.cache.DeleteLatest(context.Background())
	}()

	return nil
}

func (r *noticeRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.Delete(ctx, id)
	if err != nil {
		return err
	}

	go func() {
		_ = r.cache.DeleteLatest(context.Background())
	}()

	return nil
}

func (r *noticeRepository) fillUserDetails(ctx context.Context, notices []domain.Notice) ([]domain.Notice, error) {
	if len(notices) == 0 {
		return notices, nil
	}

	userIDs := make([]int64, 0, len(notices))
	existMap := make(map[int64]bool)
	for _, item := range notices {
		if !existMap[item.User.ID] {
			userIDs = append(userIDs, item.User.ID)
			existMap[item.User.ID] = true
		}
	}

	users, err := r.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	userMap := make(map[int64]domain.User)
	for _, u := range users {
		userMap[u.ID] = u
	}

	for i := range notices {
		if u, ok := userMap[notices[i].User.ID]; ok {
			notices[i].User = u
		}
	}

	return notices, nil
}

// rebuildLatestCache 异步重建最新公告缓存
func (r *noticeRepository) rebuildLatestCache(ctx context.Context, num int64) {
	_, err, _ := r.rebuildGroup.Do("notice:latest", func() (any, error) {
		notices, err := r.db.Fetch(ctx, "", num)
		if err != nil {
			return nil, err
		}

		notices, err = r.fillUserDetails(ctx, notices)
		if err != nil {
			return nil, err
		}

		return nil, r.cache.SetLatest(ctx, notices, latestNoticeTTL)
	})

	if err != nil {
		logrus.Errorf("rebuildLatestCache failed: %v", err)
	}
}
