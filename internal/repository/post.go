package repository

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/Go-Campus-Backend/domain"
)

const homeCacheTTL = 30 * time.Second

// postRepository 协调层，协调缓存和数据库
//
// Only the home-page listing is cached. Reads and writes that touch the
// embedded comment collection always go straight to the database: the
// comment mutation protocol depends on decoding the freshest persisted blob.
type postRepository struct {
	db           domain.PostRepository
	cache        domain.PostCache
	userRepo     domain.UserRepository
	rebuildGroup singleflight.Group
}

var _ domain.PostRepository = (*postRepository)(nil)

// NewPostRepository 创建协调层repository
func NewPostRepository(db domain.PostRepository, cache domain.PostCache, userRepo domain.UserRepository) *postRepository {
	return &postRepository{
		db:       db,
		cache:    cache,
		userRepo: userRepo,
	}
}

// Fetch 获取帖子列表，首页走缓存
func (r *postRepository) Fetch(ctx context.Context, cursor string, num int64) ([]domain.Post, error) {
	if cursor == "" {
		posts, expired, err := r.cache.GetHome(ctx)
		if err == nil {
			if expired {
				go r.rebuildHomeCache(context.Background(), num)
			}
			return posts, nil
		}
	}

	posts, err := r.db.Fetch(ctx, cursor, num)
	if err != nil {
		return nil, err
	}

	posts, err = r.fillUserDetails(ctx, posts)
	if err != nil {
		return nil, err
	}

	if cursor == "" {
		go func(data []domain.Post) {
			_ = r.cache.SetHome(context.Background(), data, homeCacheTTL)
		}(posts)
	}

	return posts, nil
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	post, err := r.db.GetByID(ctx, id)
	if err != nil {
		return domain.Post{}, err
	}

	user, err := r.userRepo.GetByID(ctx, post.User.ID)
	if err == nil {
		post.User = user
	}

	return post, nil
}

func (r *postRepository) Store(ctx context.Context, p *domain.Post) error {
	err := r.db.Store(ctx, p)
	if err != nil {
		return err
	}

	go func() {
		_ = r.cache.DeleteHome(context.Background())
	}()

	return nil
}

func (r *postRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.Delete(ctx, id)
	if err != nil {
		return err
	}

	go func() {
		_ = r.cache.DeleteHome(context.Background())
	}()

	return nil
}

func (r *postRepository) AddViews(ctx context.Context, id int64, deltaViews int64) error {
	return r.db.AddViews(ctx, id, deltaViews)
}

// UpdateComments bypasses every cache layer on purpose.
func (r *postRepository) UpdateComments(ctx context.Context, id int64, raw string, count int64) error {
	return r.db.UpdateComments(ctx, id, raw, count)
}

// FetchCommented bypasses every cache layer on purpose.
func (r *postRepository) FetchCommented(ctx context.Context) ([]domain.Post, error) {
	return r.db.FetchCommented(ctx)
}

func (r *postRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	return r.db.FetchIDs(ctx, cursor, limit)
}

// fillUserDetails 批量填充用户详细信息
func (r *postRepository) fillUserDetails(ctx context.Context, posts []domain.Post) ([]domain.Post, error) {
	if len(posts) == 0 {
		return posts, nil
	}

	userIDs := make([]int64, 0, len(posts))
	existMap := make(map[int64]bool)
	for _, item := range posts {
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

	for i := range posts {
		if u, ok := userMap[posts[i].User.ID]; ok {
			posts[i].User = u
		}
	}

	return posts, nil
}

// rebuildHomeCache 异步重建首页缓存
func (r *postRepository) rebuildHomeCache(ctx context.Context, num int64) {
	_, err, _ := r.rebuildGroup.Do("home", func() (any, error) {
		posts, err := r.db.Fetch(ctx, "", num)
		if err != nil {
			logrus.Errorf("failed to rebuild home cache from db: %v", err)
			return nil, err
		}

		posts, err = r.fillUserDetails(ctx, posts)
		if err != nil {
			logrus.Errorf("failed to fill user details: %v", err)
			return nil, err
		}

		err = r.cache.SetHome(ctx, posts, homeCacheTTL)
		if err != nil {
			logrus.Errorf("failed to set home cache: %v", err)
			return nil, err
		}

		return nil, nil
	})

	if err != nil {
		logrus.Errorf("rebuildHomeCache failed: %v", err)
	}
}
