package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/Go-Campus-Backend/domain"
	"github.com/Guyuepp/Go-Campus-Backend/internal/repository/cache"
)

const (
	KeyPostHome = "post:home"
)

// homePayload is the concrete shape stored under the logical-expire envelope.
// The comment blob is stripped before caching: decoded collections must
// always be read fresh from the database.
type homePayload struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	UserID       int64     `json:"user_id"`
	UserName     string    `json:"user_name"`
	CommentCount int64     `json:"comment_count"`
	Views        int64     `json:"views"`
	UpdatedAt    time.Time `json:"updated_at"`
	CreatedAt    time.Time `json:"created_at"`
}

type postCache struct {
	client *redis.Client
}

var _ domain.PostCache = (*postCache)(nil)

func NewPostCache(client *redis.Client) *postCache {
	return &postCache{
		client,
	}
}

func (c *postCache) GetHome(ctx context.Context) ([]domain.Post, bool, error) {
	data, err := c.client.Get(ctx, KeyPostHome).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, redis.Nil
		}
		return nil, false, err
	}

	var envelope struct {
		Data      []homePayload `json:"data"`
		ExpireAt  time.Time     `json:"expire_at"`
		CreatedAt time.Time     `json:"created_at"`
	}
	if err = json.Unmarshal(data, &envelope); err != nil {
		return nil, false, err
	}

	posts := make([]domain.Post, len(envelope.Data))
	for i, p := range envelope.Data {
		posts[i] = domain.Post{
			ID:    p.ID,
			Title: p.Title,
			User: domain.User{
				ID:   p.UserID,
				Name: p.UserName,
			},
			CommentCount: p.CommentCount,
			Views:        p.Views,
			UpdatedAt:    p.UpdatedAt,
			CreatedAt:    p.CreatedAt,
		}
	}

	expired := time.Now().After(envelope.ExpireAt)
	return posts, expired, nil
}

func (c *postCache) SetHome(ctx context.Context, posts []domain.Post, ttl time.Duration) error {
	payload := make([]homePayload, len(posts))
	for i, p := range posts {
		payload[i] = homePayload{
			ID:           p.ID,
			Title:        p.Title,
			UserID:       p.User.ID,
			UserName:     p.User.Name,
			CommentCount: p.CommentCount,
			Views:        p.Views,
			UpdatedAt:    p.UpdatedAt,
			CreatedAt:    p.CreatedAt,
		}
	}

	data, err := json.Marshal(cache.NewDataWithLogicalExpire(payload, ttl))
	if err != nil {
		return err
	}

	// physical TTL is deliberately longer than the logical one so stale data
	// can still be served while a rebuild runs
	return c.client.Set(ctx, KeyPostHome, data, ttl*10).Err()
}

func (c *postCache) DeleteHome(ctx context.Context) error {
	return c.client.Del(ctx, KeyPostHome).Err()
}
