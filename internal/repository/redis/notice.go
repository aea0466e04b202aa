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
	KeyNoticeLatest = "notice:latest"
)

type noticePayload struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    int64     `json:"user_id"`
	UserName  string    `json:"user_name"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedAt time.Time `json:"created_at"`
}

type noticeCache struct {
	client *redis.Client
}

var _ domain.NoticeCache = (*noticeCache)(nil)

func NewNoticeCache(client *redis.Client) *noticeCache {
	return &noticeCache{
		client,
	}
}

func (c *noticeCache) GetLatest(ctx context.Context) ([]domain.Notice, bool, error) {
	data, err := c.client.Get(ctx, KeyNoticeLatest).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, redis.Nil
		}
		return nil, false, err
	}

	var envelope struct {
		Data      []noticePayload `json:"data"`
		ExpireAt  time.Time       `json:"expire_at"`
		CreatedAt time.Time       `json:"created_at"`
	}
	if err = json.Unmarshal(data, &envelope); err != nil {
		return nil, false, err
	}

	notices := make([]domain.Notice, len(envelope.Data))
	for i, n := range envelope.Data {
		notices[i] = domain.Notice{
			ID:      n.ID,
			Title:   n.Title,
			Content: n.Content,
			User: domain.User{
				ID:   n.UserID,
				Name: n.UserName,
			},
			UpdatedAt: n.UpdatedAt,
			CreatedAt: n.CreatedAt,
		}
	}

	expired := time.Now().After(envelope.ExpireAt)
	return notices, expired, nil
}

func (c *noticeCache) SetLatest(ctx context.Context, notices []domain.Notice, ttl time.Duration) error {
	payload := make([]noticePayload, len(notices))
	for i, n := range notices {
		payload[i] = noticePayload{
			ID:        n.ID,
			Title:     n.Title,
			Content:   n.Content,
			UserID:    n.User.ID,
			UserName:  n.User.Name,
			UpdatedAt: n.UpdatedAt,
			CreatedAt: n.CreatedAt,
		}
	}

	data, err := json.Marshal(cache.NewDataWithLogicalExpire(payload, ttl))
	if err != nil {
		return err
	}

	return c.client.Set(ctx, KeyNoticeLatest, data, ttl*10).Err()
}

func (c *noticeCache) DeleteLatest(ctx context.Context) error {
	return c.client.Del(ctx, KeyNoticeLatest).Err()
}
