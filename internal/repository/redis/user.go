package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/Go-Campus-Backend/domain"
)

const (
	KeyUserName = "user:name:%d"
	userNameTTL = 30 * time.Minute
)

type userNameCache struct {
	client *redis.Client
}

var _ domain.UserNameCache = (*userNameCache)(nil)

func NewUserNameCache(client *redis.Client) *userNameCache {
	return &userNameCache{
		client,
	}
}

func (c *userNameCache) MGetNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	res := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return res, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = fmt.Sprintf(KeyUserName, id)
	}

	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	for i, val := range values {
		if val == nil {
			continue
		}
		if name, ok := val.(string); ok {
			res[ids[i]] = name
		}
	}

	return res, nil
}

func (c *userNameCache) SetNames(ctx context.Context, names map[int64]string) error {
	if len(names) == 0 {
		return nil
	}

	pipe := c.client.Pipeline()
	for id, name := range names {
		pipe.Set(ctx, fmt.Sprintf(KeyUserName, id), name, userNameTTL)
	}
	_, err := pipe.Exec(ctx)
	return err
}
