package repository

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Campus-Backend/domain"
)

// userDirectory resolves user ids to display names through a redis
// read-through cache. Ids that resolve nowhere map to the unknown-user
// sentinel; the directory itself never fails a lookup because of them.
type userDirectory struct {
	userRepo domain.UserRepository
	cache    domain.UserNameCache
}

var _ domain.UserDirectory = (*userDirectory)(nil)

func NewUserDirectory(userRepo domain.UserRepository, cache domain.UserNameCache) *userDirectory {
	return &userDirectory{
		userRepo: userRepo,
		cache:    cache,
	}
}

func (d *userDirectory) GetDisplayNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	res := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return res, nil
	}

	unique := make([]int64, 0, len(ids))
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			unique = append(unique, id)
			seen[id] = true
		}
	}

	cached, err := d.cache.MGetNames(ctx, unique)
	if err != nil {
		logrus.Warnf("user name cache lookup failed: %v", err)
		cached = map[int64]string{}
	}

	missing := make([]int64, 0, len(unique))
	for _, id := range unique {
		if name, ok := cached[id]; ok {
			res[id] = name
		} else {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		users, err := d.userRepo.GetByIDs(ctx, missing)
		if err != nil {
			return nil, err
		}

		found := make(map[int64]string, len(users))
		for _, u := range users {
			found[u.ID] = u.Name
			res[u.ID] = u.Name
		}

		if len(found) > 0 {
			go func(names map[int64]string) {
				if err := d.cache.SetNames(context.Background(), names); err != nil {
					logrus.Warnf("failed to backfill user name cache: %v", err)
				}
			}(found)
		}
	}

	// unresolved ids get the sentinel so enrichment never fails on them
	for _, id := range unique {
		if _, ok := res[id]; !ok {
			res[id] = domain.UnknownUserName
		}
	}

	return res, nil
}
