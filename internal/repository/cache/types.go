package cache

import "time"

// DataWithLogicalExpire wraps cached data with a logical expire timestamp.
// Expired entries are still served while a background rebuild refreshes them.
type DataWithLogicalExpire struct {
	Data      any       `json:"data"`
	ExpireAt  time.Time `json:"expire_at"`
	CreatedAt time.Time `json:"created_at"` // for debugging
}

// IsLogicalExpired checks whether the entry passed its logical TTL.
func (d *DataWithLogicalExpire) IsLogicalExpired() bool {
	return time.Now().After(d.ExpireAt)
}

// NewDataWithLogicalExpire wraps data with a logical TTL starting now.
func NewDataWithLogicalExpire(data any, ttl time.Duration) *DataWithLogicalExpire {
	now := time.Now()
	return &DataWithLogicalExpire{
		Data:      data,
		ExpireAt:  now.Add(ttl),
		CreatedAt: now,
	}
}
