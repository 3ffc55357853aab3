package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/javiercriado/interview-dashboard/pkg/model"
)

const analyticsKey = "analytics:summary"

// AnalyticsCache keeps the last computed analytics snapshot in redis so the
// dashboard overview does not rescan the store on every poll. Misses and
// redis errors both read as "not cached".
type AnalyticsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAnalyticsCache(rdb *redis.Client, ttl time.Duration) *AnalyticsCache {
	return &AnalyticsCache{rdb: rdb, ttl: ttl}
}

func (c *AnalyticsCache) Get(ctx context.Context) (*model.Analytics, bool) {
	raw, err := c.rdb.Get(ctx, analyticsKey).Bytes()
	if err != nil {
		return nil, false
	}
	var a model.Analytics
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, false
	}
	return &a, true
}

func (c *AnalyticsCache) Set(ctx context.Context, a *model.Analytics) {
	raw, err := json.Marshal(a)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, analyticsKey, raw, c.ttl)
}

// Invalidate drops the snapshot; called after any mutation that changes the
// interview or candidate collections.
func (c *AnalyticsCache) Invalidate(ctx context.Context) {
	c.rdb.Del(ctx, analyticsKey)
}
