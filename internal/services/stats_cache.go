package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/rueidis"

	model "tasktracker.com/tasktracker/internal/models"
)

// StatsCache is a cache-aside layer for the stats summary. A nil
// *StatsCache is a valid no-op cache, so the service works without redis.
type StatsCache struct {
	client rueidis.Client
	key    string
	ttl    time.Duration
}

func NewStatsCache(client rueidis.Client, key string, ttl time.Duration) *StatsCache {
	return &StatsCache{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

func (c *StatsCache) Get(ctx context.Context) (*model.TaskStats, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.Do(
		ctx,
		c.client.B().Get().Key(c.key).Build(),
	).AsBytes()
	if err != nil {
		return nil, false
	}

	var stats model.TaskStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

func (c *StatsCache) Set(ctx context.Context, stats *model.TaskStats) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}

	_ = c.client.Do(
		ctx,
		c.client.B().Set().Key(c.key).Value(string(raw)).
			Ex(c.ttl).Build(),
	).Error()
}

func (c *StatsCache) Invalidate(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}

	return c.client.Do(
		ctx,
		c.client.B().Del().Key(c.key).Build(),
	).Error()
}
