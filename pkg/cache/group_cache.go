package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	publicGroupsKey = "juntaplay:groups:public"
	publicGroupsTTL = 60 * time.Second
)

// GroupCache is the read cache for the public group catalog. The contract is
// explicit: readers call Get, writers call Invalidate after any group
// mutation. A nil client degrades to a no-op cache.
type GroupCache struct {
	rdb *redis.Client
}

func NewGroupCache(rdb *redis.Client) *GroupCache {
	return &GroupCache{rdb: rdb}
}

// Get unmarshals the cached catalog into dest. found=false on miss or when
// the cache is disabled.
func (c *GroupCache) Get(ctx context.Context, dest interface{}) (bool, error) {
	if c.rdb == nil {
		return false, nil
	}

	raw, err := c.rdb.Get(ctx, publicGroupsKey).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores the catalog snapshot with a short TTL.
func (c *GroupCache) Set(ctx context.Context, value interface{}) error {
	if c.rdb == nil {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, publicGroupsKey, raw, publicGroupsTTL).Err()
}

// Invalidate drops the snapshot. Called by every write path that changes
// group visibility, slots or pricing.
func (c *GroupCache) Invalidate(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, publicGroupsKey).Err()
}
