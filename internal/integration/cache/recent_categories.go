// Package cache implements Redis-backed caches for advisory UX state.
package cache

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/YenChengLai/expense-tracker-v2/internal/application/adapter"
)

// recentCategoryCache implements adapter.RecentCategoryCache on a Redis
// list per user. The list is deduplicated and trimmed on every write,
// so reads are a single LRANGE.
type recentCategoryCache struct {
	client *redis.Client
}

// NewRecentCategoryCache creates a new Redis-backed recent category cache.
func NewRecentCategoryCache(client *redis.Client) adapter.RecentCategoryCache {
	return &recentCategoryCache{
		client: client,
	}
}

func recentKey(userID uuid.UUID) string {
	return fmt.Sprintf("recent_categories:%s", userID)
}

// Touch records a category use: the name moves to the front of the
// user's list, duplicates are removed, and the list is trimmed to the
// configured limit.
func (c *recentCategoryCache) Touch(ctx context.Context, userID uuid.UUID, category string) error {
	key := recentKey(userID)

	pipe := c.client.TxPipeline()
	pipe.LRem(ctx, key, 0, category)
	pipe.LPush(ctx, key, category)
	pipe.LTrim(ctx, key, 0, int64(adapter.RecentCategoryLimit-1))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record recent category: %w", err)
	}

	return nil
}

// List returns the user's recent category names, most recent first.
func (c *recentCategoryCache) List(ctx context.Context, userID uuid.UUID) ([]string, error) {
	names, err := c.client.LRange(ctx, recentKey(userID), 0, int64(adapter.RecentCategoryLimit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read recent categories: %w", err)
	}
	return names, nil
}
