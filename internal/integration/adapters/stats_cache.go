// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pingoou/backend/internal/application/adapter"
)

// dashboardTTL keeps dashboard snapshots fresh enough for a storefront
// glance while absorbing the rapid-fire reads of a busy counter.
const dashboardTTL = 30 * time.Second

// redisStatsCache implements the adapter.StatsCache interface on Redis.
type redisStatsCache struct {
	client *redis.Client
}

// NewRedisStatsCache creates a new Redis-backed stats cache instance.
func NewRedisStatsCache(client *redis.Client) adapter.StatsCache {
	return &redisStatsCache{
		client: client,
	}
}

func dashboardKey(userID uuid.UUID) string {
	return fmt.Sprintf("dashboard:%s", userID)
}

// GetDashboard returns the cached dashboard payload for the user, or nil on miss.
func (c *redisStatsCache) GetDashboard(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	payload, err := c.client.Get(ctx, dashboardKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return payload, nil
}

// SetDashboard stores the dashboard payload for the user with a short TTL.
func (c *redisStatsCache) SetDashboard(ctx context.Context, userID uuid.UUID, payload []byte) error {
	return c.client.Set(ctx, dashboardKey(userID), payload, dashboardTTL).Err()
}

// InvalidateDashboard drops the cached payload after a write that changes it.
func (c *redisStatsCache) InvalidateDashboard(ctx context.Context, userID uuid.UUID) error {
	return c.client.Del(ctx, dashboardKey(userID)).Err()
}
