package storage

import (
	"context"

	"cafefinder/internal/domain"

	"github.com/redis/go-redis/v9"
)

const popularityKey = "favourites:top"

// PopularityCounter keeps a sorted-set leaderboard of favourite counts.
// It is derived, disposable state, not the favourite set itself.
type PopularityCounter struct {
	Client *redis.Client
}

func NewPopularityCounter(client *redis.Client) *PopularityCounter {
	return &PopularityCounter{Client: client}
}

func (c *PopularityCounter) Bump(ctx context.Context, cafeID string, delta float64) error {
	return c.Client.ZIncrBy(ctx, popularityKey, delta, cafeID).Err()
}

func (c *PopularityCounter) Top(ctx context.Context, n int64) ([]domain.CafePopularity, error) {
	entries, err := c.Client.ZRevRangeWithScores(ctx, popularityKey, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	top := make([]domain.CafePopularity, 0, len(entries))
	for _, entry := range entries {
		id, _ := entry.Member.(string)
		top = append(top, domain.CafePopularity{CafeID: id, Score: entry.Score})
	}
	return top, nil
}
