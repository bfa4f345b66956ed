package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"tableside/internal/domain"
)

// OccupancyCache keeps the live occupancy board (one hash per restaurant)
// and a short-lived stats cache in Redis.
type OccupancyCache struct {
	Client   *redis.Client
	StatsTTL time.Duration
}

func NewOccupancyCache(client *redis.Client, statsTTL time.Duration) *OccupancyCache {
	return &OccupancyCache{Client: client, StatsTTL: statsTTL}
}

func (c *OccupancyCache) boardKey(restaurantID int) string {
	return "occupancy:" + strconv.Itoa(restaurantID)
}

func (c *OccupancyCache) statsKey(restaurantID int) string {
	return "stats:" + strconv.Itoa(restaurantID)
}

func (c *OccupancyCache) SetLabel(ctx context.Context, restaurantID, tableID int, label domain.OccupancyLabel) error {
	return c.Client.HSet(ctx, c.boardKey(restaurantID), strconv.Itoa(tableID), string(label)).Err()
}

func (c *OccupancyCache) Board(ctx context.Context, restaurantID int) (map[int]domain.OccupancyLabel, error) {
	entries, err := c.Client.HGetAll(ctx, c.boardKey(restaurantID)).Result()
	if err != nil {
		return nil, err
	}

	board := make(map[int]domain.OccupancyLabel, len(entries))
	for field, value := range entries {
		tableID, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("malformed board field %q: %w", field, err)
		}
		board[tableID] = domain.OccupancyLabel(value)
	}
	return board, nil
}

func (c *OccupancyCache) SetStats(ctx context.Context, restaurantID int, stats *domain.Stats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.statsKey(restaurantID), payload, c.StatsTTL).Err()
}

// GetStats returns nil with no error on a cache miss.
func (c *OccupancyCache) GetStats(ctx context.Context, restaurantID int) (*domain.Stats, error) {
	payload, err := c.Client.Get(ctx, c.statsKey(restaurantID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var stats domain.Stats
	if err := json.Unmarshal(payload, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
