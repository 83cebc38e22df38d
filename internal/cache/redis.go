package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"spacecast/internal/logger"
	"spacecast/internal/models"
)

const latestForecastKey = "forecast3day_latest_v1"

// SnapshotCache stores the most recent normalized forecast in Redis so
// restarts and backend outages still serve the last known good snapshot.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

// NewSnapshotCache creates a snapshot cache backed by the given Redis
// address. Returns an error if the server does not respond to a ping.
func NewSnapshotCache(ctx context.Context, addr, password string, ttl time.Duration) (*SnapshotCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return &SnapshotCache{
		client: client,
		ttl:    ttl,
		log:    logger.GetGlobalLogger().WithComponent("cache"),
	}, nil
}

// SetLatest stores the forecast snapshot under the latest-forecast key
func (c *SnapshotCache) SetLatest(ctx context.Context, forecast *models.Forecast3Day) error {
	data, err := json.Marshal(forecast)
	if err != nil {
		return fmt.Errorf("failed to marshal forecast snapshot: %w", err)
	}
	if err := c.client.Set(ctx, latestForecastKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store forecast snapshot: %w", err)
	}
	c.log.Debug("forecast snapshot cached", logger.Fields{"ttl": c.ttl.String()})
	return nil
}

// GetLatest retrieves the cached forecast snapshot. A cache miss returns
// (nil, nil).
func (c *SnapshotCache) GetLatest(ctx context.Context) (*models.Forecast3Day, error) {
	data, err := c.client.Get(ctx, latestForecastKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read forecast snapshot: %w", err)
	}
	var forecast models.Forecast3Day
	if err := json.Unmarshal(data, &forecast); err != nil {
		return nil, fmt.Errorf("failed to unmarshal forecast snapshot: %w", err)
	}
	return &forecast, nil
}

// Close releases the underlying Redis connection
func (c *SnapshotCache) Close() error {
	return c.client.Close()
}
