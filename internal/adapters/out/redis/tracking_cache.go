// Package redis caches public tracking views. The tracking endpoint is
// anonymous and read-heavy; a short TTL keeps the hot codes off the database
// without serving stale views for long.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/redis/go-redis/v9"
)

const trackingKeyPrefix = "tracking:"

// TrackingSnapshotCache implements queries.TrackingSnapshotCache on Redis.
type TrackingSnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTrackingSnapshotCache creates a cache with the given TTL per entry.
func NewTrackingSnapshotCache(client *redis.Client, ttl time.Duration) *TrackingSnapshotCache {
	return &TrackingSnapshotCache{client: client, ttl: ttl}
}

// Get returns the cached view for a tracking code, or (nil, nil) on a miss.
func (c *TrackingSnapshotCache) Get(ctx context.Context, code string) (*queries.TrackByCodeQueryResponse, error) {
	payload, err := c.client.Get(ctx, trackingKeyPrefix+code).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var snapshot queries.TrackByCodeQueryResponse
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// Set stores the view for a tracking code.
func (c *TrackingSnapshotCache) Set(ctx context.Context, code string, snapshot queries.TrackByCodeQueryResponse) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, trackingKeyPrefix+code, payload, c.ttl).Err()
}
