// Package cache keeps per-event occupancy snapshots in Redis so the
// seat-map endpoint does not hit MySQL on every render. Entries expire
// after a short TTL and are invalidated eagerly when the sales backend
// publishes an occupancy event.
package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/entradas/seatmap/internal/config"
)

// OccupancyCache wraps a Redis client. A nil client disables the cache
// entirely: Get always misses, Set and Invalidate are no-ops, so
// callers need no special casing when Redis is unavailable.
type OccupancyCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

// New builds an OccupancyCache from the cache config. Pass a nil
// client (or Enabled=false) to run without Redis.
func New(rdb *redis.Client, cfg config.CacheConfig) *OccupancyCache {
	if !cfg.Enabled {
		rdb = nil
	}
	return &OccupancyCache{rdb: rdb, ttl: cfg.TTL, prefix: cfg.Prefix}
}

func (c *OccupancyCache) key(eventID string) string {
	return c.prefix + ":event:" + eventID
}

// Get returns the cached occupied-seat ids for an event and whether
// the cache had an entry. Redis errors count as misses; the caller
// falls back to the database.
func (c *OccupancyCache) Get(ctx context.Context, eventID string) ([]string, bool) {
	if c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, c.key(eventID)).Bytes()
	if err != nil {
		return nil, false
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		log.Printf("occupancy-cache: corrupt entry for event %s: %v", eventID, err)
		_ = c.rdb.Del(ctx, c.key(eventID)).Err()
		return nil, false
	}
	return ids, true
}

// Set stores the occupied-seat snapshot for an event. Failures are
// logged and ignored; the cache is an optimization, not a source of
// truth.
func (c *OccupancyCache) Set(ctx context.Context, eventID string, ids []string) {
	if c.rdb == nil {
		return
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, c.key(eventID), raw, c.ttl).Err(); err != nil {
		log.Printf("occupancy-cache: set failed for event %s: %v", eventID, err)
	}
}

// Invalidate drops the snapshot for an event so the next read goes to
// the database.
func (c *OccupancyCache) Invalidate(ctx context.Context, eventID string) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, c.key(eventID)).Err(); err != nil {
		log.Printf("occupancy-cache: invalidate failed for event %s: %v", eventID, err)
	}
}
