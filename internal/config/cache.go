package config

import (
	"os"
	"strconv"
	"time"
)

// CacheConfig defines settings for the occupancy snapshot cache. When
// Enabled is false or no Redis client is configured, every seat-map
// request reads occupancy straight from the database. TTL bounds how
// stale a snapshot may get when no invalidation event arrives; Prefix
// namespaces the keys so several deployments can share one Redis.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled: getenv("OCCUPANCY_CACHE_ENABLED", "true") == "true",
		TTL:     parseDur(getenv("OCCUPANCY_CACHE_TTL", "15s")),
		Prefix:  getenv("OCCUPANCY_CACHE_PREFIX", "occ"),
	}
}

// Helper functions shared with ratelimit.go.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Second
	}
	return d
}
