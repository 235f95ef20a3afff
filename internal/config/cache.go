package config

import "time"

// CacheConfig defines settings for the browse response cache. Only GET
// responses are cached; catalog listings change rarely (movies and
// theaters are never deleted) so short TTLs give most of the benefit
// without serving stale seat counts for long.
type CacheConfig struct {
	Enabled      bool
	TTL          time.Duration
	Prefix       string
	MaxBodyBytes int
}

// LoadCacheConfig reads the CACHE_* environment variables with defaults
// that keep entries small and short-lived.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      envBool("CACHE_ENABLED", true),
		TTL:          envDur("CACHE_TTL", 15*time.Second),
		Prefix:       envStr("CACHE_PREFIX", "cache"),
		MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
	}
}
