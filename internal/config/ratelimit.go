package config

import "time"

// Rate limit key strategies.
const (
	KeyByIP      = "ip"
	KeyByRoute   = "route"
	KeyByIPRoute = "ip_route"
)

// RateLimitConfig is the request budget applied in front of the directory.
// The same budget drives the Redis token bucket and the per-process
// fallback.
type RateLimitConfig struct {
	Enabled        bool
	Capacity       int // bucket size, also the burst
	RefillTokens   int // tokens added every RefillInterval
	RefillInterval time.Duration
	TTL            time.Duration // idle buckets expire after this
	KeyStrategy    string        // one of KeyByIP, KeyByRoute, KeyByIPRoute
	Prefix         string        // Redis key prefix
	Debug          bool          // expose the bucket key in responses
}

// loadRateLimit reads the RATE_LIMIT_* variables.  RATE_LIMIT_BURST
// overrides the capacity and RATE_LIMIT_REFILL_EVERY is shorthand for one
// token per interval.
func loadRateLimit(e *env) RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled:        e.boolean("RATE_LIMIT_ENABLED", true),
		Capacity:       e.positive("RATE_LIMIT_CAPACITY", 60),
		RefillTokens:   e.positive("RATE_LIMIT_REFILL_TOKENS", 1),
		RefillInterval: e.duration("RATE_LIMIT_REFILL_INTERVAL", time.Second),
		TTL:            e.duration("RATE_LIMIT_TTL", 10*time.Minute),
		KeyStrategy:    e.oneOf("RATE_LIMIT_KEY_STRATEGY", KeyByIPRoute, KeyByIP, KeyByRoute, KeyByIPRoute),
		Prefix:         e.str("RATE_LIMIT_PREFIX", "rl"),
		Debug:          e.boolean("RATE_LIMIT_DEBUG", false),
	}
	cfg.Capacity = e.positive("RATE_LIMIT_BURST", cfg.Capacity)
	if every := e.duration("RATE_LIMIT_REFILL_EVERY", 0); every > 0 {
		cfg.RefillTokens = 1
		cfg.RefillInterval = every
	}
	// A bucket must outlive a few refills or it resets to full capacity.
	if minTTL := 5 * cfg.RefillInterval; cfg.TTL < minTTL {
		cfg.TTL = minTTL
	}
	return cfg
}
