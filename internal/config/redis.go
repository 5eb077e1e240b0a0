package config

// Redis backs the distributed rate limiter.  If the server cannot be
// reached at startup the process falls back to a per-process limiter
// with the same budget.

import (
	"context"
	"crypto/tls"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig holds the connection parameters of the Redis server.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TLS      bool
}

// loadRedis reads:
//
//	REDIS_HOST and REDIS_PORT – hostname and port of the Redis server
//	REDIS_ADDR – host:port shorthand (host/port win when both are set)
//	REDIS_PASSWORD – optional password
//	REDIS_DB – database number (default 0)
//	REDIS_TLS – enable TLS
func loadRedis(e *env) RedisConfig {
	addr := e.str("REDIS_ADDR", "localhost:6379")
	host, port := e.str("REDIS_HOST", ""), e.str("REDIS_PORT", "")
	if host != "" && port != "" {
		addr = host + ":" + port
	}
	db := e.integer("REDIS_DB", 0)
	if db < 0 {
		e.bad("REDIS_DB", strconv.Itoa(db), "want a database number")
		db = 0
	}
	return RedisConfig{
		Addr:     addr,
		Password: e.str("REDIS_PASSWORD", ""),
		DB:       db,
		TLS:      e.boolean("REDIS_TLS", false),
	}
}

// NewRedisClient connects to Redis and pings it with a short timeout.
// The returned client is nil when the server is unreachable.
func NewRedisClient(cfg RedisConfig) *redis.Client {
	var tlsConf *tls.Config
	if cfg.TLS {
		tlsConf = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(&redis.Options{
		Addr:      cfg.Addr,
		Password:  cfg.Password,
		DB:        cfg.DB,
		TLSConfig: tlsConf,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil
	}
	return client
}
