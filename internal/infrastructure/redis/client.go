package redis

import (
	"github.com/redis/go-redis/v9"

	"github.com/go-fintech-services/internal/config"
)

// NewClient creates a Redis client from the cache configuration. The client
// is safe for concurrent use and owned by the caller, which closes it on
// shutdown.
func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
