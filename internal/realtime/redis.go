package realtime

import (
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// NewRedis returns a client for the optional notification publish channel,
// or nil when REDIS_ADDR is unset. The store stays the source of truth
// either way; Redis only mirrors created notifications to subscribers.
func NewRedis() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Info().Msg("redis disabled (REDIS_ADDR not set)")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	log.Info().Str("addr", addr).Msg("redis client created")
	return rdb
}
