package database

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/coursewave/coursewave-app/pkg/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a redis client from configuration and verifies the
// connection before returning it.
func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	addr := cfg.GetString(config.KeyRedisAddr)
	password := cfg.GetString(config.KeyRedisPassword)

	if addr == "" {
		return nil, fmt.Errorf("Redis.Addr is not configured")
	}

	db := 0
	if s := cfg.GetString(config.KeyRedisDB); s != "" {
		var err error
		db, err = strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid Redis.DB value %q: %w", s, err)
		}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis (%s, DB %d): %w", addr, db, err)
	}

	log.Printf("connected to redis (%s, DB %d)", addr, db)
	return rdb, nil
}
