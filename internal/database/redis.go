package database

import (
	"context"
	"log"
	"time"

	"github.com/bankist/backend/internal/config"
	"github.com/go-redis/redis/v8"
)

// InitRedis connects to redis. It returns nil when redis is disabled or
// unreachable; callers fall back to in-memory behaviour.
func InitRedis(cfg config.RedisConfig) *redis.Client {
	if !cfg.Enabled {
		log.Println("Redis disabled, token revocation and QR codes are unavailable")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection failed, continuing without Redis: %v", err)
		rdb.Close()
		return nil
	}

	log.Println("Redis connection established")
	return rdb
}
