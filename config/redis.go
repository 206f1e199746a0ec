package config

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// NewRedis returns nil when REDIS_ADDR is unset or the server is unreachable;
// callers fall back to uncached reads.
func NewRedis(cfg *Config, log *logrus.Logger) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Info("REDIS_ADDR not set, food catalog cache disabled")
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warnf("failed to connect to redis at %s: %v, food catalog cache disabled", cfg.RedisAddr, err)
		_ = rdb.Close()
		return nil
	}
	log.Infof("connected to redis at %s", cfg.RedisAddr)
	return rdb
}
