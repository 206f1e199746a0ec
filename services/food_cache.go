package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"nutriscan/models"

	redis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// FoodCache caches public catalog listings. Implementations must be best effort:
// a miss or a backend failure falls through to the database.
type FoodCache interface {
	GetPublic(ctx context.Context, q FoodQuery) ([]models.FoodItem, bool)
	SetPublic(ctx context.Context, q FoodQuery, foods []models.FoodItem)
	InvalidatePublic(ctx context.Context)
}

type NoopFoodCache struct{}

func (NoopFoodCache) GetPublic(context.Context, FoodQuery) ([]models.FoodItem, bool) { return nil, false }
func (NoopFoodCache) SetPublic(context.Context, FoodQuery, []models.FoodItem)         {}
func (NoopFoodCache) InvalidatePublic(context.Context)                                {}

const foodVersionKey = "foods:public:version"

// RedisFoodCache keys entries by a catalog version; bumping the version
// orphans every cached listing at once and TTL reclaims them.
type RedisFoodCache struct {
	rdb *redis.Client
	ttl time.Duration
	log logrus.FieldLogger
}

func NewRedisFoodCache(rdb *redis.Client, ttl time.Duration, log logrus.FieldLogger) *RedisFoodCache {
	return &RedisFoodCache{rdb: rdb, ttl: ttl, log: log}
}

func (c *RedisFoodCache) key(ctx context.Context, q FoodQuery) (string, error) {
	ver, err := c.rdb.Get(ctx, foodVersionKey).Int64()
	if err != nil && err != redis.Nil {
		return "", err
	}
	return fmt.Sprintf("foods:public:v%d:%s:%s", ver, q.Type, strings.ToLower(q.Search)), nil
}

func (c *RedisFoodCache) GetPublic(ctx context.Context, q FoodQuery) ([]models.FoodItem, bool) {
	key, err := c.key(ctx, q)
	if err != nil {
		c.log.WithError(err).Warn("food cache: read version")
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.WithError(err).Warn("food cache: get")
		}
		return nil, false
	}
	var foods []models.FoodItem
	if err := json.Unmarshal(raw, &foods); err != nil {
		return nil, false
	}
	return foods, true
}

func (c *RedisFoodCache) SetPublic(ctx context.Context, q FoodQuery, foods []models.FoodItem) {
	key, err := c.key(ctx, q)
	if err != nil {
		return
	}
	raw, err := json.Marshal(foods)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.WithError(err).Warn("food cache: set")
	}
}

func (c *RedisFoodCache) InvalidatePublic(ctx context.Context) {
	if err := c.rdb.Incr(ctx, foodVersionKey).Err(); err != nil {
		c.log.WithError(err).Warn("food cache: bump version")
	}
}
