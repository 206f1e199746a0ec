package services

import (
	"context"
	"testing"
	"time"

	"nutriscan/models"

	"github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisFoodCache(t *testing.T) (*RedisFoodCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	log, _ := test.NewNullLogger()
	return NewRedisFoodCache(rdb, time.Minute, log), mr
}

func TestRedisFoodCache(t *testing.T) {
	cache, mr := newRedisFoodCache(t)
	ctx := context.Background()
	local := FoodQuery{Type: "local", Search: "Nasi"}
	rice := []models.FoodItem{{ID: "f1", Name: "Nasi Goreng", Calories: 520, Type: "local", IsPublic: true}}

	_, hit := cache.GetPublic(ctx, local)
	assert.False(t, hit, "empty cache misses")

	cache.SetPublic(ctx, local, rice)
	got, hit := cache.GetPublic(ctx, local)
	require.True(t, hit)
	assert.Equal(t, rice, got)
	assert.True(t, mr.Exists("foods:public:v0:local:nasi"))
	assert.Equal(t, time.Minute, mr.TTL("foods:public:v0:local:nasi"))

	got, hit = cache.GetPublic(ctx, FoodQuery{Type: "local", Search: "NASI"})
	require.True(t, hit, "search is case-insensitive")
	assert.Equal(t, rice, got)

	for _, q := range []FoodQuery{
		{},
		{Type: "local"},
		{Type: "international", Search: "nasi"},
		{Type: "local", Search: "nasi goreng"},
	} {
		_, hit := cache.GetPublic(ctx, q)
		assert.False(t, hit, "%+v must not share a key with %+v", q, local)
	}

	cache.InvalidatePublic(ctx)
	_, hit = cache.GetPublic(ctx, local)
	assert.False(t, hit, "version bump orphans old entries")
	v, err := mr.Get(foodVersionKey)
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	cache.SetPublic(ctx, local, rice)
	assert.True(t, mr.Exists("foods:public:v1:local:nasi"))
	_, hit = cache.GetPublic(ctx, local)
	assert.True(t, hit)
}

func TestRedisFoodCacheBackendDown(t *testing.T) {
	cache, mr := newRedisFoodCache(t)
	ctx := context.Background()
	q := FoodQuery{Type: "local"}
	cache.SetPublic(ctx, q, []models.FoodItem{{ID: "f1"}})

	mr.Close()

	_, hit := cache.GetPublic(ctx, q)
	assert.False(t, hit, "errors fall through to the database")
	cache.SetPublic(ctx, q, nil)
	cache.InvalidatePublic(ctx)
}

func TestFoodServiceWithRedisCache(t *testing.T) {
	db := newTestDB(t)
	cache, _ := newRedisFoodCache(t)
	svc := NewFoodService(db, cache)
	ctx := context.Background()
	createFood(t, db, "Gado-gado", true, nil)

	first, err := svc.List(ctx, "", FoodQuery{})
	require.NoError(t, err)
	require.Len(t, first, 1)

	// cached listing survives a write that bypasses the service
	createFood(t, db, "Soto Ayam", true, nil)
	cached, err := svc.List(ctx, "", FoodQuery{})
	require.NoError(t, err)
	assert.Len(t, cached, 1)

	svc.InvalidateCatalog(ctx)
	fresh, err := svc.List(ctx, "", FoodQuery{})
	require.NoError(t, err)
	assert.Len(t, fresh, 2)
}
