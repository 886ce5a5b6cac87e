package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T, ttl time.Duration) (*CacheStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCacheStore(client, ttl, zap.NewNop()), mr
}

type pagedPayload struct {
	Items []string `json:"items"`
	Total int64    `json:"total"`
}

func TestCacheStore_RoundTrip(t *testing.T) {
	store, _ := newTestStore(t, 30*time.Second)
	ctx := context.Background()

	t.Run("未写入的键未命中", func(t *testing.T) {
		var out pagedPayload
		assert.False(t, store.Get(ctx, "catalog:books:paged:1:10", &out))
	})

	t.Run("JSON往返保持结构", func(t *testing.T) {
		in := pagedPayload{Items: []string{"1984", "Harry Potter"}, Total: 2}
		store.Set(ctx, "catalog:books:paged:1:10", in)

		var out pagedPayload
		require.True(t, store.Get(ctx, "catalog:books:paged:1:10", &out))
		assert.Equal(t, in, out)
	})
}

func TestCacheStore_AbsoluteExpiry(t *testing.T) {
	store, mr := newTestStore(t, 30*time.Second)
	ctx := context.Background()

	store.Set(ctx, "catalog:books:all", pagedPayload{Total: 1})

	// 绝对TTL:访问不续期
	var out pagedPayload
	require.True(t, store.Get(ctx, "catalog:books:all", &out))

	mr.FastForward(31 * time.Second)
	assert.False(t, store.Get(ctx, "catalog:books:all", &out))
}

func TestCacheStore_DecodeFailureIsMiss(t *testing.T) {
	store, mr := newTestStore(t, 30*time.Second)
	ctx := context.Background()

	// 缓存里是非法JSON:按未命中处理,不报错
	require.NoError(t, mr.Set("catalog:books:all", "{not-json"))

	var out pagedPayload
	assert.False(t, store.Get(ctx, "catalog:books:all", &out))
}

func TestCacheStore_BackendErrorIsMiss(t *testing.T) {
	store, mr := newTestStore(t, 30*time.Second)
	ctx := context.Background()

	store.Set(ctx, "catalog:books:all", pagedPayload{Total: 1})
	mr.Close()

	// Redis不可用:读降级为未命中,写静默失败
	var out pagedPayload
	assert.False(t, store.Get(ctx, "catalog:books:all", &out))
	assert.NotPanics(t, func() {
		store.Set(ctx, "catalog:books:all", pagedPayload{Total: 2})
	})
}
