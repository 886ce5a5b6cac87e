package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock 可手动推进的时钟
type fakeClock struct {
	current time.Time
}

func (f *fakeClock) advance(d time.Duration) {
	f.current = f.current.Add(d)
}

func newTestCache(ttl time.Duration) (*LocalCache, *fakeClock) {
	clock := &fakeClock{current: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewLocalCache(ttl)
	c.now = func() time.Time { return clock.current }
	return c, clock
}

func TestLocalCache_GetSet(t *testing.T) {
	c, _ := newTestCache(30 * time.Second)

	t.Run("未写入的键未命中", func(t *testing.T) {
		_, ok := c.Get("missing")
		assert.False(t, ok)
	})

	t.Run("写入后命中", func(t *testing.T) {
		c.Set("k", []string{"a", "b"})
		v, ok := c.Get("k")
		require.True(t, ok)
		assert.Equal(t, []string{"a", "b"}, v)
	})
}

func TestLocalCache_Expiry(t *testing.T) {
	t.Run("超过TTL后过期", func(t *testing.T) {
		c, clock := newTestCache(30 * time.Second)
		c.Set("k", 1)

		clock.advance(31 * time.Second)
		_, ok := c.Get("k")
		assert.False(t, ok)
		assert.Equal(t, 0, c.Len(), "过期条目应当被惰性删除")
	})

	t.Run("TTL内读取不过期", func(t *testing.T) {
		c, clock := newTestCache(30 * time.Second)
		c.Set("k", 1)

		clock.advance(29 * time.Second)
		_, ok := c.Get("k")
		assert.True(t, ok)
	})
}

func TestLocalCache_SlidingTTL(t *testing.T) {
	// 每次读取重置过期时间:累计访问时长远超TTL,条目仍然存活
	c, clock := newTestCache(30 * time.Second)
	c.Set("k", "v")

	for i := 0; i < 5; i++ {
		clock.advance(20 * time.Second)
		v, ok := c.Get("k")
		require.True(t, ok, "第%d次读取应命中", i+1)
		assert.Equal(t, "v", v)
	}

	// 停止访问后按最后一次续期起算
	clock.advance(31 * time.Second)
	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestLocalCache_SetResetsExpiry(t *testing.T) {
	c, clock := newTestCache(30 * time.Second)
	c.Set("k", "old")

	clock.advance(25 * time.Second)
	c.Set("k", "new")

	clock.advance(25 * time.Second)
	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "new", v)
}
