package cache

import (
	"sync"
	"time"

	"github.com/xiebiao/booklibrary/pkg/metrics"
)

const tierLocal = "local"

// LocalCache 进程内本地缓存(第一层)
// 设计说明:
// 1. 滑动过期:每次命中都把条目的过期时间重置为now+ttl,
//    持续被访问的热点条目永不过期,冷条目在ttl内无访问后失效
// 2. 惰性清理:过期判定发生在读取时,不起后台协程
// 3. 不提供失效接口:写路径不触碰缓存,陈旧度完全由ttl界定
// 4. 存储any值:同一进程内读写,不需要序列化
type LocalCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*localEntry
	now     func() time.Time // 可注入时钟,测试用
}

type localEntry struct {
	value     interface{}
	expiresAt time.Time
}

// NewLocalCache 创建本地缓存
func NewLocalCache(ttl time.Duration) *LocalCache {
	return &LocalCache{
		ttl:     ttl,
		entries: make(map[string]*localEntry),
		now:     time.Now,
	}
}

// Get 读取缓存
// 命中时重置滑动过期时间;过期条目当场删除并按未命中处理
func (c *LocalCache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		metrics.CacheMiss(tierLocal)
		return nil, false
	}

	now := c.now()
	if now.After(entry.expiresAt) {
		delete(c.entries, key)
		metrics.CacheMiss(tierLocal)
		return nil, false
	}

	entry.expiresAt = now.Add(c.ttl) // 滑动续期
	metrics.CacheHit(tierLocal)
	return entry.value, true
}

// Set 写入缓存,过期时间为now+ttl
func (c *LocalCache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = &localEntry{
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Len 当前条目数(含尚未被惰性清理的过期条目)
func (c *LocalCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
