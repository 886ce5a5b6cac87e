package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/xiebiao/booklibrary/pkg/metrics"
)

const tierShared = "shared"

// CacheStore 共享缓存(第二层,Redis)
// 设计说明:
// 1. 值统一JSON序列化为文本存储,多实例间可互相读取
// 2. 绝对过期:写入时设定TTL,不随访问刷新
// 3. 降级语义:Redis错误、反序列化失败都按未命中处理,
//    只记日志和指标,绝不把缓存故障上抛为业务错误
// 4. 不提供失效接口:写路径不触碰缓存
type CacheStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCacheStore 创建共享缓存
func NewCacheStore(client *redis.Client, ttl time.Duration, logger *zap.Logger) *CacheStore {
	return &CacheStore{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get 读取缓存并反序列化到dest
// 返回是否命中;任何故障都视为未命中
func (s *CacheStore) Get(ctx context.Context, key string, dest interface{}) bool {
	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("共享缓存读取失败,降级为未命中",
				zap.String("key", key), zap.Error(err))
		}
		metrics.CacheMiss(tierShared)
		return false
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		// 反序列化失败说明缓存内容损坏或版本不兼容,按未命中处理
		s.logger.Warn("共享缓存反序列化失败,降级为未命中",
			zap.String("key", key), zap.Error(err))
		metrics.CacheMiss(tierShared)
		return false
	}

	metrics.CacheHit(tierShared)
	return true
}

// Set 序列化并写入缓存,TTL为绝对过期时间
// 写入失败只记日志,不影响调用方
func (s *CacheStore) Set(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("共享缓存序列化失败,放弃写入",
			zap.String("key", key), zap.Error(err))
		return
	}

	if err := s.client.Set(ctx, key, string(data), s.ttl).Err(); err != nil {
		s.logger.Warn("共享缓存写入失败",
			zap.String("key", key), zap.Error(err))
	}
}
