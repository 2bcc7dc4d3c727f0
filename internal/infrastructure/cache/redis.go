package cache

import (
	"context"
	"fmt"
	"sync/atomic"

	"recipe-analyzer/internal/infrastructure/config"
	"recipe-analyzer/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisCache Redis 快取後端
type RedisCache struct {
	client *redis.Client
	cfg    *config.CacheConfig
	hits   int64
	misses int64
}

// NewRedisCache 創建 Redis 快取後端
func NewRedisCache(cfg *config.CacheConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	common.LogInfo("Redis 快取已初始化",
		zap.String("位址", cfg.RedisAddr),
		zap.Duration("存活時間", cfg.TTL),
	)

	return &RedisCache{
		client: client,
		cfg:    cfg,
	}, nil
}

// Get 獲取緩存
func (r *RedisCache) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			atomic.AddInt64(&r.misses, 1)
			common.LogCacheMiss("redis", key)
			return "", common.ErrCacheMiss
		}
		return "", fmt.Errorf("failed to get cache: %w", err)
	}

	atomic.AddInt64(&r.hits, 1)
	common.LogCacheHit("redis", key)
	return data, nil
}

// Set 設置緩存
func (r *RedisCache) Set(ctx context.Context, key string, value string) error {
	if err := r.client.Set(ctx, key, value, r.cfg.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Stats 獲取緩存統計信息
func (r *RedisCache) Stats() map[string]interface{} {
	hits := atomic.LoadInt64(&r.hits)
	misses := atomic.LoadInt64(&r.misses)
	hitRatio := 0.0
	if total := hits + misses; total > 0 {
		hitRatio = float64(hits) / float64(total)
	}

	return map[string]interface{}{
		"backend":   "redis",
		"hits":      hits,
		"misses":    misses,
		"hit_ratio": hitRatio,
	}
}

// Close 關閉 Redis 連線
func (r *RedisCache) Close() error {
	return r.client.Close()
}
