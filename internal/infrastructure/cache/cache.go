package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"recipe-analyzer/internal/infrastructure/config"
)

// Cache 分析結果快取介面，依設定選用記憶體或 Redis 後端
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Stats() map[string]interface{}
	Close() error
}

// New 依設定建立快取後端；停用時回傳 nil
func New(cfg *config.CacheConfig) (Cache, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	switch cfg.Backend {
	case "redis":
		return NewRedisCache(cfg)
	case "memory":
		return NewManager(cfg), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", cfg.Backend)
	}
}

// Key 以 SHA-256 產生快取鍵，輸入為正規化後的分析內容
func Key(kind string, parts ...string) string {
	hash := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return fmt.Sprintf("%s:%s", kind, hex.EncodeToString(hash[:]))
}
