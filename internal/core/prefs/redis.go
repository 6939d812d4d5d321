package prefs

import (
	"context"
	"fmt"
	"time"

	"fridge-api/internal/infrastructure/config"
	"fridge-api/internal/pkg/common"

	"github.com/go-redis/redis/v8"
)

// RedisStore 偏好資料的 Redis 實作
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore 創建 Redis 偏好儲存
func NewRedisStore(cfg *config.PrefsConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

func (s *RedisStore) key(userID, key string) string {
	return fmt.Sprintf("prefs:%s:%s", userID, key)
}

// Get 讀取一筆偏好資料，miss 回 (nil, nil)
func (s *RedisStore) Get(ctx context.Context, userID, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key(userID, key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			common.LogPrefsMiss(key)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get prefs: %w", err)
	}
	common.LogPrefsHit(key)
	return data, nil
}

// Set 寫入一筆偏好資料
func (s *RedisStore) Set(ctx context.Context, userID, key string, value []byte) error {
	if err := s.client.Set(ctx, s.key(userID, key), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set prefs: %w", err)
	}
	return nil
}

// Delete 刪除一筆偏好資料
func (s *RedisStore) Delete(ctx context.Context, userID, key string) error {
	if err := s.client.Del(ctx, s.key(userID, key)).Err(); err != nil {
		return fmt.Errorf("failed to delete prefs: %w", err)
	}
	return nil
}

// Close 關閉連線
func (s *RedisStore) Close() error {
	return s.client.Close()
}
