package prefs

import (
	"context"
	"sync"
)

// MemoryStore 偏好資料的記憶體實作
// 測試用，也是沒有 Redis 時的退路
type MemoryStore struct {
	mu    sync.RWMutex
	store map[string][]byte
}

// NewMemoryStore 創建記憶體偏好儲存
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		store: make(map[string][]byte),
	}
}

func (s *MemoryStore) key(userID, key string) string {
	return userID + ":" + key
}

// Get 讀取一筆偏好資料，miss 回 (nil, nil)
func (s *MemoryStore) Get(ctx context.Context, userID, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.store[s.key(userID, key)]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Set 寫入一筆偏好資料
func (s *MemoryStore) Set(ctx context.Context, userID, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := make([]byte, len(value))
	copy(data, value)
	s.store[s.key(userID, key)] = data
	return nil
}

// Delete 刪除一筆偏好資料
func (s *MemoryStore) Delete(ctx context.Context, userID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.store, s.key(userID, key))
	return nil
}
