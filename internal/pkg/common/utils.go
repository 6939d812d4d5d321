package common

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// GenerateUUID 生成 UUID
func GenerateUUID() string {
	return uuid.New().String()
}

// lockedSource 加鎖的亂數來源，讓同一個 *rand.Rand 能跨請求共用
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source64
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Int63()
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}

// NewRand 創建併發安全的亂數產生器
func NewRand() *rand.Rand {
	return rand.New(&lockedSource{
		src: rand.NewSource(time.Now().UnixNano()).(rand.Source64),
	})
}
