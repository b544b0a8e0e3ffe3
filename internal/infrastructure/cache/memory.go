package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// =====================================================
// MEMORY CACHE
// =====================================================
// Fallback khi Redis không kết nối được. Chỉ sống trong một process:
// invalidation từ worker không tới được, nên TTL phải ngắn.

const MemoryCacheTTL = time.Minute

type MemoryCache struct {
	store *gocache.Cache
	ttl   time.Duration
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = MemoryCacheTTL
	}
	return &MemoryCache{
		store: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

func (m *MemoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := m.store.Get(key)
	if !ok {
		return false, nil
	}
	data, ok := raw.([]byte)
	if !ok {
		return false, fmt.Errorf("memory cache: unexpected value type for %s", key)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("memory cache unmarshal %s: %w", key, err)
	}
	return true, nil
}

// Set lưu JSON để Get có cùng semantics với RedisCache; ttl bị chặn trên bởi m.ttl
func (m *MemoryCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("memory cache marshal %s: %w", key, err)
	}
	if ttl <= 0 || ttl > m.ttl {
		ttl = m.ttl
	}
	m.store.Set(key, data, ttl)
	return nil
}

func (m *MemoryCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		m.store.Delete(key)
	}
	return nil
}

// DeletePattern dùng glob giống Redis SCAN MATCH
func (m *MemoryCache) DeletePattern(_ context.Context, pattern string) error {
	for key := range m.store.Items() {
		matched, err := path.Match(pattern, key)
		if err != nil {
			return fmt.Errorf("memory cache pattern %q: %w", pattern, err)
		}
		if matched {
			m.store.Delete(key)
		}
	}
	return nil
}

func (m *MemoryCache) Ping(context.Context) error {
	return nil
}
