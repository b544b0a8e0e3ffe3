package repository

import (
	"context"
	"encoding/json"
	"path"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund-backoffice/internal/domains/dashboard"
	"crowdfund-backoffice/internal/domains/workflow"
)

// memoryCache giữ JSON giống RedisCache.
type memoryCache struct {
	mu    sync.Mutex
	items map[string][]byte
	sets  int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.items[key] = data
	m.sets++
	return nil
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.items, k)
	}
	return nil
}

func (m *memoryCache) DeletePattern(_ context.Context, pattern string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.items {
		if ok, _ := path.Match(pattern, k); ok {
			delete(m.items, k)
		}
	}
	return nil
}

func (m *memoryCache) Ping(context.Context) error { return nil }

type stubPublications struct {
	content map[uuid.UUID]dashboard.Summary
	gets    int
}

func (s *stubPublications) Publish(_ context.Context, campaignID uuid.UUID, content dashboard.Summary) error {
	s.content[campaignID] = content
	return nil
}

func (s *stubPublications) Get(_ context.Context, campaignID uuid.UUID) (*dashboard.Summary, error) {
	s.gets++
	c, ok := s.content[campaignID]
	if !ok {
		return nil, workflow.ErrPublicationNotFound
	}
	return &c, nil
}

func ptr(s string) *string { return &s }

func TestCachedPublicationStore_ReadThrough(t *testing.T) {
	campaignID := uuid.New()
	backing := &stubPublications{content: map[uuid.UUID]dashboard.Summary{
		campaignID: {Summary: ptr("Bikes for couriers")},
	}}
	c := newMemoryCache()
	store := NewCachedPublicationStore[dashboard.Summary](backing, c, workflow.EntitySummary)
	ctx := context.Background()

	first, err := store.Get(ctx, campaignID)
	require.NoError(t, err)
	second, err := store.Get(ctx, campaignID)
	require.NoError(t, err)

	assert.Equal(t, "Bikes for couriers", *first.Summary)
	assert.Equal(t, *first.Summary, *second.Summary)
	assert.Equal(t, 1, backing.gets)
	assert.Contains(t, c.items, PublicationCacheKey(campaignID, workflow.EntitySummary))
}

func TestCachedPublicationStore_PublishInvalidates(t *testing.T) {
	campaignID := uuid.New()
	backing := &stubPublications{content: map[uuid.UUID]dashboard.Summary{
		campaignID: {Summary: ptr("old")},
	}}
	store := NewCachedPublicationStore[dashboard.Summary](backing, newMemoryCache(), workflow.EntitySummary)
	ctx := context.Background()

	_, err := store.Get(ctx, campaignID)
	require.NoError(t, err)

	require.NoError(t, store.Publish(ctx, campaignID, dashboard.Summary{Summary: ptr("new")}))

	got, err := store.Get(ctx, campaignID)
	require.NoError(t, err)
	assert.Equal(t, "new", *got.Summary)
	assert.Equal(t, 2, backing.gets)
}

func TestCachedPublicationStore_MissIsNotCached(t *testing.T) {
	c := newMemoryCache()
	store := NewCachedPublicationStore[dashboard.Summary](&stubPublications{content: map[uuid.UUID]dashboard.Summary{}}, c, workflow.EntitySummary)

	_, err := store.Get(context.Background(), uuid.New())

	assert.ErrorIs(t, err, workflow.ErrPublicationNotFound)
	assert.Equal(t, 0, c.sets)
}

func TestCachedPublicationStore_NilCacheReturnsBacking(t *testing.T) {
	backing := &stubPublications{content: map[uuid.UUID]dashboard.Summary{}}

	store := NewCachedPublicationStore[dashboard.Summary](backing, nil, workflow.EntitySummary)

	assert.Same(t, backing, store)
}

func TestPublicationCacheKeys(t *testing.T) {
	id := uuid.MustParse("0d6c1f4e-2a7b-4c3e-9f10-5b8a7c6d5e4f")

	key := PublicationCacheKey(id, workflow.EntitySocials)

	assert.Equal(t, "campaign:public:0d6c1f4e-2a7b-4c3e-9f10-5b8a7c6d5e4f:socials", key)
	ok, _ := path.Match(PublicationCachePattern(id), key)
	assert.True(t, ok)
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "$3, $4", placeholders(3, 2))
	assert.Equal(t, "$1", placeholders(1, 1))
}
