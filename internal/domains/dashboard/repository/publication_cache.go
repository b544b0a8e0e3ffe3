package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"crowdfund-backoffice/internal/domains/workflow"
	"crowdfund-backoffice/pkg/cache"
)

const PublicationCacheTTL = 30 * time.Minute

// PublicationCacheKey - campaign:public:<campaignID>:<entityType>
func PublicationCacheKey(campaignID uuid.UUID, entityType workflow.EntityType) string {
	return fmt.Sprintf("campaign:public:%s:%s", campaignID, entityType)
}

// PublicationCachePattern matches every cached public entity of a campaign.
func PublicationCachePattern(campaignID uuid.UUID) string {
	return fmt.Sprintf("campaign:public:%s:*", campaignID)
}

// =====================================================
// CACHED PUBLICATION STORE
// =====================================================
// Read-through cache trước bảng canonical. Cache lỗi thì chỉ log,
// luôn fallback về database.

type cachedPublicationStore[C any] struct {
	next       workflow.PublicationStore[C]
	cache      cache.Cache
	entityType workflow.EntityType
	ttl        time.Duration
}

func NewCachedPublicationStore[C any](
	next workflow.PublicationStore[C],
	c cache.Cache,
	entityType workflow.EntityType,
) workflow.PublicationStore[C] {
	if c == nil {
		return next
	}
	return &cachedPublicationStore[C]{
		next:       next,
		cache:      c,
		entityType: entityType,
		ttl:        PublicationCacheTTL,
	}
}

func (s *cachedPublicationStore[C]) Publish(ctx context.Context, campaignID uuid.UUID, content C) error {
	if err := s.next.Publish(ctx, campaignID, content); err != nil {
		return err
	}

	key := PublicationCacheKey(campaignID, s.entityType)
	if err := s.cache.Delete(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to invalidate publication cache")
	}
	return nil
}

func (s *cachedPublicationStore[C]) Get(ctx context.Context, campaignID uuid.UUID) (*C, error) {
	key := PublicationCacheKey(campaignID, s.entityType)

	var cached C
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("publication cache get failed")
	}
	if found {
		return &cached, nil
	}

	content, err := s.next.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, content, s.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("publication cache set failed")
	}
	return content, nil
}
