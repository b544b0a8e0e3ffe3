package workflow

import (
	"context"

	"github.com/google/uuid"
)

// DraftStore persists drafts of one entity kind.
//
// GetByID / GetByCampaignID return ErrDraftNotFound when absent.
// Create returns ErrDuplicate when a draft already exists for the campaign.
type DraftStore[C any] interface {
	Create(ctx context.Context, draft *Draft[C]) error
	GetByID(ctx context.Context, id uuid.UUID) (*Draft[C], error)
	GetByCampaignID(ctx context.Context, campaignID uuid.UUID) (*Draft[C], error)
	Update(ctx context.Context, draft *Draft[C]) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ApprovalStore persists approval records for all entity kinds.
//
// Create returns ErrDuplicate on the (entity_type, entity_id) unique index.
// List returns records ordered by submitted_at ascending.
type ApprovalStore interface {
	Create(ctx context.Context, rec *ApprovalRecord) error
	GetByEntity(ctx context.Context, entityType EntityType, entityID uuid.UUID) (*ApprovalRecord, error)
	Update(ctx context.Context, rec *ApprovalRecord) error
	DeleteByEntity(ctx context.Context, entityType EntityType, entityID uuid.UUID) error
	List(ctx context.Context, filter ApprovalFilter) ([]*ApprovalRecord, error)
}

// PublicationStore is the public canonical table of one entity kind.
//
// Publish upserts the approved content for a campaign inside its own
// transaction. Get returns ErrPublicationNotFound when nothing was published.
type PublicationStore[C any] interface {
	Publish(ctx context.Context, campaignID uuid.UUID, content C) error
	Get(ctx context.Context, campaignID uuid.UUID) (*C, error)
}

// CampaignChecker resolves the owner of a campaign before a draft is created.
//
// OwnerOf returns ErrCampaignNotFound when the campaign does not exist.
type CampaignChecker interface {
	OwnerOf(ctx context.Context, campaignID uuid.UUID) (uuid.UUID, error)
}

// EventPublisher is fire-and-forget: a failed publish never rolls back the
// mutation that produced the event.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}
