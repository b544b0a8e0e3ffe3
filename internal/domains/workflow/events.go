package workflow

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventType doubles as the asynq task type name.
type EventType string

const (
	EventCreated   EventType = "workflow:created"
	EventSubmitted EventType = "workflow:submitted"
	EventApproved  EventType = "workflow:approved"
	EventRejected  EventType = "workflow:rejected"
)

// Event is emitted after a successful mutating operation.
type Event struct {
	Type       EventType  `json:"type"`
	EntityType EntityType `json:"entity_type"`
	EntityID   uuid.UUID  `json:"entity_id"`
	CampaignID uuid.UUID  `json:"campaign_id"`
	ActorID    uuid.UUID  `json:"actor_id"`
	Comment    *string    `json:"comment,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// NopPublisher drops every event. Used when no queue is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(_ context.Context, _ Event) error { return nil }
