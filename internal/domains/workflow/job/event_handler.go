package job

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	dashboardRepo "crowdfund-backoffice/internal/domains/dashboard/repository"
	"crowdfund-backoffice/internal/domains/workflow"
	"crowdfund-backoffice/internal/infrastructure/email"
	"crowdfund-backoffice/pkg/cache"
)

// ============================================
// Workflow Event Handler
// ============================================

type EventHandlerConfig struct {
	Reviewers     []string                       // REVIEW_NOTIFY_EMAIL, rỗng = không gửi mail
	ReviewBaseURL string                         // vd https://admin.example.org
	Labels        map[workflow.EntityType]string // entity type → label hiển thị
}

type EventHandler struct {
	cache        cache.Cache
	emailService email.EmailService
	cfg          EventHandlerConfig
}

func NewEventHandler(c cache.Cache, emailService email.EmailService, cfg EventHandlerConfig) *EventHandler {
	return &EventHandler{
		cache:        c,
		emailService: emailService,
		cfg:          cfg,
	}
}

// RegisterHandlers gắn handler cho từng event type
func (h *EventHandler) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(string(workflow.EventCreated), h.HandleCreated)
	mux.HandleFunc(string(workflow.EventSubmitted), h.HandleSubmitted)
	mux.HandleFunc(string(workflow.EventApproved), h.HandleApproved)
	mux.HandleFunc(string(workflow.EventRejected), h.HandleRejected)
}

// HandleCreated chỉ ghi log audit.
func (h *EventHandler) HandleCreated(ctx context.Context, task *asynq.Task) error {
	event, err := decodeEvent(task)
	if err != nil {
		return err
	}

	log.Info().
		Str("entity_type", string(event.EntityType)).
		Str("entity_id", event.EntityID.String()).
		Str("campaign_id", event.CampaignID.String()).
		Str("owner_id", event.ActorID.String()).
		Msg("Draft created")
	return nil
}

// HandleSubmitted báo moderator có bản mới trong review queue.
func (h *EventHandler) HandleSubmitted(ctx context.Context, task *asynq.Task) error {
	event, err := decodeEvent(task)
	if err != nil {
		return err
	}

	if len(h.cfg.Reviewers) == 0 || h.emailService == nil {
		log.Debug().Str("entity_id", event.EntityID.String()).Msg("No reviewers configured, skipping notification")
		return nil
	}

	data := email.ReviewRequestData{
		To:          h.cfg.Reviewers,
		EntityLabel: h.label(event.EntityType),
		EntityID:    event.EntityID.String(),
		CampaignID:  event.CampaignID.String(),
		SubmittedBy: event.ActorID.String(),
		SubmittedAt: event.OccurredAt,
		ReviewURL:   fmt.Sprintf("%s/api/v1/dashboard/%s/pending", strings.TrimRight(h.cfg.ReviewBaseURL, "/"), event.EntityType),
	}

	if err := h.emailService.SendReviewRequestEmail(ctx, data); err != nil {
		log.Error().Err(err).Str("entity_id", event.EntityID.String()).Msg("Failed to send review request email")
		return fmt.Errorf("send review request email: %w", err)
	}

	log.Info().
		Str("entity_type", string(event.EntityType)).
		Str("entity_id", event.EntityID.String()).
		Int("reviewers", len(h.cfg.Reviewers)).
		Msg("Review request email sent")
	return nil
}

// HandleApproved xoá public cache của campaign để trang public đọc bản mới.
func (h *EventHandler) HandleApproved(ctx context.Context, task *asynq.Task) error {
	event, err := decodeEvent(task)
	if err != nil {
		return err
	}

	if h.cache != nil {
		pattern := dashboardRepo.PublicationCachePattern(event.CampaignID)
		if err := h.cache.DeletePattern(ctx, pattern); err != nil {
			log.Error().Err(err).Str("pattern", pattern).Msg("Failed to invalidate public campaign cache")
			return fmt.Errorf("invalidate cache: %w", err)
		}
	}

	log.Info().
		Str("entity_type", string(event.EntityType)).
		Str("entity_id", event.EntityID.String()).
		Str("campaign_id", event.CampaignID.String()).
		Str("reviewer_id", event.ActorID.String()).
		Msg("Approved content published")
	return nil
}

func (h *EventHandler) HandleRejected(ctx context.Context, task *asynq.Task) error {
	event, err := decodeEvent(task)
	if err != nil {
		return err
	}

	comment := ""
	if event.Comment != nil {
		comment = *event.Comment
	}

	log.Info().
		Str("entity_type", string(event.EntityType)).
		Str("entity_id", event.EntityID.String()).
		Str("reviewer_id", event.ActorID.String()).
		Str("comment", comment).
		Msg("Draft rejected")
	return nil
}

func (h *EventHandler) label(t workflow.EntityType) string {
	if label, ok := h.cfg.Labels[t]; ok {
		return label
	}
	return string(t)
}

// Payload hỏng thì không retry
func decodeEvent(task *asynq.Task) (workflow.Event, error) {
	var event workflow.Event
	if err := json.Unmarshal(task.Payload(), &event); err != nil {
		log.Error().Err(err).Str("type", task.Type()).Msg("Failed to unmarshal workflow event")
		return event, fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}
	return event, nil
}
