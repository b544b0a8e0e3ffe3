package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Descriptor mô tả một entity kind cho coordinator.
type Descriptor struct {
	EntityType EntityType
	Label      string // dùng trong error message, vd: "campaign summary"
}

// =====================================================
// COORDINATOR
// =====================================================

// Coordinator owns the draft → pending → approved/rejected state machine for
// one entity kind. The same implementation serves info, summary and socials;
// only the content type and the stores differ.
type Coordinator[C Content[C]] struct {
	desc      Descriptor
	drafts    DraftStore[C]
	approvals ApprovalStore
	canonical PublicationStore[C]
	campaigns CampaignChecker
	events    EventPublisher
	now       func() time.Time
}

// NewCoordinator wires a coordinator. campaigns may be nil, in which case the
// campaign ownership check on Create is skipped. It panics on an unknown
// entity type, which is a wiring bug.
func NewCoordinator[C Content[C]](
	desc Descriptor,
	drafts DraftStore[C],
	approvals ApprovalStore,
	canonical PublicationStore[C],
	campaigns CampaignChecker,
	events EventPublisher,
) *Coordinator[C] {
	if !desc.EntityType.IsValid() {
		panic(fmt.Sprintf("workflow: unknown entity type %q", desc.EntityType))
	}
	if events == nil {
		events = NopPublisher{}
	}
	return &Coordinator[C]{
		desc:      desc,
		drafts:    drafts,
		approvals: approvals,
		canonical: canonical,
		campaigns: campaigns,
		events:    events,
		now:       time.Now,
	}
}

// EntityType returns the kind handled by this coordinator.
func (c *Coordinator[C]) EntityType() EntityType {
	return c.desc.EntityType
}

// =====================================================
// CREATE
// =====================================================

func (c *Coordinator[C]) Create(
	ctx context.Context,
	campaignID uuid.UUID,
	content C,
	ownerID uuid.UUID,
) (*Draft[C], error) {
	// Step 1: Campaign phải tồn tại và thuộc về ownerID
	if c.campaigns != nil {
		campaignOwner, err := c.campaigns.OwnerOf(ctx, campaignID)
		if err != nil {
			if errors.Is(err, ErrCampaignNotFound) {
				return nil, NewNotFoundError("campaign not found")
			}
			return nil, c.internal("failed to check campaign", err)
		}
		if campaignOwner != ownerID {
			return nil, NewUnauthorizedError(fmt.Sprintf("only the campaign owner can create a %s", c.desc.Label))
		}
	}

	// Step 2: Mỗi campaign chỉ có 1 draft cho mỗi kind
	existing, err := c.drafts.GetByCampaignID(ctx, campaignID)
	if err != nil && !errors.Is(err, ErrDraftNotFound) {
		return nil, c.internal(fmt.Sprintf("failed to look up %s", c.desc.Label), err)
	}
	if existing != nil {
		return nil, c.alreadyExists()
	}

	// Step 3: Persist
	now := c.now()
	draft := &Draft[C]{
		ID:          uuid.New(),
		CampaignID:  campaignID,
		Content:     content,
		Status:      StatusDraft,
		SubmittedBy: ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := c.drafts.Create(ctx, draft); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, c.alreadyExists()
		}
		return nil, c.internal(fmt.Sprintf("failed to create %s", c.desc.Label), err)
	}

	log.Info().
		Str("entity_type", string(c.desc.EntityType)).
		Str("entity_id", draft.ID.String()).
		Str("campaign_id", campaignID.String()).
		Msg("Draft created")

	c.emit(ctx, EventCreated, draft, ownerID, nil)
	return draft, nil
}

// =====================================================
// UPDATE
// =====================================================

// Update merges patch into the draft. Status is left untouched, a rejected
// draft stays rejected until it is submitted again.
func (c *Coordinator[C]) Update(
	ctx context.Context,
	id uuid.UUID,
	patch C,
	userID uuid.UUID,
) (*Draft[C], error) {
	draft, err := c.loadDraft(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.checkMutable(draft, userID); err != nil {
		return nil, err
	}

	draft.Content = draft.Content.Merge(patch)
	draft.UpdatedAt = c.now()

	if err := c.saveDraft(ctx, draft); err != nil {
		return nil, err
	}

	return c.withApproval(ctx, draft)
}

// ResubmitOnEdit is the upsert flavour of Update: it creates the draft when
// the campaign has none, and a write to a REJECTED draft sends it straight
// back to review through the regular submit path. The merged edit is saved
// before submitting, so a failed readiness gate keeps the draft REJECTED
// with the new content.
func (c *Coordinator[C]) ResubmitOnEdit(
	ctx context.Context,
	campaignID uuid.UUID,
	patch C,
	userID uuid.UUID,
) (*Draft[C], error) {
	draft, err := c.drafts.GetByCampaignID(ctx, campaignID)
	if errors.Is(err, ErrDraftNotFound) {
		return c.Create(ctx, campaignID, patch, userID)
	}
	if err != nil {
		return nil, c.internal(fmt.Sprintf("failed to look up %s", c.desc.Label), err)
	}

	if err := c.checkMutable(draft, userID); err != nil {
		return nil, err
	}

	draft.Content = draft.Content.Merge(patch)
	draft.UpdatedAt = c.now()

	if err := c.saveDraft(ctx, draft); err != nil {
		return nil, err
	}

	if draft.Status == StatusRejected {
		return c.submit(ctx, draft, userID)
	}
	return c.withApproval(ctx, draft)
}

// =====================================================
// SUBMIT
// =====================================================

func (c *Coordinator[C]) Submit(ctx context.Context, id, userID uuid.UUID) (*Draft[C], error) {
	draft, err := c.loadDraft(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.checkMutable(draft, userID); err != nil {
		return nil, err
	}
	return c.submit(ctx, draft, userID)
}

func (c *Coordinator[C]) submit(ctx context.Context, draft *Draft[C], userID uuid.UUID) (*Draft[C], error) {
	// Readiness gate
	if !draft.Content.HasContent() {
		return nil, NewValidationError(fmt.Sprintf("%s needs content before submission", c.desc.Label))
	}

	now := c.now()

	// Approval record first: a concurrent submit that loses on the unique
	// index leaves the draft untouched.
	if err := c.upsertApproval(ctx, draft, userID, now); err != nil {
		return nil, err
	}

	draft.Status = StatusPending
	draft.SubmittedAt = &now
	draft.clearReview()
	draft.UpdatedAt = now

	if err := c.saveDraft(ctx, draft); err != nil {
		return nil, err
	}

	log.Info().
		Str("entity_type", string(c.desc.EntityType)).
		Str("entity_id", draft.ID.String()).
		Str("submitted_by", userID.String()).
		Msg("Draft submitted for review")

	c.emit(ctx, EventSubmitted, draft, userID, nil)
	return draft, nil
}

func (c *Coordinator[C]) upsertApproval(ctx context.Context, draft *Draft[C], userID uuid.UUID, now time.Time) error {
	rec, err := c.approvals.GetByEntity(ctx, c.desc.EntityType, draft.ID)
	switch {
	case err == nil:
		// Resubmission: reset về pending và xoá thông tin review cũ
		rec.Status = StatusPending
		rec.SubmittedBy = userID
		rec.SubmittedAt = now
		rec.ReviewedBy = nil
		rec.ReviewedAt = nil
		rec.Comment = nil
		rec.UpdatedAt = now
		if err := c.approvals.Update(ctx, rec); err != nil {
			return c.internal("failed to update approval record", err)
		}
		return nil

	case errors.Is(err, ErrApprovalNotFound):
		rec = &ApprovalRecord{
			ID:          uuid.New(),
			EntityType:  c.desc.EntityType,
			EntityID:    draft.ID,
			CampaignID:  draft.CampaignID,
			Status:      StatusPending,
			SubmittedBy: userID,
			SubmittedAt: now,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := c.approvals.Create(ctx, rec); err != nil {
			if errors.Is(err, ErrDuplicate) {
				return NewConflictError(fmt.Sprintf("%s is already being submitted", c.desc.Label))
			}
			return c.internal("failed to create approval record", err)
		}
		return nil

	default:
		return c.internal("failed to load approval record", err)
	}
}

// =====================================================
// REVIEW
// =====================================================

func (c *Coordinator[C]) Review(
	ctx context.Context,
	id uuid.UUID,
	action Action,
	reviewerID uuid.UUID,
	comment *string,
) (*Draft[C], error) {
	// Step 1: Validate input
	if !action.IsValid() {
		return nil, NewValidationError("action must be approve or reject")
	}
	note := normalizeComment(comment)
	if action == ActionReject && note == nil {
		return nil, NewValidationError("comment is required when rejecting")
	}

	// Step 2: Draft phải đang PENDING
	draft, err := c.loadDraft(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft.Status != StatusPending {
		return nil, NewConflictError("can only review pending items")
	}

	rec, err := c.approvals.GetByEntity(ctx, c.desc.EntityType, draft.ID)
	if err != nil {
		if errors.Is(err, ErrApprovalNotFound) {
			return nil, NewConflictError("can only review pending items")
		}
		return nil, c.internal("failed to load approval record", err)
	}
	if rec.Status != StatusPending {
		return nil, NewConflictError("can only review pending items")
	}

	// Step 3: Update approval record
	now := c.now()
	outcome := action.Outcome()

	rec.Status = outcome
	rec.ReviewedBy = &reviewerID
	rec.ReviewedAt = &now
	rec.Comment = note
	rec.UpdatedAt = now
	if err := c.approvals.Update(ctx, rec); err != nil {
		return nil, c.internal("failed to update approval record", err)
	}

	// Step 4: Mirror outcome lên draft
	draft.Status = outcome
	draft.ReviewedBy = &reviewerID
	draft.ReviewedAt = &now
	draft.Comment = note
	draft.UpdatedAt = now
	if err := c.saveDraft(ctx, draft); err != nil {
		return nil, err
	}

	// Step 5: Approve → copy sang canonical table (best effort)
	if action == ActionApprove {
		c.publishCanonical(ctx, draft)
		c.emit(ctx, EventApproved, draft, reviewerID, note)
	} else {
		c.emit(ctx, EventRejected, draft, reviewerID, note)
	}

	log.Info().
		Str("entity_type", string(c.desc.EntityType)).
		Str("entity_id", draft.ID.String()).
		Str("reviewer_id", reviewerID.String()).
		Str("status", string(outcome)).
		Msg("Draft reviewed")

	return c.GetByID(ctx, draft.ID)
}

// publishCanonical swallows failures on purpose: the approval stands even if
// publication lags behind.
func (c *Coordinator[C]) publishCanonical(ctx context.Context, draft *Draft[C]) {
	if c.canonical == nil {
		return
	}
	if err := c.canonical.Publish(ctx, draft.CampaignID, draft.Content); err != nil {
		log.Error().
			Err(err).
			Str("entity_type", string(c.desc.EntityType)).
			Str("entity_id", draft.ID.String()).
			Str("campaign_id", draft.CampaignID.String()).
			Msg("Failed to publish approved content to canonical store")
	}
}

// =====================================================
// DELETE
// =====================================================

func (c *Coordinator[C]) Delete(ctx context.Context, id, userID uuid.UUID) error {
	draft, err := c.loadDraft(ctx, id)
	if err != nil {
		return err
	}
	if err := c.checkMutable(draft, userID); err != nil {
		return err
	}

	if err := c.drafts.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrDraftNotFound) {
			return c.notFound()
		}
		return c.internal(fmt.Sprintf("failed to delete %s", c.desc.Label), err)
	}

	if err := c.approvals.DeleteByEntity(ctx, c.desc.EntityType, id); err != nil && !errors.Is(err, ErrApprovalNotFound) {
		// Draft đã xoá, record mồ côi chỉ bị skip khi list
		log.Warn().
			Err(err).
			Str("entity_id", id.String()).
			Msg("Failed to delete approval record")
	}
	return nil
}

// =====================================================
// READS
// =====================================================

func (c *Coordinator[C]) GetByID(ctx context.Context, id uuid.UUID) (*Draft[C], error) {
	draft, err := c.loadDraft(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.withApproval(ctx, draft)
}

// GetByCampaignID falls back to the canonical record when the campaign has no
// draft. Anything only present there is already published, hence APPROVED.
// Returns (nil, nil) when neither exists.
func (c *Coordinator[C]) GetByCampaignID(ctx context.Context, campaignID uuid.UUID) (*Draft[C], error) {
	draft, err := c.drafts.GetByCampaignID(ctx, campaignID)
	if err == nil {
		return c.withApproval(ctx, draft)
	}
	if !errors.Is(err, ErrDraftNotFound) {
		return nil, c.internal(fmt.Sprintf("failed to look up %s", c.desc.Label), err)
	}

	if c.canonical == nil {
		return nil, nil
	}
	content, err := c.canonical.Get(ctx, campaignID)
	if err != nil {
		if errors.Is(err, ErrPublicationNotFound) {
			return nil, nil
		}
		return nil, c.internal("failed to load published content", err)
	}

	return &Draft[C]{
		CampaignID: campaignID,
		Content:    *content,
		Status:     StatusApproved,
	}, nil
}

// ListPending returns the review queue, oldest submission first.
func (c *Coordinator[C]) ListPending(ctx context.Context) ([]*Draft[C], error) {
	pending := StatusPending
	return c.list(ctx, ApprovalFilter{EntityType: c.desc.EntityType, Status: &pending})
}

func (c *Coordinator[C]) ListBySubmitter(ctx context.Context, userID uuid.UUID) ([]*Draft[C], error) {
	return c.list(ctx, ApprovalFilter{EntityType: c.desc.EntityType, SubmittedBy: &userID})
}

func (c *Coordinator[C]) list(ctx context.Context, filter ApprovalFilter) ([]*Draft[C], error) {
	records, err := c.approvals.List(ctx, filter)
	if err != nil {
		return nil, c.internal("failed to list approval records", err)
	}

	drafts := make([]*Draft[C], 0, len(records))
	for _, rec := range records {
		draft, err := c.drafts.GetByID(ctx, rec.EntityID)
		if err != nil {
			if errors.Is(err, ErrDraftNotFound) {
				log.Warn().
					Str("entity_type", string(rec.EntityType)).
					Str("entity_id", rec.EntityID.String()).
					Str("approval_id", rec.ID.String()).
					Msg("Approval record points at a missing draft, skipping")
				continue
			}
			return nil, c.internal(fmt.Sprintf("failed to load %s", c.desc.Label), err)
		}
		draft.mergeApproval(rec)
		drafts = append(drafts, draft)
	}
	return drafts, nil
}

// =====================================================
// HELPERS
// =====================================================

func (c *Coordinator[C]) loadDraft(ctx context.Context, id uuid.UUID) (*Draft[C], error) {
	draft, err := c.drafts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrDraftNotFound) {
			return nil, c.notFound()
		}
		return nil, c.internal(fmt.Sprintf("failed to load %s", c.desc.Label), err)
	}
	return draft, nil
}

func (c *Coordinator[C]) saveDraft(ctx context.Context, draft *Draft[C]) error {
	if err := c.drafts.Update(ctx, draft); err != nil {
		if errors.Is(err, ErrDraftNotFound) {
			return c.notFound()
		}
		return c.internal(fmt.Sprintf("failed to update %s", c.desc.Label), err)
	}
	return nil
}

// checkMutable: APPROVED không bao giờ sửa được, sau đó mới kiểm tra owner.
func (c *Coordinator[C]) checkMutable(draft *Draft[C], userID uuid.UUID) error {
	if draft.Status.IsTerminal() {
		return NewConflictError(fmt.Sprintf("approved %s cannot be modified", c.desc.Label))
	}
	if !draft.IsOwnedBy(userID) {
		return NewUnauthorizedError(fmt.Sprintf("only the submitter can modify this %s", c.desc.Label))
	}
	return nil
}

func (c *Coordinator[C]) withApproval(ctx context.Context, draft *Draft[C]) (*Draft[C], error) {
	rec, err := c.approvals.GetByEntity(ctx, c.desc.EntityType, draft.ID)
	if err != nil {
		if errors.Is(err, ErrApprovalNotFound) {
			return draft, nil
		}
		return nil, c.internal("failed to load approval record", err)
	}
	draft.mergeApproval(rec)
	return draft, nil
}

func (c *Coordinator[C]) emit(ctx context.Context, typ EventType, draft *Draft[C], actorID uuid.UUID, comment *string) {
	event := Event{
		Type:       typ,
		EntityType: c.desc.EntityType,
		EntityID:   draft.ID,
		CampaignID: draft.CampaignID,
		ActorID:    actorID,
		Comment:    comment,
		OccurredAt: c.now(),
	}
	if err := c.events.Publish(ctx, event); err != nil {
		log.Warn().
			Err(err).
			Str("event", string(typ)).
			Str("entity_id", draft.ID.String()).
			Msg("Failed to publish workflow event")
	}
}

func (c *Coordinator[C]) notFound() *Error {
	return NewNotFoundError(fmt.Sprintf("%s not found", c.desc.Label))
}

func (c *Coordinator[C]) alreadyExists() *Error {
	return NewConflictError(fmt.Sprintf("%s already exists for this campaign", c.desc.Label))
}

func (c *Coordinator[C]) internal(message string, err error) *Error {
	log.Error().
		Err(err).
		Str("entity_type", string(c.desc.EntityType)).
		Msg(message)
	return NewInternalError(message, err)
}

func normalizeComment(comment *string) *string {
	if comment == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*comment)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
