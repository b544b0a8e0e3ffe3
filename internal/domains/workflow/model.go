package workflow

import (
	"time"

	"github.com/google/uuid"
)

// Content is implemented by every draftable entity kind (info, summary, socials).
//
// HasContent is the readiness predicate checked before submission.
// Merge applies a partial update: fields set in patch win, the rest keep their value.
type Content[C any] interface {
	HasContent() bool
	Merge(patch C) C
}

// Draft là bản nháp có thể chỉnh sửa của một campaign cho một entity kind.
// Mỗi campaign chỉ có tối đa 1 draft cho mỗi kind.
type Draft[C any] struct {
	ID         uuid.UUID `json:"id"`
	CampaignID uuid.UUID `json:"campaign_id"`
	Content    C         `json:"content"`
	Status     Status    `json:"status"`

	// Workflow fields (denormalized from the approval record)
	SubmittedBy uuid.UUID  `json:"submitted_by"`
	SubmittedAt *time.Time `json:"submitted_at"`
	ReviewedBy  *uuid.UUID `json:"reviewed_by"`
	ReviewedAt  *time.Time `json:"reviewed_at"`
	Comment     *string    `json:"comment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsOwnedBy checks the user that created the draft.
func (d *Draft[C]) IsOwnedBy(userID uuid.UUID) bool {
	return d.SubmittedBy == userID
}

func (d *Draft[C]) clearReview() {
	d.ReviewedBy = nil
	d.ReviewedAt = nil
	d.Comment = nil
}

// mergeApproval overlays review metadata from the approval record, which is
// the source of truth once the draft has been submitted.
func (d *Draft[C]) mergeApproval(rec *ApprovalRecord) {
	if rec == nil {
		return
	}
	submittedAt := rec.SubmittedAt
	d.SubmittedAt = &submittedAt
	d.ReviewedBy = rec.ReviewedBy
	d.ReviewedAt = rec.ReviewedAt
	d.Comment = rec.Comment
}

// ApprovalRecord tracks one entity's passage through review, decoupled from
// its content. Unique per (EntityType, EntityID).
type ApprovalRecord struct {
	ID         uuid.UUID  `json:"id"`
	EntityType EntityType `json:"entity_type"`
	EntityID   uuid.UUID  `json:"entity_id"`
	CampaignID uuid.UUID  `json:"campaign_id"`
	Status     Status     `json:"status"`

	SubmittedBy uuid.UUID  `json:"submitted_by"`
	SubmittedAt time.Time  `json:"submitted_at"`
	ReviewedBy  *uuid.UUID `json:"reviewed_by"`
	ReviewedAt  *time.Time `json:"reviewed_at"`
	Comment     *string    `json:"comment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ApprovalFilter selects approval records for review queues.
// Nil fields are ignored.
type ApprovalFilter struct {
	EntityType  EntityType
	Status      *Status
	SubmittedBy *uuid.UUID
}
