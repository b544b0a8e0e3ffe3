package dashboard

import (
	"crowdfund-backoffice/internal/domains/workflow"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// CreateRequest - POST /dashboard/{kind}
type CreateRequest[C any] struct {
	CampaignID string `json:"campaign_id"`
	Content    C      `json:"content"`
}

func (r CreateRequest[C]) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CampaignID,
			validation.Required.Error("campaign_id is required"),
			is.UUID.Error("campaign_id must be a valid UUID"),
		),
	)
}

// ReviewRequest - POST /dashboard/{kind}/:id/review (admin)
type ReviewRequest struct {
	Action  string  `json:"action"`
	Comment *string `json:"comment"`
}

func (r ReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Action,
			validation.Required.Error("action is required"),
			validation.In(string(workflow.ActionApprove), string(workflow.ActionReject)).Error("action must be approve or reject"),
		),
		validation.Field(&r.Comment, validation.Length(0, 2000)),
	)
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// ListResponse wraps review queues and "my submissions".
type ListResponse[C any] struct {
	Items []*workflow.Draft[C] `json:"items"`
	Total int                  `json:"total"`
}
