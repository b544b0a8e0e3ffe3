package model

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

var currencyRule = validation.Match(regexp.MustCompile(`^[A-Z]{3}$`)).Error("currency must be a 3-letter ISO code")

// CreateCampaignRequest - POST /campaigns
type CreateCampaignRequest struct {
	Title      string          `json:"title"`
	GoalAmount decimal.Decimal `json:"goal_amount"`
	Currency   string          `json:"currency"`
}

func (r CreateCampaignRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(3, 200).Error("title must be between 3 and 200 characters"),
		),
		validation.Field(&r.GoalAmount, validation.By(positiveAmount)),
		validation.Field(&r.Currency, currencyRule),
	)
}

// UpdateCampaignRequest - PUT /campaigns/:id, field nil = giữ nguyên
type UpdateCampaignRequest struct {
	Title      *string          `json:"title"`
	GoalAmount *decimal.Decimal `json:"goal_amount"`
	Status     *Status          `json:"status"`
}

func (r UpdateCampaignRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be empty"),
			validation.Length(3, 200).Error("title must be between 3 and 200 characters"),
		),
		validation.Field(&r.GoalAmount, validation.By(positiveAmount)),
		validation.Field(&r.Status, validation.In(StatusActive, StatusClosed).Error("status must be active or closed")),
	)
}

func positiveAmount(value interface{}) error {
	var amount decimal.Decimal
	switch v := value.(type) {
	case decimal.Decimal:
		amount = v
	case *decimal.Decimal:
		if v == nil {
			return nil
		}
		amount = *v
	default:
		return nil
	}
	if !amount.IsPositive() {
		return validation.NewError("validation_goal_amount", "goal_amount must be greater than 0")
	}
	return nil
}

// ListResponse - GET /campaigns
type ListResponse struct {
	Items []*Campaign `json:"items"`
	Total int         `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}
