package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusClosed
}

const DefaultCurrency = "USD"

// Campaign - metadata gốc của một chiến dịch gây quỹ.
// Nội dung hiển thị (summary, info, socials) nằm ở các bảng dashboard_* / campaign_*.
type Campaign struct {
	ID         uuid.UUID       `json:"id" db:"id"`
	OwnerID    uuid.UUID       `json:"owner_id" db:"owner_id"`
	Title      string          `json:"title" db:"title"`
	Slug       string          `json:"slug" db:"slug"`
	GoalAmount decimal.Decimal `json:"goal_amount" db:"goal_amount"`
	Currency   string          `json:"currency" db:"currency"`
	Status     Status          `json:"status" db:"status"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at" db:"updated_at"`
}

func (c *Campaign) IsOwnedBy(userID uuid.UUID) bool {
	return c.OwnerID == userID
}

// ListFilter - query params cho GET /campaigns
type ListFilter struct {
	OwnerID *uuid.UUID
	Status  *Status
	Page    int
	Limit   int
}

func (f *ListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
