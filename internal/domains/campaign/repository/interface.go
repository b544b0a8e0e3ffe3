package repository

import (
	"context"

	"github.com/google/uuid"

	"crowdfund-backoffice/internal/domains/campaign/model"
)

// Repository - persistence cho bảng campaigns
type Repository interface {
	Create(ctx context.Context, campaign *model.Campaign) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Campaign, error)
	GetBySlug(ctx context.Context, slug string) (*model.Campaign, error)
	List(ctx context.Context, filter model.ListFilter) ([]*model.Campaign, int, error)
	Update(ctx context.Context, campaign *model.Campaign) error
	GetOwnerID(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
}
