package service

import (
	"context"

	"github.com/google/uuid"

	"crowdfund-backoffice/internal/domains/campaign/model"
)

type ServiceInterface interface {
	Create(ctx context.Context, ownerID uuid.UUID, req model.CreateCampaignRequest) (*model.Campaign, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Campaign, error)
	GetBySlug(ctx context.Context, slug string) (*model.Campaign, error)
	List(ctx context.Context, filter model.ListFilter) (*model.ListResponse, error)
	Update(ctx context.Context, id, userID uuid.UUID, req model.UpdateCampaignRequest) (*model.Campaign, error)

	// OwnerOf satisfies workflow.CampaignChecker.
	OwnerOf(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
}
