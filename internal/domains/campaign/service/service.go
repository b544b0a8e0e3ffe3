package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"crowdfund-backoffice/internal/domains/campaign/model"
	"crowdfund-backoffice/internal/domains/campaign/repository"
	"crowdfund-backoffice/internal/domains/workflow"
	"crowdfund-backoffice/internal/shared/utils"
)

// maxSlugAttempts - số lần thử thêm hậu tố -2, -3, ... khi slug trùng
const maxSlugAttempts = 20

type Service struct {
	repo repository.Repository
	now  func() time.Time
}

func NewService(repo repository.Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// =====================================================
// CREATE
// =====================================================

func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, req model.CreateCampaignRequest) (*model.Campaign, error) {
	// Step 1: Sinh slug từ title
	slug, err := s.uniqueSlug(ctx, req.Title, uuid.Nil)
	if err != nil {
		return nil, err
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = model.DefaultCurrency
	}

	// Step 2: Persist
	now := s.now()
	campaign := &model.Campaign{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Title:      strings.TrimSpace(req.Title),
		Slug:       slug,
		GoalAmount: req.GoalAmount,
		Currency:   currency,
		Status:     model.StatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, campaign); err != nil {
		if errors.Is(err, model.ErrSlugExists) {
			return nil, model.NewSlugExists(slug)
		}
		return nil, model.NewInternal("Failed to create campaign", err)
	}

	log.Info().
		Str("campaign_id", campaign.ID.String()).
		Str("owner_id", ownerID.String()).
		Str("slug", slug).
		Msg("Campaign created")

	return campaign, nil
}

// =====================================================
// READ
// =====================================================

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*model.Campaign, error) {
	campaign, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapReadError(err)
	}
	return campaign, nil
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*model.Campaign, error) {
	campaign, err := s.repo.GetBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
	if err != nil {
		return nil, s.mapReadError(err)
	}
	return campaign, nil
}

func (s *Service) List(ctx context.Context, filter model.ListFilter) (*model.ListResponse, error) {
	filter.Normalize()

	campaigns, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, model.NewInternal("Failed to list campaigns", err)
	}

	return &model.ListResponse{
		Items: campaigns,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// OwnerOf trả về workflow.ErrCampaignNotFound khi campaign không tồn tại.
func (s *Service) OwnerOf(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	ownerID, err := s.repo.GetOwnerID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return uuid.Nil, workflow.ErrCampaignNotFound
		}
		return uuid.Nil, err
	}
	return ownerID, nil
}

// =====================================================
// UPDATE
// =====================================================

func (s *Service) Update(ctx context.Context, id, userID uuid.UUID, req model.UpdateCampaignRequest) (*model.Campaign, error) {
	campaign, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapReadError(err)
	}
	if !campaign.IsOwnedBy(userID) {
		return nil, model.NewForbidden()
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title != campaign.Title {
			slug, err := s.uniqueSlug(ctx, title, campaign.ID)
			if err != nil {
				return nil, err
			}
			campaign.Title = title
			campaign.Slug = slug
		}
	}
	if req.GoalAmount != nil {
		campaign.GoalAmount = *req.GoalAmount
	}
	if req.Status != nil {
		campaign.Status = *req.Status
	}
	campaign.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, campaign); err != nil {
		switch {
		case errors.Is(err, model.ErrNotFound):
			return nil, model.NewNotFound()
		case errors.Is(err, model.ErrSlugExists):
			return nil, model.NewSlugExists(campaign.Slug)
		}
		return nil, model.NewInternal("Failed to update campaign", err)
	}

	return campaign, nil
}

// =====================================================
// HELPERS
// =====================================================

// uniqueSlug: "Nước sạch cho em" → "nuoc-sach-cho-em", trùng thì thêm -2, -3...
// Slug hiện tại của chính campaign (self) không tính là trùng.
func (s *Service) uniqueSlug(ctx context.Context, title string, self uuid.UUID) (string, error) {
	base := utils.GenerateSlug(title)
	if base == "" {
		return "", model.NewInvalidInput("title must contain at least one letter or digit")
	}

	candidate := base
	for i := 2; i <= maxSlugAttempts+1; i++ {
		existing, err := s.repo.GetBySlug(ctx, candidate)
		if errors.Is(err, model.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", model.NewInternal("Failed to check slug", err)
		}
		if existing.ID == self {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}

	return "", model.NewSlugExists(base)
}

func (s *Service) mapReadError(err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return model.NewNotFound()
	}
	return model.NewInternal("Failed to load campaign", err)
}
