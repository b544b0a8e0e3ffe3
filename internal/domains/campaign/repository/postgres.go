package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund-backoffice/internal/domains/campaign/model"
	"crowdfund-backoffice/internal/shared/utils"
)

const campaignColumns = `id, owner_id, title, slug, goal_amount, currency, status, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// =====================================================
// CREATE
// =====================================================

func (r *postgresRepository) Create(ctx context.Context, c *model.Campaign) error {
	query := `
		INSERT INTO campaigns (` + campaignColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		c.ID, c.OwnerID, c.Title, c.Slug, c.GoalAmount, c.Currency, string(c.Status), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrSlugExists
		}
		return fmt.Errorf("failed to create campaign: %w", err)
	}
	return nil
}

// =====================================================
// GET
// =====================================================

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	return scanCampaign(row)
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*model.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE slug = $1`, slug)
	return scanCampaign(row)
}

// GetOwnerID - dùng cho workflow coordinator trước khi tạo draft
func (r *postgresRepository) GetOwnerID(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	var ownerID uuid.UUID
	err := r.pool.QueryRow(ctx, `SELECT owner_id FROM campaigns WHERE id = $1`, id).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, model.ErrNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to load campaign owner: %w", err)
	}
	return ownerID, nil
}

// =====================================================
// LIST
// =====================================================

func (r *postgresRepository) List(ctx context.Context, filter model.ListFilter) ([]*model.Campaign, int, error) {
	clauses := []string{}
	args := []any{}

	if filter.OwnerID != nil {
		args = append(args, *filter.OwnerID)
		clauses = append(clauses, fmt.Sprintf("owner_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}

	where := ""
	if len(clauses) > 0 {
		where = " WHERE " + utils.JoinWithAnd(clauses)
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM campaigns`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count campaigns: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM campaigns%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		campaignColumns, where, len(args)+1, len(args)+2)
	rows, err := r.pool.Query(ctx, query, append(args, filter.Limit, filter.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*model.Campaign, 0, filter.Limit)
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, 0, err
		}
		campaigns = append(campaigns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate campaigns: %w", err)
	}

	return campaigns, total, nil
}

// =====================================================
// UPDATE
// =====================================================

func (r *postgresRepository) Update(ctx context.Context, c *model.Campaign) error {
	query := `
		UPDATE campaigns
		SET title = $2, slug = $3, goal_amount = $4, status = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, c.ID, c.Title, c.Slug, c.GoalAmount, string(c.Status), c.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrSlugExists
		}
		return fmt.Errorf("failed to update campaign: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func scanCampaign(row pgx.Row) (*model.Campaign, error) {
	c := &model.Campaign{}
	var status string

	err := row.Scan(&c.ID, &c.OwnerID, &c.Title, &c.Slug, &c.GoalAmount, &c.Currency, &status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan campaign: %w", err)
	}

	c.Status = model.Status(status)
	return c, nil
}
