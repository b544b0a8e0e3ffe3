package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund-backoffice/internal/domains/workflow"
	"crowdfund-backoffice/internal/shared/utils"
)

const selectColumns = `
	id, entity_type, entity_id, campaign_id, status,
	submitted_by, submitted_at, reviewed_by, reviewed_at, comment,
	created_at, updated_at
`

// postgresRepository - approval_records dùng chung cho mọi entity kind,
// unique index trên (entity_type, entity_id).
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) workflow.ApprovalStore {
	return &postgresRepository{pool: pool}
}

// =====================================================
// CREATE
// =====================================================

func (r *postgresRepository) Create(ctx context.Context, rec *workflow.ApprovalRecord) error {
	query := `
		INSERT INTO approval_records (` + selectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		rec.ID,
		string(rec.EntityType),
		rec.EntityID,
		rec.CampaignID,
		string(rec.Status),
		rec.SubmittedBy,
		rec.SubmittedAt,
		rec.ReviewedBy,
		rec.ReviewedAt,
		rec.Comment,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return workflow.ErrDuplicate
		}
		return fmt.Errorf("failed to create approval record: %w", err)
	}
	return nil
}

// =====================================================
// GET
// =====================================================

func (r *postgresRepository) GetByEntity(
	ctx context.Context,
	entityType workflow.EntityType,
	entityID uuid.UUID,
) (*workflow.ApprovalRecord, error) {
	query := `SELECT ` + selectColumns + ` FROM approval_records WHERE entity_type = $1 AND entity_id = $2`

	rec, err := scanRecord(r.pool.QueryRow(ctx, query, string(entityType), entityID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, workflow.ErrApprovalNotFound
		}
		return nil, fmt.Errorf("failed to get approval record: %w", err)
	}
	return rec, nil
}

// =====================================================
// UPDATE
// =====================================================

func (r *postgresRepository) Update(ctx context.Context, rec *workflow.ApprovalRecord) error {
	query := `
		UPDATE approval_records
		SET status = $2,
			submitted_by = $3,
			submitted_at = $4,
			reviewed_by = $5,
			reviewed_at = $6,
			comment = $7,
			updated_at = $8
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		rec.ID,
		string(rec.Status),
		rec.SubmittedBy,
		rec.SubmittedAt,
		rec.ReviewedBy,
		rec.ReviewedAt,
		rec.Comment,
		rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update approval record: %w", err)
	}
	if result.RowsAffected() == 0 {
		return workflow.ErrApprovalNotFound
	}
	return nil
}

// =====================================================
// DELETE
// =====================================================

func (r *postgresRepository) DeleteByEntity(ctx context.Context, entityType workflow.EntityType, entityID uuid.UUID) error {
	result, err := r.pool.Exec(ctx,
		`DELETE FROM approval_records WHERE entity_type = $1 AND entity_id = $2`,
		string(entityType), entityID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete approval record: %w", err)
	}
	if result.RowsAffected() == 0 {
		return workflow.ErrApprovalNotFound
	}
	return nil
}

// =====================================================
// LIST
// =====================================================

// List - build WHERE động theo filter, luôn ORDER BY submitted_at ASC (FIFO review queue)
func (r *postgresRepository) List(ctx context.Context, filter workflow.ApprovalFilter) ([]*workflow.ApprovalRecord, error) {
	where, args := buildFilter(filter)

	query := `SELECT ` + selectColumns + ` FROM approval_records`
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY submitted_at ASC, id ASC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list approval records: %w", err)
	}
	defer rows.Close()

	records := make([]*workflow.ApprovalRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan approval record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate approval records: %w", err)
	}
	return records, nil
}

func buildFilter(filter workflow.ApprovalFilter) (string, []any) {
	clauses := []string{}
	args := []any{}

	if filter.EntityType != "" {
		args = append(args, string(filter.EntityType))
		clauses = append(clauses, fmt.Sprintf("entity_type = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.SubmittedBy != nil {
		args = append(args, *filter.SubmittedBy)
		clauses = append(clauses, fmt.Sprintf("submitted_by = $%d", len(args)))
	}

	return utils.JoinWithAnd(clauses), args
}

func scanRecord(row pgx.Row) (*workflow.ApprovalRecord, error) {
	rec := &workflow.ApprovalRecord{}
	var entityType, status string

	err := row.Scan(
		&rec.ID,
		&entityType,
		&rec.EntityID,
		&rec.CampaignID,
		&status,
		&rec.SubmittedBy,
		&rec.SubmittedAt,
		&rec.ReviewedBy,
		&rec.ReviewedAt,
		&rec.Comment,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	rec.EntityType = workflow.EntityType(entityType)
	rec.Status = workflow.Status(status)
	if !rec.EntityType.IsValid() || !rec.Status.IsValid() {
		return nil, fmt.Errorf("invalid approval record %s: entity_type=%q status=%q", rec.ID, entityType, status)
	}
	return rec, nil
}
