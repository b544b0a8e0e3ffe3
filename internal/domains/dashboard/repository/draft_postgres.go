package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund-backoffice/internal/domains/workflow"
)

// workflowColumns - các cột chung của mọi bảng dashboard_*, thứ tự khớp với scanDraft
var workflowColumns = []string{
	"id", "campaign_id", "status",
	"submitted_by", "submitted_at", "reviewed_by", "reviewed_at", "comment",
	"created_at", "updated_at",
}

// =====================================================
// POSTGRES DRAFT REPOSITORY
// =====================================================

// draftRepository is one implementation shared by every entity kind; the
// table name and the content column mapping are the only differences.
type draftRepository[C any] struct {
	pool  *pgxpool.Pool
	table string
	cols  Columns[C]

	selectSQL string
	insertSQL string
	updateSQL string
}

func NewDraftRepository[C any](pool *pgxpool.Pool, table string, cols Columns[C]) workflow.DraftStore[C] {
	all := append(append([]string{}, workflowColumns...), cols.Names...)

	setClauses := []string{
		"status = $2",
		"submitted_by = $3",
		"submitted_at = $4",
		"reviewed_by = $5",
		"reviewed_at = $6",
		"comment = $7",
		"updated_at = $8",
	}
	for i, name := range cols.Names {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", name, i+9))
	}

	return &draftRepository[C]{
		pool:  pool,
		table: table,
		cols:  cols,
		selectSQL: fmt.Sprintf("SELECT %s FROM %s",
			strings.Join(all, ", "), table),
		insertSQL: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			table, strings.Join(all, ", "), placeholders(1, len(all))),
		updateSQL: fmt.Sprintf("UPDATE %s SET %s WHERE id = $1",
			table, strings.Join(setClauses, ", ")),
	}
}

// =====================================================
// CREATE
// =====================================================

func (r *draftRepository[C]) Create(ctx context.Context, draft *workflow.Draft[C]) error {
	args := []any{
		draft.ID,
		draft.CampaignID,
		string(draft.Status),
		draft.SubmittedBy,
		draft.SubmittedAt,
		draft.ReviewedBy,
		draft.ReviewedAt,
		draft.Comment,
		draft.CreatedAt,
		draft.UpdatedAt,
	}
	args = append(args, r.cols.Values(&draft.Content)...)

	if _, err := r.pool.Exec(ctx, r.insertSQL, args...); err != nil {
		// unique index trên campaign_id: mỗi campaign 1 draft
		if isUniqueViolation(err) {
			return workflow.ErrDuplicate
		}
		return fmt.Errorf("failed to insert into %s: %w", r.table, err)
	}
	return nil
}

// =====================================================
// GET
// =====================================================

func (r *draftRepository[C]) GetByID(ctx context.Context, id uuid.UUID) (*workflow.Draft[C], error) {
	row := r.pool.QueryRow(ctx, r.selectSQL+" WHERE id = $1", id)
	return r.scanDraft(row)
}

func (r *draftRepository[C]) GetByCampaignID(ctx context.Context, campaignID uuid.UUID) (*workflow.Draft[C], error) {
	row := r.pool.QueryRow(ctx, r.selectSQL+" WHERE campaign_id = $1", campaignID)
	return r.scanDraft(row)
}

func (r *draftRepository[C]) scanDraft(row pgx.Row) (*workflow.Draft[C], error) {
	draft := &workflow.Draft[C]{}
	var status string

	targets := []any{
		&draft.ID,
		&draft.CampaignID,
		&status,
		&draft.SubmittedBy,
		&draft.SubmittedAt,
		&draft.ReviewedBy,
		&draft.ReviewedAt,
		&draft.Comment,
		&draft.CreatedAt,
		&draft.UpdatedAt,
	}
	targets = append(targets, r.cols.Targets(&draft.Content)...)

	if err := row.Scan(targets...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, workflow.ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to scan %s: %w", r.table, err)
	}

	draft.Status = workflow.Status(status)
	return draft, nil
}

// =====================================================
// UPDATE
// =====================================================

// Update ghi lại toàn bộ content + workflow fields (last write wins).
func (r *draftRepository[C]) Update(ctx context.Context, draft *workflow.Draft[C]) error {
	args := []any{
		draft.ID,
		string(draft.Status),
		draft.SubmittedBy,
		draft.SubmittedAt,
		draft.ReviewedBy,
		draft.ReviewedAt,
		draft.Comment,
		draft.UpdatedAt,
	}
	args = append(args, r.cols.Values(&draft.Content)...)

	result, err := r.pool.Exec(ctx, r.updateSQL, args...)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", r.table, err)
	}
	if result.RowsAffected() == 0 {
		return workflow.ErrDraftNotFound
	}
	return nil
}

// =====================================================
// DELETE
// =====================================================

func (r *draftRepository[C]) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", r.table), id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", r.table, err)
	}
	if result.RowsAffected() == 0 {
		return workflow.ErrDraftNotFound
	}
	return nil
}

// =====================================================
// HELPERS
// =====================================================

// placeholders(3, 2) => "$3, $4"
func placeholders(from, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", from+i)
	}
	return strings.Join(parts, ", ")
}

// Error code 23505 = unique_violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
