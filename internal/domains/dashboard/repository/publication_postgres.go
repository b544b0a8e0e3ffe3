package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund-backoffice/internal/domains/workflow"
	"crowdfund-backoffice/pkg/database"
)

// =====================================================
// POSTGRES PUBLICATION REPOSITORY
// =====================================================
// Bảng canonical (campaign_summaries, campaign_infos, ...) là bản public
// mà trang campaign đọc. Chỉ ghi khi một draft được approve.

type publicationRepository[C any] struct {
	pool  *pgxpool.Pool
	table string
	cols  Columns[C]

	upsertSQL string
	selectSQL string
}

func NewPublicationRepository[C any](pool *pgxpool.Pool, table string, cols Columns[C]) workflow.PublicationStore[C] {
	insertCols := append([]string{"campaign_id"}, cols.Names...)

	updates := make([]string, 0, len(cols.Names)+1)
	for _, name := range cols.Names {
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", name, name))
	}
	updates = append(updates, "published_at = NOW()")

	return &publicationRepository[C]{
		pool:  pool,
		table: table,
		cols:  cols,
		upsertSQL: fmt.Sprintf(
			"INSERT INTO %s (%s, published_at) VALUES (%s, NOW()) ON CONFLICT (campaign_id) DO UPDATE SET %s",
			table,
			strings.Join(insertCols, ", "),
			placeholders(1, len(insertCols)),
			strings.Join(updates, ", "),
		),
		selectSQL: fmt.Sprintf("SELECT %s FROM %s WHERE campaign_id = $1",
			strings.Join(cols.Names, ", "), table),
	}
}

// Publish upsert content vào bảng canonical và touch campaigns.updated_at
// trong cùng một transaction.
func (r *publicationRepository[C]) Publish(ctx context.Context, campaignID uuid.UUID, content C) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		args := append([]any{campaignID}, r.cols.Values(&content)...)

		if _, err := tx.Exec(ctx, r.upsertSQL, args...); err != nil {
			return fmt.Errorf("failed to upsert %s: %w", r.table, err)
		}

		result, err := tx.Exec(ctx, `UPDATE campaigns SET updated_at = NOW() WHERE id = $1`, campaignID)
		if err != nil {
			return fmt.Errorf("failed to touch campaign: %w", err)
		}
		if result.RowsAffected() == 0 {
			return workflow.ErrCampaignNotFound
		}
		return nil
	})
}

func (r *publicationRepository[C]) Get(ctx context.Context, campaignID uuid.UUID) (*C, error) {
	var content C
	err := r.pool.QueryRow(ctx, r.selectSQL, campaignID).Scan(r.cols.Targets(&content)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, workflow.ErrPublicationNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", r.table, err)
	}
	return &content, nil
}
