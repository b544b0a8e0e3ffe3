package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund-backoffice/internal/domains/workflow"
)

func TestBuildFilter(t *testing.T) {
	pending := workflow.StatusPending
	submitter := uuid.New()

	tests := []struct {
		name      string
		filter    workflow.ApprovalFilter
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "empty filter",
			filter:    workflow.ApprovalFilter{},
			wantWhere: "",
			wantArgs:  []any{},
		},
		{
			name: "pending queue",
			filter: workflow.ApprovalFilter{
				EntityType: workflow.EntitySummary,
				Status:     &pending,
			},
			wantWhere: "entity_type = $1 AND status = $2",
			wantArgs:  []any{"summary", "PENDING"},
		},
		{
			name: "by submitter",
			filter: workflow.ApprovalFilter{
				EntityType:  workflow.EntitySocials,
				SubmittedBy: &submitter,
			},
			wantWhere: "entity_type = $1 AND submitted_by = $2",
			wantArgs:  []any{"socials", submitter},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildFilter(tt.filter)
			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

// fakeRow chỉ điền entity_type (cột 2) và status (cột 5)
type fakeRow struct {
	entityType string
	status     string
}

func (r fakeRow) Scan(dest ...any) error {
	*dest[1].(*string) = r.entityType
	*dest[4].(*string) = r.status
	return nil
}

func TestScanRecord_ValidatesEnums(t *testing.T) {
	rec, err := scanRecord(fakeRow{entityType: "info", status: "PENDING"})
	require.NoError(t, err)
	assert.Equal(t, workflow.EntityInfo, rec.EntityType)
	assert.Equal(t, workflow.StatusPending, rec.Status)

	_, err = scanRecord(fakeRow{entityType: "rewards", status: "PENDING"})
	assert.Error(t, err)

	_, err = scanRecord(fakeRow{entityType: "info", status: "pending"})
	assert.Error(t, err)
}
