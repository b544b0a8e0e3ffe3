package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

// fakeTx chỉ implement Commit/Rollback, các method khác panic nếu bị gọi.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
	commitErr  error
}

func (f *fakeTx) Commit(context.Context) error {
	f.committed = true
	return f.commitErr
}

func (f *fakeTx) Rollback(context.Context) error {
	f.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx  *fakeTx
	err error
}

func (b *fakeBeginner) Begin(context.Context) (pgx.Tx, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.tx, nil
}

func TestWithTransaction_Commit(t *testing.T) {
	tx := &fakeTx{}

	err := WithTransaction(context.Background(), &fakeBeginner{tx: tx}, func(pgx.Tx) error { return nil })

	assert.NoError(t, err)
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
}

func TestWithTransaction_RollbackOnError(t *testing.T) {
	tx := &fakeTx{}
	boom := errors.New("boom")

	err := WithTransaction(context.Background(), &fakeBeginner{tx: tx}, func(pgx.Tx) error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
}

func TestWithTransaction_RollbackOnPanic(t *testing.T) {
	tx := &fakeTx{}

	assert.Panics(t, func() {
		_ = WithTransaction(context.Background(), &fakeBeginner{tx: tx}, func(pgx.Tx) error { panic("kaboom") })
	})
	assert.True(t, tx.rolledBack)
}

func TestWithTransaction_CommitFailure(t *testing.T) {
	tx := &fakeTx{commitErr: errors.New("connection reset")}

	err := WithTransaction(context.Background(), &fakeBeginner{tx: tx}, func(pgx.Tx) error { return nil })

	assert.ErrorContains(t, err, "failed to commit transaction")
	assert.True(t, tx.rolledBack)
}

func TestWithTransaction_BeginFailure(t *testing.T) {
	err := WithTransaction(context.Background(), &fakeBeginner{err: errors.New("pool closed")}, func(pgx.Tx) error {
		t.Fatal("fn must not run")
		return nil
	})

	assert.ErrorContains(t, err, "failed to begin transaction")
}
