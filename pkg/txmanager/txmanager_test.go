package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
)

type fakeTx struct {
	dbmetrics.DBExecutor
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit() error   { f.committed = true; return nil }
func (f *fakeTx) Rollback() error { f.rolledBack = true; return nil }

type fakeBeginner struct {
	tx       *fakeTx
	opts     *sql.TxOptions
	begins   int
	beginErr error
}

func (f *fakeBeginner) BeginTx(_ context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	f.begins++
	f.opts = opts
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	return f.tx, nil
}

func TestDoReadOnly_Commits(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	mgr := NewTransactionManager(beginner)

	err := mgr.DoReadOnly(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	assert.True(t, beginner.tx.committed)
	assert.False(t, beginner.tx.rolledBack)
	assert.True(t, beginner.opts.ReadOnly)
	assert.Equal(t, sql.LevelRepeatableRead, beginner.opts.Isolation)
}

func TestDoReadOnly_RollsBackOnError(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	mgr := NewTransactionManager(beginner)
	boom := errors.New("boom")

	err := mgr.DoReadOnly(context.Background(), func(context.Context) error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.True(t, beginner.tx.rolledBack)
	assert.False(t, beginner.tx.committed)
}

func TestDoReadOnly_NestedReusesTransaction(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	mgr := NewTransactionManager(beginner)

	err := mgr.DoReadOnly(context.Background(), func(ctx context.Context) error {
		return mgr.DoReadOnly(ctx, func(context.Context) error { return nil })
	})

	require.NoError(t, err)
	assert.Equal(t, 1, beginner.begins)
}

func TestDoReadOnly_BeginError(t *testing.T) {
	mgr := NewTransactionManager(&fakeBeginner{beginErr: errors.New("no conn")})

	err := mgr.DoReadOnly(context.Background(), func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrTransaction)
}
