package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/staffhub-server/internal/model"
)

type fakeTx struct {
	pgx.Tx
	commitErr  error
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit(ctx context.Context) error {
	f.committed = true
	return f.commitErr
}

func (f *fakeTx) Rollback(ctx context.Context) error {
	f.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx  *fakeTx
	err error
}

func (f *fakeBeginner) BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tx, nil
}

func TestTransactor_Commit(t *testing.T) {
	tx := &fakeTx{}
	tr := NewTransactor(&fakeBeginner{tx: tx})

	err := tr.WithinTx(context.Background(), func(ctx context.Context, repos model.Repositories) error {
		assert.NotNil(t, repos.Identities)
		assert.NotNil(t, repos.Profiles)
		return nil
	})

	require.NoError(t, err)
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
}

func TestTransactor_RollbackOnError(t *testing.T) {
	tx := &fakeTx{}
	tr := NewTransactor(&fakeBeginner{tx: tx})
	boom := errors.New("boom")

	err := tr.WithinTx(context.Background(), func(ctx context.Context, repos model.Repositories) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
}

func TestTransactor_RollbackOnPanic(t *testing.T) {
	tx := &fakeTx{}
	tr := NewTransactor(&fakeBeginner{tx: tx})

	assert.PanicsWithValue(t, "boom", func() {
		_ = tr.WithinTx(context.Background(), func(ctx context.Context, repos model.Repositories) error {
			panic("boom")
		})
	})
	assert.True(t, tx.rolledBack)
}

func TestTransactor_CommitFailure(t *testing.T) {
	tx := &fakeTx{commitErr: errors.New("serialization failure")}
	tr := NewTransactor(&fakeBeginner{tx: tx})

	err := tr.WithinTx(context.Background(), func(ctx context.Context, repos model.Repositories) error {
		return nil
	})

	assert.ErrorContains(t, err, "failed to commit transaction")
	assert.True(t, tx.rolledBack)
}

func TestTransactor_BeginFailure(t *testing.T) {
	tr := NewTransactor(&fakeBeginner{err: errors.New("pool closed")})
	called := false

	err := tr.WithinTx(context.Background(), func(ctx context.Context, repos model.Repositories) error {
		called = true
		return nil
	})

	assert.ErrorContains(t, err, "failed to begin transaction")
	assert.False(t, called)
}
