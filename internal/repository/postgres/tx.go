package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/staffhub-server/internal/model"
)

// TxBeginner starts transactions. Satisfied by *pgxpool.Pool.
type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

var _ model.Transactor = (*Transactor)(nil)

// Transactor runs units of work on a single pooled connection.
type Transactor struct {
	db TxBeginner
}

func NewTransactor(db TxBeginner) *Transactor {
	return &Transactor{db: db}
}

// WithinTx commits when fn succeeds and rolls back on error or panic.
// The rollback is not bound to ctx so that a cancelled request still releases its connection.
func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context, repos model.Repositories) error) (err error) {
	tx, err := t.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	rollback := func() {
		_ = tx.Rollback(context.WithoutCancel(ctx))
	}

	defer func() {
		if p := recover(); p != nil {
			rollback()
			panic(p)
		}
	}()

	repos := model.Repositories{
		Identities: NewIdentityRepository(tx),
		Profiles:   NewProfileRepository(tx),
	}

	if err := fn(ctx, repos); err != nil {
		rollback()
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		rollback()
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
