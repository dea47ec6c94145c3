package trm

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type txKey struct{}

func withTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// ExtractTx returns the transaction carried by ctx, or nil when the
// callback runs outside a transaction.
func ExtractTx(ctx context.Context) *sqlx.Tx {
	tx, ok := ctx.Value(txKey{}).(*sqlx.Tx)
	if !ok {
		return nil
	}
	return tx
}

// Manager runs a callback within a transaction boundary. Repositories
// pick the transaction up from the context.
type Manager interface {
	Do(ctx context.Context, callback func(ctx context.Context) error) error
}

type sqlxManager struct {
	db *sqlx.DB
}

func NewManager(db *sqlx.DB) Manager {
	return &sqlxManager{db: db}
}

func (m *sqlxManager) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := callback(withTx(ctx, tx)); err != nil {
		return err
	}
	return tx.Commit()
}

type nopManager struct{}

// Nop returns a Manager that runs the callback directly, for storage
// backends without transactions.
func Nop() Manager {
	return nopManager{}
}

func (nopManager) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	return callback(ctx)
}
