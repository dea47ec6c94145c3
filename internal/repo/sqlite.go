package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/go-ddd-example/order-service/internal/domain"
	"github.com/go-ddd-example/order-service/pkg/trm"
)

const schema = `
CREATE TABLE IF NOT EXISTS orders (
	order_id    TEXT PRIMARY KEY,
	customer_id TEXT NOT NULL,
	currency    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS order_items (
	order_id   TEXT    NOT NULL REFERENCES orders (order_id),
	sku        TEXT    NOT NULL,
	unit_price TEXT    NOT NULL,
	quantity   INTEGER NOT NULL,
	position   INTEGER NOT NULL,
	PRIMARY KEY (order_id, sku)
);
`

// SQLiteRepo stores order snapshots in sqlite. It demonstrates the
// repository port backed by real SQL while all state still lives in
// memory (the database is opened with the :memory: DSN).
type SQLiteRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewSQLiteRepo(db *sqlx.DB) *SQLiteRepo {
	return &SQLiteRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}

func (r *SQLiteRepo) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (r *SQLiteRepo) GetOrderByID(ctx context.Context, orderID string) (domain.OrderSnapshot, error) {
	query, args := r.qb.Select("order_id", "customer_id", "currency").
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var order orderRow
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.OrderSnapshot{}, domain.ErrOrderNotFound
	}
	if err != nil {
		return domain.OrderSnapshot{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select("order_id", "sku", "unit_price", "quantity", "position").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("position ASC").
		MustSql()

	var items []itemRow
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return domain.OrderSnapshot{}, fmt.Errorf("failed to get order items: %w", err)
	}

	return orderToSnapshot(order, items), nil
}

// SaveOrder writes the full snapshot: the order row is replaced and the
// item rows are rewritten. Callers wrap it in a transaction so readers
// never observe a half-written snapshot.
func (r *SQLiteRepo) SaveOrder(ctx context.Context, snap domain.OrderSnapshot) error {
	query, args := r.qb.Insert("orders").
		Options("OR REPLACE").
		Columns("order_id", "customer_id", "currency").
		Values(snap.OrderID, snap.CustomerID, snap.Currency).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	query, args = r.qb.Delete("order_items").
		Where(sq.Eq{"order_id": snap.OrderID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear order items: %w", err)
	}

	if len(snap.Items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "sku", "unit_price", "quantity", "position")

	for i, item := range snap.Items {
		q = q.Values(snap.OrderID, item.Sku, item.UnitPrice, item.Quantity, i)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order items: %w", err)
	}
	return nil
}

func (r *SQLiteRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *SQLiteRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *SQLiteRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
