package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-ddd-example/order-service/internal/domain"
	"github.com/go-ddd-example/order-service/internal/repo"
)

func sampleSnapshot() domain.OrderSnapshot {
	return domain.OrderSnapshot{
		OrderID:    uuid.NewString(),
		CustomerID: uuid.NewString(),
		Currency:   "USD",
		Items: []domain.ItemSnapshot{
			{Sku: "LAPTOP-15", UnitPrice: "999.99", Quantity: 2, LineTotal: "1999.98"},
			{Sku: "MOUSE-USB", UnitPrice: "25.50", Quantity: 1, LineTotal: "25.50"},
		},
	}
}

func TestMemoryRepo_SaveAndGet(t *testing.T) {
	r := repo.NewMemoryRepo()
	ctx := context.Background()
	snap := sampleSnapshot()

	require.NoError(t, r.SaveOrder(ctx, snap))

	stored, err := r.GetOrderByID(ctx, snap.OrderID)
	require.NoError(t, err)
	assert.Equal(t, snap, stored)

	// item order is preserved
	assert.Equal(t, "LAPTOP-15", stored.Items[0].Sku)
	assert.Equal(t, "MOUSE-USB", stored.Items[1].Sku)
}

func TestMemoryRepo_NotFound(t *testing.T) {
	r := repo.NewMemoryRepo()

	_, err := r.GetOrderByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestMemoryRepo_SaveReplaces(t *testing.T) {
	r := repo.NewMemoryRepo()
	ctx := context.Background()
	snap := sampleSnapshot()

	require.NoError(t, r.SaveOrder(ctx, snap))

	snap.Items = snap.Items[:1]
	require.NoError(t, r.SaveOrder(ctx, snap))

	stored, err := r.GetOrderByID(ctx, snap.OrderID)
	require.NoError(t, err)
	assert.Len(t, stored.Items, 1)
}

func TestMemoryRepo_Isolation(t *testing.T) {
	r := repo.NewMemoryRepo()
	ctx := context.Background()
	snap := sampleSnapshot()
	require.NoError(t, r.SaveOrder(ctx, snap))

	// mutating the caller's copy must not leak into the store
	snap.Items[0].Sku = "TAMPERED"

	stored, err := r.GetOrderByID(ctx, snap.OrderID)
	require.NoError(t, err)
	assert.Equal(t, "LAPTOP-15", stored.Items[0].Sku)

	// and mutating a read result must not either
	stored.Items[1].Sku = "TAMPERED"
	again, err := r.GetOrderByID(ctx, snap.OrderID)
	require.NoError(t, err)
	assert.Equal(t, "MOUSE-USB", again.Items[1].Sku)
}
