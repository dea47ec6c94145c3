package repo

import (
	"context"
	"sync"

	"github.com/go-ddd-example/order-service/internal/domain"
)

// MemoryRepo keeps order snapshots in a mutex-guarded map. It is the
// default storage: the whole system holds its state in process memory.
type MemoryRepo struct {
	mu     sync.RWMutex
	orders map[string]domain.OrderSnapshot
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{orders: make(map[string]domain.OrderSnapshot)}
}

func (r *MemoryRepo) GetOrderByID(ctx context.Context, orderID string) (domain.OrderSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap, ok := r.orders[orderID]
	if !ok {
		return domain.OrderSnapshot{}, domain.ErrOrderNotFound
	}
	return cloneSnapshot(snap), nil
}

func (r *MemoryRepo) SaveOrder(ctx context.Context, snap domain.OrderSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[snap.OrderID] = cloneSnapshot(snap)
	return nil
}

// cloneSnapshot copies the items slice so callers and the store never
// share backing arrays.
func cloneSnapshot(snap domain.OrderSnapshot) domain.OrderSnapshot {
	if snap.Items == nil {
		return snap
	}
	items := make([]domain.ItemSnapshot, len(snap.Items))
	copy(items, snap.Items)
	snap.Items = items
	return snap
}
