package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-ddd-example/order-service/internal/domain"
	"github.com/go-ddd-example/order-service/pkg/trm"
	"github.com/go-ddd-example/order-service/pkg/utils"
)

type OrderRepo interface {
	GetOrderByID(ctx context.Context, orderID string) (domain.OrderSnapshot, error)
	SaveOrder(ctx context.Context, snap domain.OrderSnapshot) error
}

type EventPublisher interface {
	Publish(ctx context.Context, events []domain.Event) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	cache     Cache
	publisher EventPublisher
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, cache Cache, publisher EventPublisher) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
		publisher: publisher,
	}
}

type CreateOrderInput struct {
	CustomerID string
	Currency   string
}

// CreateOrder builds the value objects (the validation boundary), spins
// up an empty aggregate and persists its snapshot. The pending
// OrderCreated event is published afterwards.
func (s *orderService) CreateOrder(ctx context.Context, in CreateOrderInput) (domain.OrderSnapshot, error) {
	customerID, err := domain.NewCustomerID(in.CustomerID)
	if err != nil {
		return domain.OrderSnapshot{}, err
	}
	currency, err := domain.NewCurrency(in.Currency)
	if err != nil {
		return domain.OrderSnapshot{}, err
	}

	order := domain.NewOrder(domain.GenerateOrderID(), customerID, currency)

	snap := order.Snapshot()
	if err := s.saveSnapshot(ctx, snap); err != nil {
		return domain.OrderSnapshot{}, fmt.Errorf("failed to save order: %w", err)
	}

	s.publishEvents(ctx, order)
	ordersCreated.Inc()

	s.logger.Debug("order created", slog.String("order_id", snap.OrderID))
	return snap, nil
}

type AddItemInput struct {
	Sku       string
	UnitPrice float64
	Currency  string
	Quantity  int
}

// AddItem loads the aggregate, applies the add-item operation and saves
// the new snapshot. Business-rule rejections come back as domain errors
// the handler maps to statuses.
func (s *orderService) AddItem(ctx context.Context, orderID string, in AddItemInput) (domain.OrderSnapshot, error) {
	id, err := domain.NewOrderID(orderID)
	if err != nil {
		return domain.OrderSnapshot{}, err
	}
	sku, err := domain.NewSku(in.Sku)
	if err != nil {
		return domain.OrderSnapshot{}, err
	}
	currency, err := domain.NewCurrency(in.Currency)
	if err != nil {
		return domain.OrderSnapshot{}, err
	}
	unitPrice, err := domain.NewMoney(in.UnitPrice, currency)
	if err != nil {
		return domain.OrderSnapshot{}, err
	}
	quantity, err := domain.NewQuantity(in.Quantity)
	if err != nil {
		return domain.OrderSnapshot{}, err
	}

	order, err := s.loadOrder(ctx, id.Value())
	if err != nil {
		return domain.OrderSnapshot{}, err
	}

	if err := order.AddItem(sku, unitPrice, quantity); err != nil {
		itemsRejected.WithLabelValues(string(domain.KindOf(err))).Inc()
		return domain.OrderSnapshot{}, err
	}

	snap := order.Snapshot()
	if err := s.saveSnapshot(ctx, snap); err != nil {
		return domain.OrderSnapshot{}, fmt.Errorf("failed to save order: %w", err)
	}

	s.publishEvents(ctx, order)
	itemsAdded.Inc()

	s.logger.Debug("item added",
		slog.String("order_id", snap.OrderID),
		slog.String("sku", sku.Value()),
	)
	return snap, nil
}

// GetOrder is a read-through: cache first, then the repository.
func (s *orderService) GetOrder(ctx context.Context, orderID string) (domain.OrderSnapshot, error) {
	id, err := domain.NewOrderID(orderID)
	if err != nil {
		return domain.OrderSnapshot{}, err
	}

	if data, ok := s.cache.Get(id.Value()); ok {
		var snap domain.OrderSnapshot
		if err := snap.Unmarshal(data); err == nil {
			return snap, nil
		}
		s.logger.Error("failed to unmarshal cached order", slog.String("order_id", id.Value()))
	}

	snap, err := s.repo.GetOrderByID(ctx, id.Value())
	if err != nil {
		return domain.OrderSnapshot{}, err
	}

	s.cacheSnapshot(snap)
	return snap, nil
}

type OrderTotalOutput struct {
	Currency string
	Total    string
}

// GetOrderTotal recomputes the order total through the aggregate. Each
// non-empty calculation emits an audit event, which is published the
// same way mutations publish theirs.
func (s *orderService) GetOrderTotal(ctx context.Context, orderID string) (OrderTotalOutput, error) {
	id, err := domain.NewOrderID(orderID)
	if err != nil {
		return OrderTotalOutput{}, err
	}

	order, err := s.loadOrder(ctx, id.Value())
	if err != nil {
		return OrderTotalOutput{}, err
	}

	total := order.TotalByCurrency()
	s.publishEvents(ctx, order)
	totalsCalculated.Inc()

	return OrderTotalOutput{
		Currency: total.Currency.Code(),
		Total:    total.Amount.Decimal().StringFixed(2),
	}, nil
}

func (s *orderService) loadOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	snap, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order, err := domain.RestoreOrder(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to restore order %s: %w", orderID, err)
	}
	return order, nil
}

func (s *orderService) saveSnapshot(ctx context.Context, snap domain.OrderSnapshot) error {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repo.SaveOrder(ctx, snap)
	})
	if err != nil {
		return err
	}
	s.cacheSnapshot(snap)
	return nil
}

func (s *orderService) cacheSnapshot(snap domain.OrderSnapshot) {
	data, err := snap.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order snapshot", slog.Any("error", err))
		return
	}
	s.cache.Set(snap.OrderID, data)
}

// publishEvents drains the aggregate's pending events. The queue is
// cleared only after a successful publish; on failure the events stay
// pending and the error is logged, since the state change itself has
// already been persisted.
func (s *orderService) publishEvents(ctx context.Context, order *domain.Order) {
	events := order.DomainEvents()
	if len(events) == 0 {
		return
	}

	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}

	err := utils.Retry(cfg, func() error {
		return s.publisher.Publish(ctx, events)
	})
	if err != nil {
		s.logger.Error("failed to publish domain events",
			slog.Any("error", err),
			slog.String("order_id", order.ID().Value()),
			slog.Int("count", len(events)),
		)
		return
	}

	order.ClearDomainEvents()
}
