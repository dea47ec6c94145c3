package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is an immutable record of a fact that already happened inside
// the aggregate. Events are appended to the aggregate's pending queue
// and drained by the caller after publishing.
type Event interface {
	EventID() string
	EventName() string
	OccurredAt() time.Time
}

type eventMeta struct {
	id         string
	occurredAt time.Time
}

func newEventMeta() eventMeta {
	return eventMeta{id: uuid.NewString(), occurredAt: time.Now().UTC()}
}

func (m eventMeta) EventID() string {
	return m.id
}

func (m eventMeta) OccurredAt() time.Time {
	return m.occurredAt
}

type OrderCreated struct {
	eventMeta
	OrderID    OrderID
	CustomerID CustomerID
	Currency   Currency
}

func NewOrderCreated(orderID OrderID, customerID CustomerID, currency Currency) OrderCreated {
	return OrderCreated{
		eventMeta:  newEventMeta(),
		OrderID:    orderID,
		CustomerID: customerID,
		Currency:   currency,
	}
}

func (OrderCreated) EventName() string {
	return "order.created"
}

type ItemAddedToOrder struct {
	eventMeta
	OrderID   OrderID
	Sku       Sku
	UnitPrice Money
	Quantity  Quantity
	LineTotal Money
}

func NewItemAddedToOrder(orderID OrderID, item OrderItem) ItemAddedToOrder {
	return ItemAddedToOrder{
		eventMeta: newEventMeta(),
		OrderID:   orderID,
		Sku:       item.Sku(),
		UnitPrice: item.UnitPrice(),
		Quantity:  item.Quantity(),
		LineTotal: item.Total(),
	}
}

func (ItemAddedToOrder) EventName() string {
	return "order.item_added"
}

type OrderTotalCalculated struct {
	eventMeta
	OrderID   OrderID
	Total     Money
	ItemCount int
}

func NewOrderTotalCalculated(orderID OrderID, total Money, itemCount int) OrderTotalCalculated {
	return OrderTotalCalculated{
		eventMeta: newEventMeta(),
		OrderID:   orderID,
		Total:     total,
		ItemCount: itemCount,
	}
}

func (OrderTotalCalculated) EventName() string {
	return "order.total_calculated"
}
