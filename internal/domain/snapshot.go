package domain

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// OrderSnapshot is the exported memento of an Order, used by
// repositories and the byte cache. It carries no pending events.
type OrderSnapshot struct {
	OrderID    string
	CustomerID string
	Currency   string
	Items      []ItemSnapshot
}

type ItemSnapshot struct {
	Sku       string
	UnitPrice string // decimal string, e.g. "999.99"
	Quantity  int
	LineTotal string
}

// Snapshot captures the order's current state.
func (o *Order) Snapshot() OrderSnapshot {
	items := make([]ItemSnapshot, 0, len(o.items))
	for _, item := range o.items {
		items = append(items, ItemSnapshot{
			Sku:       item.Sku().Value(),
			UnitPrice: item.UnitPrice().Decimal().StringFixed(moneyScale),
			Quantity:  item.Quantity().Value(),
			LineTotal: item.Total().Decimal().StringFixed(moneyScale),
		})
	}
	return OrderSnapshot{
		OrderID:    o.id.Value(),
		CustomerID: o.customerID.Value(),
		Currency:   o.currency.Code(),
		Items:      items,
	}
}

// RestoreOrder rebuilds an aggregate from a snapshot. Restoring goes
// through the value-object constructors, so a corrupted snapshot is
// rejected rather than smuggled past the invariants. No events are
// recorded.
func RestoreOrder(snap OrderSnapshot) (*Order, error) {
	id, err := NewOrderID(snap.OrderID)
	if err != nil {
		return nil, fmt.Errorf("restore order: %w", err)
	}
	customerID, err := NewCustomerID(snap.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("restore order: %w", err)
	}
	currency, err := NewCurrency(snap.Currency)
	if err != nil {
		return nil, fmt.Errorf("restore order: %w", err)
	}

	order := &Order{id: id, customerID: customerID, currency: currency}
	for _, item := range snap.Items {
		sku, err := NewSku(item.Sku)
		if err != nil {
			return nil, fmt.Errorf("restore order item: %w", err)
		}
		unitPrice, err := NewMoneyFromString(item.UnitPrice, currency)
		if err != nil {
			return nil, fmt.Errorf("restore order item: %w", err)
		}
		quantity, err := NewQuantity(item.Quantity)
		if err != nil {
			return nil, fmt.Errorf("restore order item: %w", err)
		}
		order.items = append(order.items, NewOrderItem(sku, unitPrice, quantity))
	}
	return order, nil
}

func (s OrderSnapshot) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *OrderSnapshot) Unmarshal(data []byte) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(s)
}
