package events

import (
	"time"

	"github.com/go-ddd-example/order-service/internal/domain"
)

// envelope is the JSON wire form of a domain event.
type envelope struct {
	EventID    string    `json:"event_id"`
	EventName  string    `json:"event_name"`
	OccurredAt time.Time `json:"occurred_at"`
	OrderID    string    `json:"order_id"`

	CustomerID string `json:"customer_id,omitempty"`
	Currency   string `json:"currency,omitempty"`

	Sku       string `json:"sku,omitempty"`
	UnitPrice string `json:"unit_price,omitempty"`
	Quantity  int    `json:"quantity,omitempty"`
	LineTotal string `json:"line_total,omitempty"`

	Total     string `json:"total,omitempty"`
	ItemCount int    `json:"item_count,omitempty"`
}

func newEnvelope(event domain.Event) envelope {
	env := envelope{
		EventID:    event.EventID(),
		EventName:  event.EventName(),
		OccurredAt: event.OccurredAt(),
	}

	switch e := event.(type) {
	case domain.OrderCreated:
		env.OrderID = e.OrderID.Value()
		env.CustomerID = e.CustomerID.Value()
		env.Currency = e.Currency.Code()
	case domain.ItemAddedToOrder:
		env.OrderID = e.OrderID.Value()
		env.Sku = e.Sku.Value()
		env.UnitPrice = e.UnitPrice.Decimal().StringFixed(2)
		env.Currency = e.UnitPrice.Currency().Code()
		env.Quantity = e.Quantity.Value()
		env.LineTotal = e.LineTotal.Decimal().StringFixed(2)
	case domain.OrderTotalCalculated:
		env.OrderID = e.OrderID.Value()
		env.Total = e.Total.Decimal().StringFixed(2)
		env.Currency = e.Total.Currency().Code()
		env.ItemCount = e.ItemCount
	}

	return env
}
