package handler

import (
	"github.com/go-ddd-example/order-service/internal/domain"
)

type CreateOrderRequest struct {
	CustomerID string `json:"customer_id" validate:"required"`
	Currency   string `json:"currency" validate:"required"`
}

type AddItemRequest struct {
	Sku       string  `json:"sku" validate:"required"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
	Currency  string  `json:"currency" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
}

type Order struct {
	OrderID    string `json:"order_id"`
	CustomerID string `json:"customer_id"`
	Currency   string `json:"currency"`
	Items      []Item `json:"items"`
}

type Item struct {
	Sku       string `json:"sku"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type OrderTotal struct {
	Currency string `json:"currency"`
	Total    string `json:"total"`
}

func OrderSnapshotToJSON(snap domain.OrderSnapshot) Order {
	items := make([]Item, 0, len(snap.Items))
	for _, it := range snap.Items {
		items = append(items, Item{
			Sku:       it.Sku,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			LineTotal: it.LineTotal,
		})
	}

	return Order{
		OrderID:    snap.OrderID,
		CustomerID: snap.CustomerID,
		Currency:   snap.Currency,
		Items:      items,
	}
}
