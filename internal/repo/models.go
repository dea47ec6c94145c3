package repo

import (
	"github.com/shopspring/decimal"

	"github.com/go-ddd-example/order-service/internal/domain"
)

type orderRow struct {
	OrderID    string `db:"order_id"`
	CustomerID string `db:"customer_id"`
	Currency   string `db:"currency"`
}

type itemRow struct {
	OrderID   string `db:"order_id"`
	Sku       string `db:"sku"`
	UnitPrice string `db:"unit_price"`
	Quantity  int    `db:"quantity"`
	Position  int    `db:"position"`
}

func orderToSnapshot(order orderRow, items []itemRow) domain.OrderSnapshot {
	snap := domain.OrderSnapshot{
		OrderID:    order.OrderID,
		CustomerID: order.CustomerID,
		Currency:   order.Currency,
	}

	if len(items) > 0 {
		snap.Items = make([]domain.ItemSnapshot, 0, len(items))
		for _, item := range items {
			snap.Items = append(snap.Items, domain.ItemSnapshot{
				Sku:       item.Sku,
				UnitPrice: item.UnitPrice,
				Quantity:  item.Quantity,
				LineTotal: lineTotal(item.UnitPrice, item.Quantity),
			})
		}
	}

	return snap
}

func lineTotal(unitPrice string, quantity int) string {
	price, err := decimal.NewFromString(unitPrice)
	if err != nil {
		return ""
	}
	return price.Mul(decimal.NewFromInt(int64(quantity))).Round(2).StringFixed(2)
}
