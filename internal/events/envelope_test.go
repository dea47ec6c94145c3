package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-ddd-example/order-service/internal/domain"
)

func buildOrder(t *testing.T) *domain.Order {
	t.Helper()

	currency, err := domain.NewCurrency("USD")
	require.NoError(t, err)
	return domain.NewOrder(domain.GenerateOrderID(), domain.GenerateCustomerID(), currency)
}

func TestNewEnvelope(t *testing.T) {
	order := buildOrder(t)

	sku, err := domain.NewSku("LAPTOP-15")
	require.NoError(t, err)
	currency, err := domain.NewCurrency("USD")
	require.NoError(t, err)
	price, err := domain.NewMoney(999.99, currency)
	require.NoError(t, err)
	quantity, err := domain.NewQuantity(2)
	require.NoError(t, err)

	require.NoError(t, order.AddItem(sku, price, quantity))
	order.Total()

	pending := order.DomainEvents()
	require.Len(t, pending, 3)

	created := newEnvelope(pending[0])
	assert.Equal(t, "order.created", created.EventName)
	assert.Equal(t, order.ID().Value(), created.OrderID)
	assert.Equal(t, order.CustomerID().Value(), created.CustomerID)
	assert.Equal(t, "USD", created.Currency)
	assert.NotEmpty(t, created.EventID)
	assert.False(t, created.OccurredAt.IsZero())

	added := newEnvelope(pending[1])
	assert.Equal(t, "order.item_added", added.EventName)
	assert.Equal(t, "LAPTOP-15", added.Sku)
	assert.Equal(t, "999.99", added.UnitPrice)
	assert.Equal(t, 2, added.Quantity)
	assert.Equal(t, "1999.98", added.LineTotal)

	calculated := newEnvelope(pending[2])
	assert.Equal(t, "order.total_calculated", calculated.EventName)
	assert.Equal(t, "1999.98", calculated.Total)
	assert.Equal(t, 1, calculated.ItemCount)
}
