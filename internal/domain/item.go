package domain

// OrderItem is an immutable line item: a SKU priced per unit with a
// quantity. The component value objects carry all validation.
type OrderItem struct {
	sku       Sku
	unitPrice Money
	quantity  Quantity
}

func NewOrderItem(sku Sku, unitPrice Money, quantity Quantity) OrderItem {
	return OrderItem{sku: sku, unitPrice: unitPrice, quantity: quantity}
}

func (i OrderItem) Sku() Sku {
	return i.sku
}

func (i OrderItem) UnitPrice() Money {
	return i.unitPrice
}

func (i OrderItem) Quantity() Quantity {
	return i.quantity
}

// Total is the unit price multiplied by the quantity, in the unit
// price's currency.
func (i OrderItem) Total() Money {
	return i.unitPrice.mulInt(i.quantity.value)
}

func (i OrderItem) HasSameSku(other OrderItem) bool {
	return i.sku.Equals(other.sku)
}

func (i OrderItem) HasSameCurrency(other OrderItem) bool {
	return i.unitPrice.Currency().Equals(other.unitPrice.Currency())
}

func (i OrderItem) Equals(other OrderItem) bool {
	return i.sku.Equals(other.sku) &&
		i.unitPrice.Equals(other.unitPrice) &&
		i.quantity.Equals(other.quantity)
}
