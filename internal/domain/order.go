package domain

// MaxOrderItems caps the number of line items a single order may hold.
const MaxOrderItems = 100

// Order is the aggregate root. It owns its line items and a queue of
// pending domain events, and enforces the cross-item invariants: one
// currency per order, unique SKUs, at most MaxOrderItems items.
//
// An Order is not safe for concurrent use; callers serialize access per
// instance.
type Order struct {
	id         OrderID
	customerID CustomerID
	currency   Currency
	items      []OrderItem
	events     []Event
}

// NewOrder creates an empty order and records an OrderCreated event.
func NewOrder(id OrderID, customerID CustomerID, currency Currency) *Order {
	order := &Order{id: id, customerID: customerID, currency: currency}
	order.record(NewOrderCreated(id, customerID, currency))
	return order
}

func (o *Order) ID() OrderID {
	return o.id
}

func (o *Order) CustomerID() CustomerID {
	return o.customerID
}

func (o *Order) Currency() Currency {
	return o.currency
}

func (o *Order) IsEmpty() bool {
	return len(o.items) == 0
}

func (o *Order) ItemCount() int {
	return len(o.items)
}

// Items returns the line items in insertion order. The slice is a copy;
// mutating it does not affect the order.
func (o *Order) Items() []OrderItem {
	items := make([]OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// AddItem appends a new line item after checking the invariants, in this
// order: currency match, item limit, duplicate SKU. On a full order a
// duplicate SKU therefore reports the limit error. Either the item and
// its event are both appended, or the order is left untouched.
func (o *Order) AddItem(sku Sku, unitPrice Money, quantity Quantity) error {
	if !unitPrice.Currency().Equals(o.currency) {
		return newError(ErrCurrencyMismatch, "item currency (%s) does not match order currency (%s)", unitPrice.Currency(), o.currency)
	}
	if len(o.items) >= MaxOrderItems {
		return newError(ErrItemLimitExceeded, "order cannot have more than %d items", MaxOrderItems)
	}
	for _, existing := range o.items {
		if existing.Sku().Equals(sku) {
			return newError(ErrDuplicateSku, "item with SKU %q already exists in the order", sku.Value())
		}
	}

	item := NewOrderItem(sku, unitPrice, quantity)
	o.items = append(o.items, item)
	o.record(NewItemAddedToOrder(o.id, item))
	return nil
}

// Total sums all line totals in the order's currency. An empty order
// returns zero without recording an event; a non-empty calculation
// records an OrderTotalCalculated event every time it runs, as an audit
// record.
func (o *Order) Total() Money {
	if len(o.items) == 0 {
		return Zero(o.currency)
	}

	total := Zero(o.currency)
	for _, item := range o.items {
		// invariant: every line total carries the order currency
		total = total.add(item.Total())
	}

	o.record(NewOrderTotalCalculated(o.id, total, len(o.items)))
	return total
}

// OrderTotal pairs a computed total with the order's currency.
type OrderTotal struct {
	Currency Currency
	Amount   Money
}

// TotalByCurrency wraps Total, inheriting its event behavior.
func (o *Order) TotalByCurrency() OrderTotal {
	return OrderTotal{Currency: o.currency, Amount: o.Total()}
}

// DomainEvents returns a snapshot of the pending event queue.
func (o *Order) DomainEvents() []Event {
	events := make([]Event, len(o.events))
	copy(events, o.events)
	return events
}

// ClearDomainEvents drains the pending event queue. Callers invoke it
// after the events have been published.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) record(event Event) {
	o.events = append(o.events, event)
}
