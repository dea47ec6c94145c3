package domain

import (
	"strings"

	"github.com/google/uuid"
)

// OrderID identifies an order aggregate. Only syntactically valid
// version 4 UUIDs are accepted; the value is never parsed beyond that.
type OrderID struct {
	value string
}

func NewOrderID(value string) (OrderID, error) {
	parsed, err := parseUUIDv4("order id", value)
	if err != nil {
		return OrderID{}, err
	}
	return OrderID{value: parsed}, nil
}

func GenerateOrderID() OrderID {
	return OrderID{value: uuid.NewString()}
}

func (id OrderID) Value() string {
	return id.value
}

func (id OrderID) String() string {
	return id.value
}

func (id OrderID) Equals(other OrderID) bool {
	return id.value == other.value
}

// CustomerID identifies the customer an order belongs to.
type CustomerID struct {
	value string
}

func NewCustomerID(value string) (CustomerID, error) {
	parsed, err := parseUUIDv4("customer id", value)
	if err != nil {
		return CustomerID{}, err
	}
	return CustomerID{value: parsed}, nil
}

func GenerateCustomerID() CustomerID {
	return CustomerID{value: uuid.NewString()}
}

func (id CustomerID) Value() string {
	return id.value
}

func (id CustomerID) String() string {
	return id.value
}

func (id CustomerID) Equals(other CustomerID) bool {
	return id.value == other.value
}

func parseUUIDv4(field, value string) (string, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return "", newError(ErrInvalidIdentifier, "%s must be a valid UUID, got %q", field, value)
	}
	if parsed.Version() != 4 {
		return "", newError(ErrInvalidIdentifier, "%s must be a version 4 UUID, got %q", field, value)
	}
	return parsed.String(), nil
}
