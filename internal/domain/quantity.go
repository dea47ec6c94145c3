package domain

const (
	minQuantity = 1
	maxQuantity = 10000
)

// Quantity is a positive item count capped at 10000.
type Quantity struct {
	value int
}

func NewQuantity(value int) (Quantity, error) {
	if value < minQuantity || value > maxQuantity {
		return Quantity{}, newError(ErrInvalidQuantity, "quantity must be between %d and %d, got %d", minQuantity, maxQuantity, value)
	}
	return Quantity{value: value}, nil
}

func (q Quantity) Value() int {
	return q.value
}

// Add returns the combined quantity, rejecting sums above the cap.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	return NewQuantity(q.value + other.value)
}

func (q Quantity) Equals(other Quantity) bool {
	return q.value == other.value
}
