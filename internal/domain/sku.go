package domain

import (
	"regexp"
	"strings"
)

var skuPattern = regexp.MustCompile(`^[A-Z0-9-]+$`)

const (
	minSkuLength = 3
	maxSkuLength = 50
)

// Sku is a normalized stock keeping unit: trimmed, upper-cased, 3-50
// characters from [A-Z0-9-].
type Sku struct {
	value string
}

func NewSku(code string) (Sku, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return Sku{}, newError(ErrInvalidSku, "sku is required")
	}
	if len(normalized) < minSkuLength || len(normalized) > maxSkuLength {
		return Sku{}, newError(ErrInvalidSku, "sku must be between %d and %d characters, got %q", minSkuLength, maxSkuLength, normalized)
	}
	if !skuPattern.MatchString(normalized) {
		return Sku{}, newError(ErrInvalidSku, "sku may only contain letters, digits and '-', got %q", normalized)
	}
	return Sku{value: normalized}, nil
}

func (s Sku) Value() string {
	return s.value
}

func (s Sku) String() string {
	return s.value
}

func (s Sku) Equals(other Sku) bool {
	return s.value == other.value
}
