package domain

import "strings"

var supportedCurrencies = map[string]struct{}{
	"USD": {},
	"EUR": {},
	"COP": {},
	"GBP": {},
	"JPY": {},
}

// Currency is a value object over the fixed set of supported ISO codes.
type Currency struct {
	code string
}

func NewCurrency(code string) (Currency, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return Currency{}, newError(ErrInvalidCurrency, "currency code is required")
	}
	if len(normalized) != 3 {
		return Currency{}, newError(ErrInvalidCurrency, "currency code must be exactly 3 characters, got %q", normalized)
	}
	if _, ok := supportedCurrencies[normalized]; !ok {
		return Currency{}, newError(ErrInvalidCurrency, "unsupported currency code %q", normalized)
	}
	return Currency{code: normalized}, nil
}

func (c Currency) Code() string {
	return c.code
}

func (c Currency) String() string {
	return c.code
}

func (c Currency) Equals(other Currency) bool {
	return c.code == other.code
}
