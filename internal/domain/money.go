package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of decimal places every amount is kept at.
// decimal.Round rounds half away from zero, so repeated arithmetic does
// not accumulate floating-point drift.
const moneyScale = 2

// Money is a non-negative amount in a single currency, stored with cent
// precision. All operations return new values.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

func NewMoney(amount float64, currency Currency) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, newError(ErrInvalidAmount, "amount must be a finite number")
	}
	if amount < 0 {
		return Money{}, newError(ErrInvalidAmount, "amount cannot be negative, got %v", amount)
	}
	return Money{amount: decimal.NewFromFloat(amount).Round(moneyScale), currency: currency}, nil
}

// NewMoneyFromString parses a decimal amount such as "999.99".
func NewMoneyFromString(amount string, currency Currency) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, newError(ErrInvalidAmount, "amount %q is not a valid decimal", amount)
	}
	if d.IsNegative() {
		return Money{}, newError(ErrInvalidAmount, "amount cannot be negative, got %s", amount)
	}
	return Money{amount: d.Round(moneyScale), currency: currency}, nil
}

func Zero(currency Currency) Money {
	return Money{amount: decimal.Zero, currency: currency}
}

func (m Money) Amount() float64 {
	return m.amount.InexactFloat64()
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Currency() Currency {
	return m.currency
}

func (m Money) Add(other Money) (Money, error) {
	if err := m.requireSameCurrency(other); err != nil {
		return Money{}, err
	}
	return m.add(other), nil
}

func (m Money) Subtract(other Money) (Money, error) {
	if err := m.requireSameCurrency(other); err != nil {
		return Money{}, err
	}
	result := m.amount.Sub(other.amount).Round(moneyScale)
	if result.IsNegative() {
		return Money{}, newError(ErrNegativeResult, "subtracting %s from %s would produce a negative amount", other, m)
	}
	return Money{amount: result, currency: m.currency}, nil
}

func (m Money) Multiply(factor float64) (Money, error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor < 0 {
		return Money{}, newError(ErrInvalidFactor, "factor must be a finite non-negative number, got %v", factor)
	}
	return Money{amount: m.amount.Mul(decimal.NewFromFloat(factor)).Round(moneyScale), currency: m.currency}, nil
}

func (m Money) GreaterThan(other Money) (bool, error) {
	if err := m.requireSameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.GreaterThan(other.amount), nil
}

func (m Money) LessThan(other Money) (bool, error) {
	if err := m.requireSameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.LessThan(other.amount), nil
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) Equals(other Money) bool {
	return m.currency.Equals(other.currency) && m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return m.amount.StringFixed(moneyScale) + " " + m.currency.code
}

// add skips the currency check; callers must guarantee both amounts
// carry the same currency.
func (m Money) add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount).Round(moneyScale), currency: m.currency}
}

// mulInt multiplies by a positive integer, used for line totals where
// the factor is an already validated quantity.
func (m Money) mulInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n))).Round(moneyScale), currency: m.currency}
}

func (m Money) requireSameCurrency(other Money) error {
	if !m.currency.Equals(other.currency) {
		return newError(ErrCurrencyMismatch, "currency mismatch: %s vs %s", m.currency, other.currency)
	}
	return nil
}
