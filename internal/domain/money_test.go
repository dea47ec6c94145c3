package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-ddd-example/order-service/internal/domain"
)

func mustCurrency(t *testing.T, code string) domain.Currency {
	t.Helper()
	c, err := domain.NewCurrency(code)
	require.NoError(t, err)
	return c
}

func mustMoney(t *testing.T, amount float64, code string) domain.Money {
	t.Helper()
	m, err := domain.NewMoney(amount, mustCurrency(t, code))
	require.NoError(t, err)
	return m
}

func TestNewMoney(t *testing.T) {
	usd := mustCurrency(t, "USD")

	t.Run("rounds to cents half away from zero", func(t *testing.T) {
		testCases := []struct {
			amount float64
			want   string
		}{
			{amount: 10.555, want: "10.56"},
			{amount: 2.675, want: "2.68"},
			{amount: 10, want: "10.00"},
			{amount: 0, want: "0.00"},
			{amount: 0.004, want: "0.00"},
		}
		for _, tc := range testCases {
			m, err := domain.NewMoney(tc.amount, usd)
			require.NoError(t, err)
			assert.Equal(t, tc.want, m.Decimal().StringFixed(2))
		}
	})

	t.Run("rejects invalid amounts", func(t *testing.T) {
		for _, amount := range []float64{-1, -0.01, math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := domain.NewMoney(amount, usd)
			assert.True(t, domain.IsKind(err, domain.ErrInvalidAmount), "amount %v", amount)
		}
	})
}

func TestNewMoneyFromString(t *testing.T) {
	usd := mustCurrency(t, "USD")

	m, err := domain.NewMoneyFromString("999.99", usd)
	require.NoError(t, err)
	assert.Equal(t, "999.99", m.Decimal().StringFixed(2))

	_, err = domain.NewMoneyFromString("not-a-number", usd)
	assert.True(t, domain.IsKind(err, domain.ErrInvalidAmount))

	_, err = domain.NewMoneyFromString("-5", usd)
	assert.True(t, domain.IsKind(err, domain.ErrInvalidAmount))
}

func TestMoney_AddSubtract(t *testing.T) {
	t.Run("add and subtract are inverses", func(t *testing.T) {
		a := mustMoney(t, 10.10, "USD")
		b := mustMoney(t, 3.33, "USD")

		sum, err := a.Add(b)
		require.NoError(t, err)
		back, err := sum.Subtract(b)
		require.NoError(t, err)
		assert.True(t, back.Equals(a))
	})

	t.Run("currency mismatch", func(t *testing.T) {
		usd := mustMoney(t, 1, "USD")
		eur := mustMoney(t, 1, "EUR")

		_, err := usd.Add(eur)
		assert.True(t, domain.IsKind(err, domain.ErrCurrencyMismatch))
		_, err = usd.Subtract(eur)
		assert.True(t, domain.IsKind(err, domain.ErrCurrencyMismatch))
	})

	t.Run("negative result rejected", func(t *testing.T) {
		a := mustMoney(t, 5, "USD")
		b := mustMoney(t, 10, "USD")

		_, err := a.Subtract(b)
		assert.True(t, domain.IsKind(err, domain.ErrNegativeResult))
	})
}

func TestMoney_Multiply(t *testing.T) {
	m := mustMoney(t, 999.99, "USD")

	doubled, err := m.Multiply(2)
	require.NoError(t, err)
	assert.Equal(t, "1999.98", doubled.Decimal().StringFixed(2))

	third, err := m.Multiply(0.333)
	require.NoError(t, err)
	assert.Equal(t, "333.00", third.Decimal().StringFixed(2))

	for _, factor := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := m.Multiply(factor)
		assert.True(t, domain.IsKind(err, domain.ErrInvalidFactor), "factor %v", factor)
	}
}

func TestMoney_Comparisons(t *testing.T) {
	small := mustMoney(t, 1, "USD")
	big := mustMoney(t, 2, "USD")
	eur := mustMoney(t, 1, "EUR")

	greater, err := big.GreaterThan(small)
	require.NoError(t, err)
	assert.True(t, greater)

	less, err := small.LessThan(big)
	require.NoError(t, err)
	assert.True(t, less)

	_, err = small.GreaterThan(eur)
	assert.True(t, domain.IsKind(err, domain.ErrCurrencyMismatch))
	_, err = small.LessThan(eur)
	assert.True(t, domain.IsKind(err, domain.ErrCurrencyMismatch))
}

func TestMoney_ZeroAndEquals(t *testing.T) {
	usd := mustCurrency(t, "USD")

	zero := domain.Zero(usd)
	assert.True(t, zero.IsZero())

	explicit, err := domain.NewMoney(0, usd)
	require.NoError(t, err)
	assert.True(t, zero.Equals(explicit))

	assert.False(t, zero.Equals(domain.Zero(mustCurrency(t, "EUR"))))
	assert.False(t, zero.Equals(mustMoney(t, 1, "USD")))
}
