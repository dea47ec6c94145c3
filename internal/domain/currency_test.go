package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-ddd-example/order-service/internal/domain"
)

func TestNewCurrency(t *testing.T) {
	t.Run("supported codes round-trip", func(t *testing.T) {
		for _, code := range []string{"USD", "EUR", "COP", "GBP", "JPY"} {
			c, err := domain.NewCurrency(code)
			require.NoError(t, err)
			assert.Equal(t, code, c.Code())
		}
	})

	t.Run("normalizes case and whitespace", func(t *testing.T) {
		c, err := domain.NewCurrency("  usd ")
		require.NoError(t, err)
		assert.Equal(t, "USD", c.Code())
	})

	testCases := []struct {
		name string
		code string
	}{
		{name: "empty", code: ""},
		{name: "whitespace only", code: "   "},
		{name: "too short", code: "US"},
		{name: "too long", code: "USDT"},
		{name: "unsupported", code: "CHF"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := domain.NewCurrency(tc.code)
			assert.True(t, domain.IsKind(err, domain.ErrInvalidCurrency))
		})
	}
}

func TestCurrency_Equals(t *testing.T) {
	usd1, err := domain.NewCurrency("USD")
	require.NoError(t, err)
	usd2, err := domain.NewCurrency("usd")
	require.NoError(t, err)
	eur, err := domain.NewCurrency("EUR")
	require.NoError(t, err)

	assert.True(t, usd1.Equals(usd2))
	assert.False(t, usd1.Equals(eur))
}
