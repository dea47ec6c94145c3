package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-ddd-example/order-service/internal/domain"
)

func TestNewSku(t *testing.T) {
	t.Run("normalizes before storing", func(t *testing.T) {
		sku, err := domain.NewSku("  laptop-15 ")
		require.NoError(t, err)
		assert.Equal(t, "LAPTOP-15", sku.Value())
	})

	t.Run("accepts boundary lengths", func(t *testing.T) {
		for _, code := range []string{"ABC", strings.Repeat("A", 50)} {
			_, err := domain.NewSku(code)
			assert.NoError(t, err)
		}
	})

	testCases := []struct {
		name string
		code string
	}{
		{name: "empty", code: ""},
		{name: "whitespace only", code: "   "},
		{name: "too short", code: "AB"},
		{name: "too long", code: strings.Repeat("A", 51)},
		{name: "invalid characters", code: "SKU_01"},
		{name: "spaces inside", code: "SKU 01"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := domain.NewSku(tc.code)
			assert.True(t, domain.IsKind(err, domain.ErrInvalidSku))
		})
	}
}

func TestSku_Equals(t *testing.T) {
	a, err := domain.NewSku("laptop-15")
	require.NoError(t, err)
	b, err := domain.NewSku("LAPTOP-15")
	require.NoError(t, err)
	c, err := domain.NewSku("MOUSE-USB")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}
