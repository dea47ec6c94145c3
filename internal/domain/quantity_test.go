package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-ddd-example/order-service/internal/domain"
)

func TestNewQuantity(t *testing.T) {
	for _, value := range []int{1, 100, 10000} {
		q, err := domain.NewQuantity(value)
		require.NoError(t, err)
		assert.Equal(t, value, q.Value())
	}

	for _, value := range []int{0, -1, 10001} {
		_, err := domain.NewQuantity(value)
		assert.True(t, domain.IsKind(err, domain.ErrInvalidQuantity), "value %d", value)
	}
}

func TestQuantity_Add(t *testing.T) {
	a, err := domain.NewQuantity(9000)
	require.NoError(t, err)
	b, err := domain.NewQuantity(1000)
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, 10000, sum.Value())

	// one more crosses the cap
	one, err := domain.NewQuantity(1)
	require.NoError(t, err)
	_, err = sum.Add(one)
	assert.True(t, domain.IsKind(err, domain.ErrInvalidQuantity))
}
