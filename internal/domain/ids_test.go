package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-ddd-example/order-service/internal/domain"
)

func TestNewOrderID(t *testing.T) {
	t.Run("accepts v4 uuid", func(t *testing.T) {
		raw := uuid.NewString()
		id, err := domain.NewOrderID(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, id.Value())
	})

	t.Run("rejects non-v4 uuid", func(t *testing.T) {
		// uuid v1
		_, err := domain.NewOrderID("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
		assert.True(t, domain.IsKind(err, domain.ErrInvalidIdentifier))
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, raw := range []string{"", "not-a-uuid", "12345"} {
			_, err := domain.NewOrderID(raw)
			assert.True(t, domain.IsKind(err, domain.ErrInvalidIdentifier), "input %q", raw)
		}
	})
}

func TestGenerateOrderID(t *testing.T) {
	id := domain.GenerateOrderID()

	// generated ids are valid inputs for NewOrderID
	parsed, err := domain.NewOrderID(id.Value())
	require.NoError(t, err)
	assert.True(t, id.Equals(parsed))
}

func TestNewCustomerID(t *testing.T) {
	raw := uuid.NewString()
	id, err := domain.NewCustomerID(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, id.Value())

	_, err = domain.NewCustomerID("garbage")
	assert.True(t, domain.IsKind(err, domain.ErrInvalidIdentifier))
}
