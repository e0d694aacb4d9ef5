package kernel_test

import (
	"strings"
	"testing"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderID(t *testing.T) {
	t.Run("has_expected_shape", func(t *testing.T) {
		id := kernel.NewOrderID()

		require.NoError(t, id.Validate())
		assert.True(t, strings.HasPrefix(id.String(), "ORD-"))
		assert.Len(t, id.String(), len("ORD-")+8)
		assert.Equal(t, strings.ToUpper(id.String()), id.String())
	})

	t.Run("generates_unique_values", func(t *testing.T) {
		seen := make(map[string]struct{})
		for range 1000 {
			id := kernel.NewOrderID()
			_, exists := seen[id.String()]
			require.False(t, exists, "duplicate order id generated: %s", id)
			seen[id.String()] = struct{}{}
		}
	})
}

func TestOrderIDFromString(t *testing.T) {
	t.Run("valid_value_round_trips", func(t *testing.T) {
		id, err := kernel.OrderIDFromString("ORD-1A2B3C4D")

		require.NoError(t, err)
		assert.Equal(t, "ORD-1A2B3C4D", id.String())
		require.NoError(t, id.Validate())
	})

	t.Run("empty_value_is_rejected", func(t *testing.T) {
		_, err := kernel.OrderIDFromString("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrderID_IsEqual(t *testing.T) {
	first, err := kernel.OrderIDFromString("ORD-1A2B3C4D")
	require.NoError(t, err)
	second, err := kernel.OrderIDFromString("ORD-1A2B3C4D")
	require.NoError(t, err)

	assert.True(t, first.IsEqual(second))
	assert.False(t, first.IsEqual(kernel.NewOrderID()))
}

func TestOrderID_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var id kernel.OrderID

		err := id.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrOrderIDIsNotConstructed, err)
	})

	t.Run("constructed_value_is_valid", func(t *testing.T) {
		require.NoError(t, kernel.NewOrderID().Validate())
	})
}
