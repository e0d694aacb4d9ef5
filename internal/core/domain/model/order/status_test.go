package order_test

import (
	"testing"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid_statuses", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Pending, order.Processing, order.Completed, order.Cancelled,
		} {
			require.NoError(t, status.Validate(), "status %s should be valid", status)
		}
	})

	t.Run("invalid_statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(42), order.Status(-1)} {
			err := status.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "Processing", order.Processing.String())
	assert.Equal(t, "Completed", order.Completed.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("known_values", func(t *testing.T) {
		cases := map[string]order.Status{
			"Pending":    order.Pending,
			"Processing": order.Processing,
			"Completed":  order.Completed,
			"Cancelled":  order.Cancelled,
		}
		for value, expected := range cases {
			status, ok := order.StatusFromString(value)
			require.True(t, ok, "expected %q to parse", value)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("matching_is_case_sensitive", func(t *testing.T) {
		_, ok := order.StatusFromString("pending")
		assert.False(t, ok)

		_, ok = order.StatusFromString("PENDING")
		assert.False(t, ok)
	})

	t.Run("unknown_values_do_not_parse", func(t *testing.T) {
		for _, value := range []string{"", "Archived", "Unknown"} {
			status, ok := order.StatusFromString(value)
			assert.False(t, ok, "expected %q not to parse", value)
			assert.Equal(t, order.Unknown, status)
		}
	})
}

func TestStatus_RoundTrip(t *testing.T) {
	for _, status := range []order.Status{
		order.Pending, order.Processing, order.Completed, order.Cancelled,
	} {
		parsed, ok := order.StatusFromString(status.String())
		require.True(t, ok)
		assert.Equal(t, status, parsed)
	}
}
