package order_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("starts_pending", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now())

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("requires_valid_ids", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, kernel.NewUUID(), time.Now())
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), kernel.UUID{}, time.Now())
		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_stored_status", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), order.InTransit, time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.InTransit, o.Status())
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), order.Unknown, time.Now())
		require.Error(t, err)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("walks_the_lifecycle", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now())
		require.NoError(t, err)

		for _, next := range []order.Status{order.Processing, order.Scheduled, order.InTransit, order.Delivered} {
			require.NoError(t, o.ChangeStatus(next))
			assert.Equal(t, next, o.Status())
		}
	})

	t.Run("rejects_invalid_transition_without_mutating", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now())
		require.NoError(t, err)

		require.Error(t, o.ChangeStatus(order.Delivered))
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_Validate(t *testing.T) {
	var o *order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
}
