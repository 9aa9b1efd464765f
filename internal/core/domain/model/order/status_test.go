package order_test

import (
	"testing"

	"frontdash/internal/core/domain/model/order"
	"frontdash/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("accepts_defined_statuses", func(t *testing.T) {
		for _, s := range []order.Status{
			order.StatusPending,
			order.StatusOutForDelivery,
			order.StatusDelivered,
			order.StatusNotDelivered,
		} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("rejects_zero_value_and_unknown_strings", func(t *testing.T) {
		var zero order.Status
		require.ErrorIs(t, zero.Validate(), errs.ErrValueIsInvalid)
		require.ErrorIs(t, order.Status("IN_TRANSIT").Validate(), errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.StatusPending.IsTerminal())
	assert.False(t, order.StatusOutForDelivery.IsTerminal())
	assert.True(t, order.StatusDelivered.IsTerminal())
	assert.True(t, order.StatusNotDelivered.IsTerminal())
}

func TestStatus_Assign(t *testing.T) {
	t.Run("pending_becomes_out_for_delivery", func(t *testing.T) {
		next, err := order.StatusPending.Assign()

		require.NoError(t, err)
		assert.Equal(t, order.StatusOutForDelivery, next)
	})

	t.Run("non_pending_cannot_be_assigned", func(t *testing.T) {
		for _, s := range []order.Status{
			order.StatusOutForDelivery,
			order.StatusDelivered,
			order.StatusNotDelivered,
		} {
			_, err := s.Assign()

			require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		}
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("out_for_delivery_reaches_terminal_outcomes", func(t *testing.T) {
		for _, outcome := range []order.Status{
			order.StatusDelivered,
			order.StatusNotDelivered,
		} {
			next, err := order.StatusOutForDelivery.Complete(outcome)

			require.NoError(t, err)
			assert.Equal(t, outcome, next)
		}
	})

	t.Run("rejects_non_terminal_outcome", func(t *testing.T) {
		_, err := order.StatusOutForDelivery.Complete(order.StatusPending)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("pending_cannot_be_completed", func(t *testing.T) {
		_, err := order.StatusPending.Complete(order.StatusDelivered)

		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})

	t.Run("terminal_statuses_cannot_be_completed_again", func(t *testing.T) {
		_, err := order.StatusDelivered.Complete(order.StatusNotDelivered)

		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})
}

func TestStatus_ValidateCanHaveDriver(t *testing.T) {
	t.Run("pending_forbids_driver", func(t *testing.T) {
		require.NoError(t, order.StatusPending.ValidateCanHaveDriver(false))
		require.Error(t, order.StatusPending.ValidateCanHaveDriver(true))
	})

	t.Run("out_for_delivery_requires_driver", func(t *testing.T) {
		require.NoError(t, order.StatusOutForDelivery.ValidateCanHaveDriver(true))
		require.Error(t, order.StatusOutForDelivery.ValidateCanHaveDriver(false))
	})

	t.Run("terminal_statuses_accept_either", func(t *testing.T) {
		for _, s := range []order.Status{
			order.StatusDelivered,
			order.StatusNotDelivered,
		} {
			require.NoError(t, s.ValidateCanHaveDriver(true))
			require.NoError(t, s.ValidateCanHaveDriver(false))
		}
	})
}
