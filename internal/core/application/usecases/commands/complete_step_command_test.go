package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/workflow"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompleteStepCommand(t *testing.T) {
	t.Run("valid_command", func(t *testing.T) {
		userID := kernel.NewUUID()
		orderID := kernel.NewUUID()

		cmd, err := commands.NewCompleteStepCommand(userID, orderID, workflow.StepDriverReceiveOrder, "picked up")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.UserID().IsEqual(userID))
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.Equal(t, workflow.StepDriverReceiveOrder, cmd.StepCode())
		assert.Equal(t, "picked up", cmd.Details())
	})

	t.Run("empty_details_allowed", func(t *testing.T) {
		_, err := commands.NewCompleteStepCommand(kernel.NewUUID(), kernel.NewUUID(), workflow.StepDriverDelivered, "")
		require.NoError(t, err)
	})

	t.Run("invalid_user_id", func(t *testing.T) {
		_, err := commands.NewCompleteStepCommand(kernel.UUID{}, kernel.NewUUID(), "X", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("empty_step_code", func(t *testing.T) {
		_, err := commands.NewCompleteStepCommand(kernel.NewUUID(), kernel.NewUUID(), "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCompleteStepCommand_Validate(t *testing.T) {
	t.Run("zero_value_is_rejected", func(t *testing.T) {
		var cmd commands.CompleteStepCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCompleteStepCommandIsNotConstructed)
	})
}

func TestNewApplyWorkflowTransitionCommand(t *testing.T) {
	t.Run("valid_command", func(t *testing.T) {
		cmd, err := commands.NewApplyWorkflowTransitionCommand(
			kernel.NewUUID(), workflow.StepDriverReceiveOrder, kernel.NewUUID(), "picked up")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("invalid_actor_id", func(t *testing.T) {
		_, err := commands.NewApplyWorkflowTransitionCommand(kernel.NewUUID(), "X", kernel.UUID{}, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_is_rejected", func(t *testing.T) {
		var cmd commands.ApplyWorkflowTransitionCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrApplyWorkflowTransitionCommandIsNotConstructed)
	})
}
