package commands_test

import (
	"errors"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/workflow"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteStepCommandHandler_Handle_FirstCompletion(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCompleteStepCommand(userID, orderID, workflow.StepDriverReceiveOrder, "picked up")
	require.NoError(t, err)

	users := new(MockUserRepository)
	orders := new(MockOrderRepository)
	steps := new(MockStepCatalog)
	progress := new(MockProgressRepository)
	uow := new(MockTransitionUoW)

	users.On("Get", mock.Anything, userID).Return(testUser(workflow.RoleDriver), nil).Once()
	orders.On("Get", mock.Anything, orderID).Return(testOrder(order.Scheduled), nil).Once()
	steps.On("GetByCode", mock.Anything, workflow.StepDriverReceiveOrder).
		Return(testStep(workflow.RoleDriver, workflow.StepDriverReceiveOrder, 1), nil).Once()
	progress.On("GetByOrderAndStep", mock.Anything, orderID, workflow.StepDriverReceiveOrder).
		Return(nil, errs.NewObjectNotFoundError("progressRecord", orderID.String())).Once()

	var saved *workflow.ProgressRecord
	progress.On("Upsert", mock.Anything, mock.AnythingOfType("*workflow.ProgressRecord")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*workflow.ProgressRecord)
		}).Return(nil).Once()

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users).Once()
	uow.On("OrderRepository").Return(orders).Once()
	uow.On("StepCatalog").Return(steps).Once()
	uow.On("ProgressRepository").Return(progress).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockProgressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteStepCommandHandler(factory, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, saved)
	assert.True(t, saved.OrderID().IsEqual(orderID))
	assert.True(t, saved.UserID().IsEqual(userID))
	assert.True(t, saved.Completed())
	assert.Equal(t, "picked up", saved.Details())

	progress.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCompleteStepCommandHandler_Handle_SecondCompletionOverwrites(t *testing.T) {
	ctx := t.Context()
	firstActor := kernel.NewUUID()
	secondActor := kernel.NewUUID()
	orderID := kernel.NewUUID()

	existing, err := workflow.NewProgressRecord(orderID, workflow.StepDriverDelivered, firstActor, "left at door", time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewCompleteStepCommand(secondActor, orderID, workflow.StepDriverDelivered, "handed over")
	require.NoError(t, err)

	users := new(MockUserRepository)
	orders := new(MockOrderRepository)
	steps := new(MockStepCatalog)
	progress := new(MockProgressRepository)
	uow := new(MockTransitionUoW)

	users.On("Get", mock.Anything, secondActor).Return(testUser(workflow.RoleDriver), nil).Once()
	orders.On("Get", mock.Anything, orderID).Return(testOrder(order.InTransit), nil).Once()
	steps.On("GetByCode", mock.Anything, workflow.StepDriverDelivered).
		Return(testStep(workflow.RoleDriver, workflow.StepDriverDelivered, 3), nil).Once()
	progress.On("GetByOrderAndStep", mock.Anything, orderID, workflow.StepDriverDelivered).
		Return(existing, nil).Once()

	var saved *workflow.ProgressRecord
	progress.On("Upsert", mock.Anything, mock.AnythingOfType("*workflow.ProgressRecord")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*workflow.ProgressRecord)
		}).Return(nil).Once()

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users).Once()
	uow.On("OrderRepository").Return(orders).Once()
	uow.On("StepCatalog").Return(steps).Once()
	uow.On("ProgressRepository").Return(progress).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockProgressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteStepCommandHandler(factory, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	// Last writer wins: same record, reattributed to the second actor.
	require.NotNil(t, saved)
	assert.True(t, saved.ID().IsEqual(existing.ID()))
	assert.True(t, saved.UserID().IsEqual(secondActor))
	assert.Equal(t, "handed over", saved.Details())

	progress.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteStepCommandHandler_Handle_UnknownStepLeavesStoreUntouched(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCompleteStepCommand(kernel.NewUUID(), kernel.NewUUID(), "NOT_A_STEP", "")
	require.NoError(t, err)

	users := new(MockUserRepository)
	orders := new(MockOrderRepository)
	steps := new(MockStepCatalog)
	uow := new(MockTransitionUoW)

	users.On("Get", mock.Anything, cmd.UserID()).Return(testUser(workflow.RoleDriver), nil).Once()
	orders.On("Get", mock.Anything, cmd.OrderID()).Return(testOrder(order.Pending), nil).Once()
	steps.On("GetByCode", mock.Anything, "NOT_A_STEP").
		Return(workflow.StepDefinition{}, errs.NewObjectNotFoundError("stepCode", "NOT_A_STEP")).Once()

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users).Once()
	uow.On("OrderRepository").Return(orders).Once()
	uow.On("StepCatalog").Return(steps).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockProgressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteStepCommandHandler(factory, discardLogger())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "ProgressRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCompleteStepCommandHandler_Handle_UnknownUserRejected(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCompleteStepCommand(kernel.NewUUID(), kernel.NewUUID(), workflow.StepDriverDelivered, "")
	require.NoError(t, err)

	users := new(MockUserRepository)
	uow := new(MockTransitionUoW)

	users.On("Get", mock.Anything, cmd.UserID()).
		Return(nil, errs.NewObjectNotFoundError("userId", cmd.UserID().String())).Once()

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockProgressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteStepCommandHandler(factory, discardLogger())
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCompleteStepCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockProgressUoWFactory)
	h := commands.NewCompleteStepCommandHandler(factory, discardLogger())

	var cmd commands.CompleteStepCommand
	require.Error(t, h.Handle(t.Context(), cmd))
	factory.AssertNotCalled(t, "Create")
}

func TestCompleteStepCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCompleteStepCommand(kernel.NewUUID(), kernel.NewUUID(), workflow.StepDriverDelivered, "")
	require.NoError(t, err)

	uow := new(MockTransitionUoW)
	factory := new(MockProgressUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCompleteStepCommandHandler(factory, discardLogger())
	require.Error(t, h.Handle(ctx, cmd))
}
