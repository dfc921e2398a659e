package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// ApplyWorkflowTransitionCommandHandler executes a workflow transition as one
// transaction: the completion record and the implied order status change
// commit together or not at all.
//
// When the transition table names a status that is missing from the configured
// catalog, the completion is still recorded and the order status left
// untouched. That partial-success behavior is deliberate and observable;
// strict deployments close it off at startup by validating the catalog and
// refusing to boot with gaps (see the composition root).
type ApplyWorkflowTransitionCommandHandler struct {
	uowFactory  TransitionUoWFactory
	transitions services.TransitionTable
	logger      *slog.Logger
	now         func() time.Time
}

// NewApplyWorkflowTransitionCommandHandler creates a handler for workflow transitions.
func NewApplyWorkflowTransitionCommandHandler(
	uowFactory TransitionUoWFactory,
	transitions services.TransitionTable,
	logger *slog.Logger,
) ApplyWorkflowTransitionCommandHandler {
	return ApplyWorkflowTransitionCommandHandler{
		uowFactory:  uowFactory,
		transitions: transitions,
		logger:      logger.With("component", "workflow_transition"),
		now:         time.Now,
	}
}

// Handle processes the transition command.
func (h ApplyWorkflowTransitionCommandHandler) Handle(ctx context.Context, command ApplyWorkflowTransitionCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	err := h.handle(ctx, command)
	h.logAttempt(ctx, command, err)
	return err
}

func (h ApplyWorkflowTransitionCommandHandler) handle(ctx context.Context, command ApplyWorkflowTransitionCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.UserRepository().Get(ctx, command.ActorID()); err != nil {
		return err
	}

	aggregate, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if _, err = uow.StepCatalog().GetByCode(ctx, command.StepCode()); err != nil {
		return err
	}

	if target, ok := h.transitions.TargetFor(command.StepCode()); ok {
		if err = h.applyStatus(ctx, uow, aggregate, command, target); err != nil {
			return err
		}
	}

	err = recordCompletion(ctx, uow.ProgressRepository(),
		command.OrderID(), command.StepCode(), command.ActorID(), command.Details(), h.now())
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// applyStatus resolves the implied status through the catalog and moves the
// order there. A missing catalog row is logged and skipped; an invalid
// lifecycle transition aborts the whole operation.
func (h ApplyWorkflowTransitionCommandHandler) applyStatus(
	ctx context.Context,
	uow TransitionUoW,
	aggregate *order.Order,
	command ApplyWorkflowTransitionCommand,
	target services.TransitionTarget,
) error {
	status, err := uow.StatusCatalog().GetByCategoryAndName(ctx, target.Category, target.StatusName)
	if errors.Is(err, errs.ErrObjectNotFound) {
		h.logger.WarnContext(ctx, "transition status missing from catalog, recording completion only",
			"order_id", command.OrderID().String(),
			"step_code", command.StepCode(),
			"category", target.Category.String(),
			"status_name", target.StatusName,
		)
		return nil
	}
	if err != nil {
		return err
	}

	targetState, err := order.StatusFromName(status.Name())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(targetState); err != nil {
		return err
	}

	return uow.OrderRepository().UpdateStatus(ctx, aggregate, status.ID())
}

func (h ApplyWorkflowTransitionCommandHandler) logAttempt(ctx context.Context, command ApplyWorkflowTransitionCommand, err error) {
	attrs := []any{
		"actor_id", command.ActorID().String(),
		"order_id", command.OrderID().String(),
		"step_code", command.StepCode(),
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "workflow transition rejected", append(attrs, "error", err)...)
		return
	}
	h.logger.InfoContext(ctx, "workflow transition applied", attrs...)
}
