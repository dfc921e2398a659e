package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/workflow"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// CompleteStepCommandHandler is the completion recorder: the only component
// that writes to the progress store. Preconditions fail closed: if the user,
// order, or step code does not resolve, nothing is written. The write itself
// is an atomic upsert keyed on (order, step), so concurrent completions from
// different actors collapse into one record with last-writer-wins attribution.
//
// Every attempt, successful or not, is logged with user, order, step, and
// outcome to support postmortem reconciliation of lost or duplicated updates.
type CompleteStepCommandHandler struct {
	uowFactory ProgressUoWFactory
	logger     *slog.Logger
	now        func() time.Time
}

// NewCompleteStepCommandHandler creates a handler for step completions.
func NewCompleteStepCommandHandler(uowFactory ProgressUoWFactory, logger *slog.Logger) CompleteStepCommandHandler {
	return CompleteStepCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "complete_step"),
		now:        time.Now,
	}
}

// Handle processes the completion command.
func (h CompleteStepCommandHandler) Handle(ctx context.Context, command CompleteStepCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	err := h.handle(ctx, command)
	h.logAttempt(ctx, command, err)
	return err
}

func (h CompleteStepCommandHandler) handle(ctx context.Context, command CompleteStepCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.UserRepository().Get(ctx, command.UserID()); err != nil {
		return err
	}
	if _, err := uow.OrderRepository().Get(ctx, command.OrderID()); err != nil {
		return err
	}
	if _, err := uow.StepCatalog().GetByCode(ctx, command.StepCode()); err != nil {
		return err
	}

	err := recordCompletion(ctx, uow.ProgressRepository(),
		command.OrderID(), command.StepCode(), command.UserID(), command.Details(), h.now())
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h CompleteStepCommandHandler) logAttempt(ctx context.Context, command CompleteStepCommand, err error) {
	attrs := []any{
		"user_id", command.UserID().String(),
		"order_id", command.OrderID().String(),
		"step_code", command.StepCode(),
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "step completion rejected", append(attrs, "error", err)...)
		return
	}
	h.logger.InfoContext(ctx, "step completed", attrs...)
}

// recordCompletion applies last-writer-wins semantics against the progress
// store. The final Upsert is atomic on the (order, step) unique key, so the
// read-then-write here can race without ever producing a second record.
func recordCompletion(
	ctx context.Context,
	repo ports.ProgressRepository,
	orderID kernel.UUID,
	stepCode string,
	userID kernel.UUID,
	details string,
	at time.Time,
) error {
	existing, err := repo.GetByOrderAndStep(ctx, orderID, stepCode)
	switch {
	case err == nil:
		if overwriteErr := existing.Overwrite(userID, details, at); overwriteErr != nil {
			return overwriteErr
		}
		return repo.Upsert(ctx, existing)

	case errors.Is(err, errs.ErrObjectNotFound):
		record, newErr := workflow.NewProgressRecord(orderID, stepCode, userID, details, at)
		if newErr != nil {
			return newErr
		}
		return repo.Upsert(ctx, record)

	default:
		return err
	}
}
