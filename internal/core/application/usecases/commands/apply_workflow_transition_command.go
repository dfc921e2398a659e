package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrApplyWorkflowTransitionCommandIsNotConstructed = errors.New(
	"ApplyWorkflowTransitionCommand must be created via NewApplyWorkflowTransitionCommand constructor",
)

// ApplyWorkflowTransitionCommand completes a step and, when the transition
// table couples that step to an order status, applies the status change in
// the same transaction. This replaces the status-lookup logic that used to be
// duplicated across the accept/assign/receive/deliver call sites.
type ApplyWorkflowTransitionCommand struct {
	orderID  kernel.UUID
	stepCode string
	actorID  kernel.UUID
	details  string

	guard guard.ConstructorGuard
}

// NewApplyWorkflowTransitionCommand creates a validated command.
func NewApplyWorkflowTransitionCommand(orderID kernel.UUID, stepCode string, actorID kernel.UUID, details string) (ApplyWorkflowTransitionCommand, error) {
	if err := errors.Join(orderID.Validate(), actorID.Validate()); err != nil {
		return ApplyWorkflowTransitionCommand{}, err
	}
	if stepCode == "" {
		return ApplyWorkflowTransitionCommand{}, errs.NewValueIsRequiredError("stepCode")
	}

	return ApplyWorkflowTransitionCommand{
		orderID:  orderID,
		stepCode: stepCode,
		actorID:  actorID,
		details:  details,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyWorkflowTransitionCommand) Validate() error {
	return c.guard.Validate(ErrApplyWorkflowTransitionCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ApplyWorkflowTransitionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StepCode returns the step driving the transition.
func (c ApplyWorkflowTransitionCommand) StepCode() string {
	return c.stepCode
}

// ActorID returns the acting user's identifier.
func (c ApplyWorkflowTransitionCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Details returns the free-text completion detail.
func (c ApplyWorkflowTransitionCommand) Details() string {
	return c.details
}
