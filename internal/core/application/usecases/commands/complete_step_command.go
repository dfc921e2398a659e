package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCompleteStepCommandIsNotConstructed = errors.New(
	"CompleteStepCommand must be created via NewCompleteStepCommand constructor",
)

// CompleteStepCommand records that a user completed a workflow step for an
// order. Completion is idempotent per (order, step): a repeated completion
// overwrites actor, timestamp, and details instead of creating a second record.
type CompleteStepCommand struct {
	userID   kernel.UUID
	orderID  kernel.UUID
	stepCode string
	details  string

	guard guard.ConstructorGuard
}

// NewCompleteStepCommand creates a validated command.
func NewCompleteStepCommand(userID, orderID kernel.UUID, stepCode, details string) (CompleteStepCommand, error) {
	if err := errors.Join(userID.Validate(), orderID.Validate()); err != nil {
		return CompleteStepCommand{}, err
	}
	if stepCode == "" {
		return CompleteStepCommand{}, errs.NewValueIsRequiredError("stepCode")
	}

	return CompleteStepCommand{
		userID:   userID,
		orderID:  orderID,
		stepCode: stepCode,
		details:  details,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteStepCommand) Validate() error {
	return c.guard.Validate(ErrCompleteStepCommandIsNotConstructed)
}

// UserID returns the completing actor's identifier.
func (c CompleteStepCommand) UserID() kernel.UUID {
	return c.userID
}

// OrderID returns the target order's identifier.
func (c CompleteStepCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StepCode returns the step being completed.
func (c CompleteStepCommand) StepCode() string {
	return c.stepCode
}

// Details returns the free-text completion detail.
func (c CompleteStepCommand) Details() string {
	return c.details
}
