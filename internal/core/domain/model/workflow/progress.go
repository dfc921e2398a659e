package workflow

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrProgressRecordIsNotConstructed is returned when a ProgressRecord was not
// created through NewProgressRecord or RestoreProgressRecord.
var ErrProgressRecordIsNotConstructed = errors.New("ProgressRecord must be created via NewProgressRecord constructor")

// ProgressRecord is durable evidence that a step was completed for an order,
// attributed to exactly one user. It is the aggregate root of the progress store.
//
// Invariant: at most one record exists per (order, step) pair, regardless of
// which user performed the completion. A later completion overwrites actor,
// timestamp, and details of the earlier one; no history is retained. The
// pair uniqueness is enforced by the store, the overwrite semantics live here.
type ProgressRecord struct {
	id          kernel.UUID
	orderID     kernel.UUID
	stepCode    string
	userID      kernel.UUID
	completed   bool
	completedAt time.Time
	details     string

	isConstructed bool
}

// NewProgressRecord records the first completion of (orderID, stepCode).
func NewProgressRecord(orderID kernel.UUID, stepCode string, userID kernel.UUID, details string, at time.Time) (*ProgressRecord, error) {
	if err := errors.Join(orderID.Validate(), userID.Validate()); err != nil {
		return nil, err
	}
	if stepCode == "" {
		return nil, errs.NewValueIsRequiredError("stepCode")
	}
	if at.IsZero() {
		return nil, errs.NewValueIsRequiredError("completedAt")
	}

	return &ProgressRecord{
		id:            kernel.NewUUID(),
		orderID:       orderID,
		stepCode:      stepCode,
		userID:        userID,
		completed:     true,
		completedAt:   at,
		details:       details,
		isConstructed: true,
	}, nil
}

// RestoreProgressRecord reconstructs a record from persistence.
func RestoreProgressRecord(id, orderID kernel.UUID, stepCode string, userID kernel.UUID, completed bool, completedAt time.Time, details string) (*ProgressRecord, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), userID.Validate()); err != nil {
		return nil, err
	}
	if stepCode == "" {
		return nil, errs.NewValueIsRequiredError("stepCode")
	}

	return &ProgressRecord{
		id:            id,
		orderID:       orderID,
		stepCode:      stepCode,
		userID:        userID,
		completed:     completed,
		completedAt:   completedAt,
		details:       details,
		isConstructed: true,
	}, nil
}

// Validate ensures the record was built through a constructor.
func (p *ProgressRecord) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProgressRecordIsNotConstructed
	}
	return nil
}

// Overwrite reattributes the completion to a new actor. Last writer wins:
// user, timestamp, and details are replaced in place, the (order, step)
// identity is untouched.
func (p *ProgressRecord) Overwrite(userID kernel.UUID, details string, at time.Time) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("completedAt")
	}

	p.userID = userID
	p.details = details
	p.completedAt = at
	p.completed = true
	return nil
}

// ID returns the record identifier.
func (p *ProgressRecord) ID() kernel.UUID {
	return p.id
}

// OrderID returns the order the completion belongs to.
func (p *ProgressRecord) OrderID() kernel.UUID {
	return p.orderID
}

// StepCode returns the completed step's code.
func (p *ProgressRecord) StepCode() string {
	return p.stepCode
}

// UserID returns the actor attributed with the completion.
func (p *ProgressRecord) UserID() kernel.UUID {
	return p.userID
}

// Completed reports whether the step is completed.
func (p *ProgressRecord) Completed() bool {
	return p.completed
}

// CompletedAt returns the completion timestamp.
func (p *ProgressRecord) CompletedAt() time.Time {
	return p.completedAt
}

// Details returns the free-text completion detail.
func (p *ProgressRecord) Details() string {
	return p.details
}
