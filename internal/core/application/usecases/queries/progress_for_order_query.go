package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrProgressForOrderQueryIsNotConstructed = errors.New(
		"ProgressForOrderQuery must be created via NewProgressForOrderQuery constructor",
	)
)

// ProgressForOrderQuery retrieves a user's checklist scoped to a single
// order: only completions recorded against that order count, and derived
// labels are resolved against that order's state.
type ProgressForOrderQuery struct {
	orderID kernel.UUID
	userID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewProgressForOrderQuery creates an order-scoped progress query.
// Both identifiers must be valid.
func NewProgressForOrderQuery(orderID kernel.UUID, userID kernel.UUID) (ProgressForOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return ProgressForOrderQuery{}, err
	}
	if err := userID.Validate(); err != nil {
		return ProgressForOrderQuery{}, err
	}

	return ProgressForOrderQuery{
		orderID: orderID,
		userID:  userID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the order the checklist is scoped to.
func (q ProgressForOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// UserID returns the user whose checklist is requested.
func (q ProgressForOrderQuery) UserID() kernel.UUID {
	return q.userID
}

// Validate ensures the query was created through the constructor.
// Returns ErrProgressForOrderQueryIsNotConstructed if validation fails.
func (q ProgressForOrderQuery) Validate() error {
	return q.guard.Validate(ErrProgressForOrderQueryIsNotConstructed)
}
