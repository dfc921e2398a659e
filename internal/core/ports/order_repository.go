package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository is the order store contract the workflow engine consumes.
// Orders are owned elsewhere; the engine reads them and applies validated
// status transitions as part of workflow operations.
type OrderRepository interface {
	// Get returns the order by id, or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus persists the order's current status together with the
	// catalog row it was resolved from.
	UpdateStatus(ctx context.Context, aggregate *order.Order, statusID kernel.UUID) error

	// ListByCustomer returns the customer's orders, most recent first.
	ListByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)
}
