// Package ports defines the contracts the workflow core requires of its
// collaborators. Adapters implement them; use cases depend on them.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/workflow"
)

// ProgressRepository is the durable progress store. At most one record exists
// per (order, step) pair; Upsert must enforce that atomically, so two
// concurrent completions for the same pair can never both insert.
type ProgressRepository interface {
	// Upsert inserts the record. When a record for the same (order, step)
	// pair already exists, regardless of owner, it overwrites that record's
	// user, completion timestamp, and details in a single atomic store
	// operation.
	Upsert(ctx context.Context, record *workflow.ProgressRecord) error

	// GetByOrderAndStep returns the record for the pair, ignoring which user
	// owns it. Returns errs.ErrObjectNotFound when absent.
	GetByOrderAndStep(ctx context.Context, orderID kernel.UUID, stepCode string) (*workflow.ProgressRecord, error)

	// ListByOrder returns every record for the order across all roles.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*workflow.ProgressRecord, error)

	// ListByUser returns every record attributed to the user.
	ListByUser(ctx context.Context, userID kernel.UUID) ([]*workflow.ProgressRecord, error)
}
