package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/workflow"
)

// StepCatalog is the read-only accessor over the seeded step reference data.
// There is no write path in the request flow.
type StepCatalog interface {
	// ListByRole returns the role's steps in strictly ascending sort order.
	// Unknown roles yield an empty list, not an error.
	ListByRole(ctx context.Context, role workflow.Role) ([]workflow.StepDefinition, error)

	// GetByCode returns the step definition for the code, or
	// errs.ErrObjectNotFound when the code is absent from every catalog.
	GetByCode(ctx context.Context, code string) (workflow.StepDefinition, error)
}
