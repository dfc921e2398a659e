package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/workflow"
)

// StatusCatalog is the externally configured status reference data.
// Lookups by (category, name) drive workflow transitions; list calls feed the
// state resolver's per-category whitelists.
type StatusCatalog interface {
	// GetByCategoryAndName returns the status row, or errs.ErrObjectNotFound
	// when the name is not configured for the category.
	GetByCategoryAndName(ctx context.Context, category workflow.StatusCategory, name string) (workflow.Status, error)

	// Get returns the status row by id, or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (workflow.Status, error)

	// ListByCategory returns every status configured for the category.
	ListByCategory(ctx context.Context, category workflow.StatusCategory) ([]workflow.Status, error)
}
