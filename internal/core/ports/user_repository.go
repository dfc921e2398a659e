package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/user"
	"fulfillment/internal/core/domain/model/workflow"
)

// UserRepository is the read-only account store contract.
type UserRepository interface {
	// Get returns the user by id, or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByUsername returns the user by login name, or errs.ErrObjectNotFound.
	GetByUsername(ctx context.Context, username string) (*user.User, error)

	// ListByRole returns every user holding the role.
	ListByRole(ctx context.Context, role workflow.Role) ([]*user.User, error)
}
