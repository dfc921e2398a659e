package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrIncompleteUsersQueryIsNotConstructed = errors.New(
		"IncompleteUsersQuery must be created via NewIncompleteUsersQuery constructor",
	)
)

// IncompleteUsersQuery finds users of one role who have not finished their
// checklist. A dispatcher uses this to see which drivers still have work
// outstanding.
type IncompleteUsersQuery struct {
	roleName string

	guard guard.ConstructorGuard
}

// NewIncompleteUsersQuery creates a query for a role's unfinished users.
func NewIncompleteUsersQuery(roleName string) IncompleteUsersQuery {
	return IncompleteUsersQuery{
		roleName: roleName,
		guard:    guard.NewConstructorGuard(),
	}
}

// RoleName returns the requested role name as given by the caller.
func (q IncompleteUsersQuery) RoleName() string {
	return q.roleName
}

// Validate ensures the query was created through the constructor.
// Returns ErrIncompleteUsersQueryIsNotConstructed if validation fails.
func (q IncompleteUsersQuery) Validate() error {
	return q.guard.Validate(ErrIncompleteUsersQueryIsNotConstructed)
}

// IncompleteUsersQueryResponse identifies one user below 100% completion.
type IncompleteUsersQueryResponse struct {
	UserID     kernel.UUID
	Percentage float64
}
