package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrStepsForRoleQueryIsNotConstructed = errors.New(
		"StepsForRoleQuery must be created via NewStepsForRoleQuery constructor",
	)
)

// StepsForRoleQuery retrieves the ordered step catalog for one role.
// The role name is matched case-insensitively; a name that maps to no
// known role yields an empty catalog rather than an error, so callers
// can render a blank checklist for unrecognized roles.
//
// Example:
//
//	query, err := NewStepsForRoleQuery("driver")
//	if err != nil {
//	    return err
//	}
//	handler := NewStepsForRoleQueryHandler(db)
//
//	steps, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get steps: %w", err)
//	}
//
//	for _, step := range steps {
//	    fmt.Printf("%d. %s (%s)\n", step.SortOrder, step.Name, step.Code)
//	}
type StepsForRoleQuery struct {
	roleName string

	guard guard.ConstructorGuard
}

// NewStepsForRoleQuery creates a query for a role's step catalog.
// The role name is kept verbatim; resolution happens in the handler.
func NewStepsForRoleQuery(roleName string) StepsForRoleQuery {
	return StepsForRoleQuery{
		roleName: roleName,
		guard:    guard.NewConstructorGuard(),
	}
}

// RoleName returns the requested role name as given by the caller.
func (q StepsForRoleQuery) RoleName() string {
	return q.roleName
}

// Validate ensures the query was created through the constructor.
// Returns ErrStepsForRoleQueryIsNotConstructed if validation fails.
func (q StepsForRoleQuery) Validate() error {
	return q.guard.Validate(ErrStepsForRoleQueryIsNotConstructed)
}

// StepsForRoleQueryResponse is one catalog entry in checklist order.
type StepsForRoleQueryResponse struct {
	Code        string
	Name        string
	Description string
	Role        string
	SortOrder   int
}
