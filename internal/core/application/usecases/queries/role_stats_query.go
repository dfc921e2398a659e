package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrRoleStatsQueryIsNotConstructed = errors.New(
		"RoleStatsQuery must be created via NewRoleStatsQuery constructor",
	)
)

// RoleStatsQuery aggregates checklist completion across every user of a
// role, for dashboards and dispatcher reporting.
type RoleStatsQuery struct {
	roleName string

	guard guard.ConstructorGuard
}

// NewRoleStatsQuery creates a query for one role's aggregate progress.
func NewRoleStatsQuery(roleName string) RoleStatsQuery {
	return RoleStatsQuery{
		roleName: roleName,
		guard:    guard.NewConstructorGuard(),
	}
}

// RoleName returns the requested role name as given by the caller.
func (q RoleStatsQuery) RoleName() string {
	return q.roleName
}

// Validate ensures the query was created through the constructor.
// Returns ErrRoleStatsQueryIsNotConstructed if validation fails.
func (q RoleStatsQuery) Validate() error {
	return q.guard.Validate(ErrRoleStatsQueryIsNotConstructed)
}

// RoleStatsQueryResponse carries completion statistics for one role.
// AverageProgress and CompletionRate are on a 0-100 scale and are 0 when
// the role has no users.
type RoleStatsQueryResponse struct {
	Role            string
	TotalUsers      int
	CompletedUsers  int
	AverageProgress float64
	CompletionRate  float64
}
