package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/workflow"

	"gorm.io/gorm"
)

// StepsForRoleQueryHandler reads the step catalog straight from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type StepsForRoleQueryHandler struct {
	db *gorm.DB
}

// NewStepsForRoleQueryHandler creates a handler for step catalog queries.
// Requires a GORM database connection for query execution.
func NewStepsForRoleQueryHandler(db *gorm.DB) StepsForRoleQueryHandler {
	return StepsForRoleQueryHandler{db: db}
}

// Handle executes the query for one role's step definitions.
// Returns the role's steps sorted by sort order; an unknown role name
// yields an empty slice.
func (h StepsForRoleQueryHandler) Handle(
	ctx context.Context,
	query StepsForRoleQuery,
) ([]StepsForRoleQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	steps := make([]StepsForRoleQueryResponse, 0)

	role, err := workflow.RoleFromString(query.RoleName())
	if err != nil {
		return steps, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			code,
			name,
			description,
			role,
			sort_order
		FROM step_definitions
		WHERE role = ?
		ORDER BY sort_order
	`, role.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var step StepsForRoleQueryResponse

		err = rows.Scan(
			&step.Code,
			&step.Name,
			&step.Description,
			&step.Role,
			&step.SortOrder,
		)
		if err != nil {
			return nil, err
		}

		steps = append(steps, step)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return steps, nil
}
