package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/workflow"
	"fulfillment/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IncompleteUsersQueryHandler lists users of a role whose checklist is
// below 100%. A user whose checklist cannot be assembled is skipped so one
// broken account never hides the rest of the roster.
type IncompleteUsersQueryHandler struct {
	db        *gorm.DB
	assembler progressAssembler
}

// NewIncompleteUsersQueryHandler creates a handler for unfinished-user queries.
func NewIncompleteUsersQueryHandler(db *gorm.DB, resolver services.StateResolver) IncompleteUsersQueryHandler {
	return IncompleteUsersQueryHandler{
		db:        db,
		assembler: newProgressAssembler(db, resolver),
	}
}

// Handle executes the query. An unknown role name yields an empty slice.
func (h IncompleteUsersQueryHandler) Handle(
	ctx context.Context,
	query IncompleteUsersQuery,
) ([]IncompleteUsersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	incomplete := make([]IncompleteUsersQueryResponse, 0)

	role, err := workflow.RoleFromString(query.RoleName())
	if err != nil {
		return incomplete, nil
	}

	userIDs, err := listUserIDsByRole(ctx, h.db, role)
	if err != nil {
		return nil, err
	}

	for _, userID := range userIDs {
		view, viewErr := h.assembler.forUser(ctx, userID, nil)
		if viewErr != nil {
			continue
		}
		if view.Percentage < 100 {
			incomplete = append(incomplete, IncompleteUsersQueryResponse{
				UserID:     userID,
				Percentage: view.Percentage,
			})
		}
	}

	return incomplete, nil
}

func listUserIDsByRole(ctx context.Context, db *gorm.DB, role workflow.Role) ([]kernel.UUID, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT id
		FROM users
		WHERE role = ?
		ORDER BY username
	`, role.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	userIDs := make([]kernel.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}

		userID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		userIDs = append(userIDs, userID)
	}

	return userIDs, rows.Err()
}
