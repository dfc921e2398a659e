package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/workflow"
	"fulfillment/internal/core/domain/services"

	"gorm.io/gorm"
)

// RoleStatsQueryHandler computes aggregate completion numbers for one role.
// Like the unfinished-user query it skips users whose checklist cannot be
// assembled; the remaining users form the statistical population.
type RoleStatsQueryHandler struct {
	db        *gorm.DB
	assembler progressAssembler
}

// NewRoleStatsQueryHandler creates a handler for role statistics queries.
func NewRoleStatsQueryHandler(db *gorm.DB, resolver services.StateResolver) RoleStatsQueryHandler {
	return RoleStatsQueryHandler{
		db:        db,
		assembler: newProgressAssembler(db, resolver),
	}
}

// Handle executes the query. An unknown role name yields zeroed statistics.
func (h RoleStatsQueryHandler) Handle(
	ctx context.Context,
	query RoleStatsQuery,
) (RoleStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return RoleStatsQueryResponse{}, err
	}

	stats := RoleStatsQueryResponse{Role: query.RoleName()}

	role, err := workflow.RoleFromString(query.RoleName())
	if err != nil {
		return stats, nil
	}
	stats.Role = role.String()

	userIDs, err := listUserIDsByRole(ctx, h.db, role)
	if err != nil {
		return RoleStatsQueryResponse{}, err
	}

	var progressSum float64
	for _, userID := range userIDs {
		view, viewErr := h.assembler.forUser(ctx, userID, nil)
		if viewErr != nil {
			continue
		}

		stats.TotalUsers++
		progressSum += view.Percentage
		if view.Percentage >= 100 {
			stats.CompletedUsers++
		}
	}

	if stats.TotalUsers > 0 {
		stats.AverageProgress = progressSum / float64(stats.TotalUsers)
		stats.CompletionRate = float64(stats.CompletedUsers) / float64(stats.TotalUsers) * 100
	}

	return stats, nil
}
