package queries

import (
	"context"
	"database/sql"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimelineForOrderQueryHandler builds the cross-role completion timeline
// for a single order. Left joins keep entries visible even when their step
// definition or acting user has been removed since the completion.
type TimelineForOrderQueryHandler struct {
	db *gorm.DB
}

// NewTimelineForOrderQueryHandler creates a handler for order timeline queries.
// Requires a GORM database connection for query execution.
func NewTimelineForOrderQueryHandler(db *gorm.DB) TimelineForOrderQueryHandler {
	return TimelineForOrderQueryHandler{db: db}
}

// Handle executes the timeline query. Entries are sorted by the catalog's
// sort order with uncataloged step codes last, ties broken by completion
// time. An order with no recorded completions yields an empty slice.
func (h TimelineForOrderQueryHandler) Handle(
	ctx context.Context,
	query TimelineForOrderQuery,
) ([]TimelineForOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]TimelineForOrderQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.step_code,
			p.completed,
			p.completed_at,
			p.details,
			s.name,
			s.description,
			s.sort_order,
			u.id,
			u.display_name,
			u.role,
			u.phone
		FROM progress_records p
		LEFT JOIN step_definitions s ON s.code = p.step_code
		LEFT JOIN users u ON u.id = p.user_id
		WHERE p.order_id = ?
		ORDER BY s.sort_order NULLS LAST, p.completed_at
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry TimelineForOrderQueryResponse
		var completedAt sql.NullTime
		var stepName, description sql.NullString
		var sortOrder sql.NullInt64
		var actorID uuid.NullUUID
		var displayName, roleName, phone sql.NullString

		err = rows.Scan(
			&entry.StepCode,
			&entry.Completed,
			&completedAt,
			&entry.Details,
			&stepName,
			&description,
			&sortOrder,
			&actorID,
			&displayName,
			&roleName,
			&phone,
		)
		if err != nil {
			return nil, err
		}

		if completedAt.Valid {
			entry.CompletedAt = completedAt.Time.UTC()
		} else {
			entry.CompletedAt = time.Time{}
		}

		if stepName.Valid {
			entry.InCatalog = true
			entry.StepName = stepName.String
			entry.Description = description.String
			entry.SortOrder = int(sortOrder.Int64)
		}

		if actorID.Valid {
			id, idErr := kernel.UUIDFromBytes(actorID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			entry.Actor = TimelineActor{
				ID:          id,
				DisplayName: displayName.String,
				Role:        roleName.String,
				Phone:       phone.String,
			}
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
