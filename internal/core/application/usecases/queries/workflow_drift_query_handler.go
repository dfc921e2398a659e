package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/workflow"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkflowDriftQueryHandler detects orders whose status and step records
// disagree about delivery in either direction.
type WorkflowDriftQueryHandler struct {
	db *gorm.DB
}

// NewWorkflowDriftQueryHandler creates a handler for drift queries.
// Requires a GORM database connection for query execution.
func NewWorkflowDriftQueryHandler(db *gorm.DB) WorkflowDriftQueryHandler {
	return WorkflowDriftQueryHandler{db: db}
}

// Handle executes both drift checks and returns the combined result:
// delivered orders without a recorded delivery step, then delivery-step
// records on orders that never reached the delivered status.
func (h WorkflowDriftQueryHandler) Handle(
	ctx context.Context,
	query WorkflowDriftQuery,
) ([]WorkflowDriftQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drifts := make([]WorkflowDriftQueryResponse, 0)

	missingCompletions, err := h.scanDrift(ctx, `
		SELECT o.id, st.name
		FROM orders o
		JOIN statuses st ON st.id = o.status_id
		LEFT JOIN progress_records p ON p.order_id = o.id AND p.step_code = ? AND p.completed
		WHERE st.name = ? AND p.id IS NULL
		ORDER BY o.created_at
	`, DriftMissingCompletion)
	if err != nil {
		return nil, err
	}
	drifts = append(drifts, missingCompletions...)

	missingStatuses, err := h.scanDrift(ctx, `
		SELECT o.id, st.name
		FROM progress_records p
		JOIN orders o ON o.id = p.order_id
		JOIN statuses st ON st.id = o.status_id
		WHERE p.step_code = ? AND p.completed AND st.name != ?
		ORDER BY o.created_at
	`, DriftMissingStatus)
	if err != nil {
		return nil, err
	}
	drifts = append(drifts, missingStatuses...)

	return drifts, nil
}

func (h WorkflowDriftQueryHandler) scanDrift(
	ctx context.Context,
	stmt string,
	kind DriftKind,
) ([]WorkflowDriftQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(stmt, workflow.StepDriverDelivered, order.Delivered.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drifts := make([]WorkflowDriftQueryResponse, 0)
	for rows.Next() {
		var id uuid.UUID
		var statusName string
		if err = rows.Scan(&id, &statusName); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		drifts = append(drifts, WorkflowDriftQueryResponse{
			OrderID:    orderID,
			StatusName: statusName,
			StepCode:   workflow.StepDriverDelivered,
			Kind:       kind,
		})
	}

	return drifts, rows.Err()
}
