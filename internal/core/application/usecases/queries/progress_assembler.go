package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/workflow"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StepView is one row of a progress checklist: the step's reference data plus
// whatever is known about its completion. For steps without an explicit
// record, StatusLabel carries the derived status from the state resolver.
type StepView struct {
	Code             string
	Name             string
	Description      string
	Completed        bool
	StatusLabel      string
	CompletionDetail string
}

// CompletedLabel is shown for steps holding an explicit completion record.
const CompletedLabel = "Completed"

// ProgressView is the per-user checklist with its completion percentage.
// Percentage is expressed on a 0-100 scale and is 0 for an empty catalog.
type ProgressView struct {
	UserID         kernel.UUID
	Role           string
	TotalSteps     int
	CompletedSteps int
	Percentage     float64
	Steps          []StepView
}

// progressAssembler joins the step catalog, the progress store, and the state
// resolver into a ProgressView. It is shared by the progress, incomplete-users,
// and role-stats handlers so the three views can never disagree.
type progressAssembler struct {
	db       *gorm.DB
	resolver services.StateResolver
}

func newProgressAssembler(db *gorm.DB, resolver services.StateResolver) progressAssembler {
	return progressAssembler{db: db, resolver: resolver}
}

type progressRow struct {
	completed bool
	details   string
}

// forUser assembles the checklist for one user, optionally scoped to a single
// order. scopeOrderID == nil means completions are matched globally and the
// resolver falls back to the user's most recent order.
func (a progressAssembler) forUser(ctx context.Context, userID kernel.UUID, scopeOrderID *kernel.UUID) (ProgressView, error) {
	roleName, err := a.loadUserRole(ctx, userID)
	if err != nil {
		return ProgressView{}, err
	}

	role, err := workflow.RoleFromString(roleName)
	if err != nil {
		return ProgressView{}, err
	}

	steps, err := a.loadSteps(ctx, role)
	if err != nil {
		return ProgressView{}, err
	}

	records, err := a.loadProgress(ctx, userID, scopeOrderID)
	if err != nil {
		return ProgressView{}, err
	}

	view := ProgressView{
		UserID:     userID,
		Role:       role.String(),
		TotalSteps: len(steps),
		Steps:      make([]StepView, 0, len(steps)),
	}

	var snapshot *services.StatusSnapshot
	for _, step := range steps {
		stepView := StepView{
			Code:        step.Code(),
			Name:        step.Name(),
			Description: step.Description(),
		}

		if record, ok := records[step.Code()]; ok && record.completed {
			stepView.Completed = true
			stepView.StatusLabel = CompletedLabel
			stepView.CompletionDetail = record.details
			view.CompletedSteps++
		} else {
			if snapshot == nil {
				snap, snapErr := a.loadSnapshot(ctx, userID, scopeOrderID)
				if snapErr != nil {
					return ProgressView{}, snapErr
				}
				snapshot = &snap
			}
			stepView.StatusLabel = a.resolver.Resolve(step.Code(), *snapshot)
		}

		view.Steps = append(view.Steps, stepView)
	}

	if view.TotalSteps > 0 {
		view.Percentage = float64(view.CompletedSteps) / float64(view.TotalSteps) * 100
	}

	return view, nil
}

func (a progressAssembler) loadUserRole(ctx context.Context, userID kernel.UUID) (string, error) {
	var roleName string
	err := a.db.WithContext(ctx).Raw(`
		SELECT role
		FROM users
		WHERE id = ?
	`, userID.Bytes()).Row().Scan(&roleName)
	if errors.Is(err, sql.ErrNoRows) {
		return "", errs.NewObjectNotFoundError("userId", userID.String())
	}
	if err != nil {
		return "", err
	}
	return roleName, nil
}

func (a progressAssembler) loadSteps(ctx context.Context, role workflow.Role) ([]workflow.StepDefinition, error) {
	rows, err := a.db.WithContext(ctx).Raw(`
		SELECT role, code, name, description, sort_order
		FROM step_definitions
		WHERE role = ?
		ORDER BY sort_order
	`, role.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	steps := make([]workflow.StepDefinition, 0)
	for rows.Next() {
		var roleName, code, name, description string
		var sortOrder int
		if err = rows.Scan(&roleName, &code, &name, &description, &sortOrder); err != nil {
			return nil, err
		}

		stepRole, roleErr := workflow.RoleFromString(roleName)
		if roleErr != nil {
			return nil, roleErr
		}
		step, stepErr := workflow.NewStepDefinition(stepRole, code, name, description, sortOrder)
		if stepErr != nil {
			return nil, stepErr
		}
		steps = append(steps, step)
	}

	return steps, rows.Err()
}

func (a progressAssembler) loadProgress(ctx context.Context, userID kernel.UUID, scopeOrderID *kernel.UUID) (map[string]progressRow, error) {
	query := `
		SELECT step_code, completed, details
		FROM progress_records
		WHERE user_id = ?
	`
	args := []any{userID.Bytes()}
	if scopeOrderID != nil {
		query += ` AND order_id = ?`
		args = append(args, scopeOrderID.Bytes())
	}

	rows, err := a.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make(map[string]progressRow)
	for rows.Next() {
		var stepCode, details string
		var completed bool
		if err = rows.Scan(&stepCode, &completed, &details); err != nil {
			return nil, err
		}
		records[stepCode] = progressRow{completed: completed, details: details}
	}

	return records, rows.Err()
}

// loadSnapshot gathers the live domain state the resolver derives labels
// from: the relevant order's status, the latest payment's status, and the
// configured status names per category.
func (a progressAssembler) loadSnapshot(ctx context.Context, userID kernel.UUID, scopeOrderID *kernel.UUID) (services.StatusSnapshot, error) {
	snapshot := services.StatusSnapshot{}

	var orderID uuid.UUID
	var orderStatus string
	var err error
	if scopeOrderID != nil {
		orderID = scopeOrderID.Bytes()
		err = a.db.WithContext(ctx).Raw(`
			SELECT st.name
			FROM orders o
			JOIN statuses st ON st.id = o.status_id
			WHERE o.id = ?
		`, scopeOrderID.Bytes()).Row().Scan(&orderStatus)
	} else {
		row := a.db.WithContext(ctx).Raw(`
			SELECT o.id, st.name
			FROM orders o
			JOIN statuses st ON st.id = o.status_id
			WHERE o.customer_id = ?
			ORDER BY o.created_at DESC
			LIMIT 1
		`, userID.Bytes()).Row()
		err = row.Scan(&orderID, &orderStatus)
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return snapshot, err
	}
	if err == nil {
		snapshot.OrderStatusName = orderStatus

		var paymentStatus string
		payErr := a.db.WithContext(ctx).Raw(`
			SELECT st.name
			FROM payments p
			JOIN statuses st ON st.id = p.status_id
			WHERE p.order_id = ?
			ORDER BY p.created_at DESC
			LIMIT 1
		`, orderID).Row().Scan(&paymentStatus)
		if payErr != nil && !errors.Is(payErr, sql.ErrNoRows) {
			return snapshot, payErr
		}
		if payErr == nil {
			snapshot.PaymentStatusName = paymentStatus
		}
	}

	validNames, err := a.loadValidNames(ctx)
	if err != nil {
		return snapshot, err
	}
	snapshot.ValidNames = validNames

	return snapshot, nil
}

func (a progressAssembler) loadValidNames(ctx context.Context) (map[workflow.StatusCategory]map[string]struct{}, error) {
	rows, err := a.db.WithContext(ctx).Raw(`
		SELECT category, name
		FROM statuses
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	validNames := make(map[workflow.StatusCategory]map[string]struct{})
	for rows.Next() {
		var categoryName, name string
		if err = rows.Scan(&categoryName, &name); err != nil {
			return nil, err
		}

		category, categoryErr := workflow.CategoryFromString(categoryName)
		if categoryErr != nil {
			// Misconfigured rows never become whitelisted labels.
			continue
		}
		if validNames[category] == nil {
			validNames[category] = make(map[string]struct{})
		}
		validNames[category][name] = struct{}{}
	}

	return validNames, rows.Err()
}
