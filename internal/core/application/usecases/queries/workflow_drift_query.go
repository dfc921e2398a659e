package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrWorkflowDriftQueryIsNotConstructed = errors.New(
		"WorkflowDriftQuery must be created via NewWorkflowDriftQuery constructor",
	)
)

// DriftKind classifies a disagreement between an order's status and its
// recorded step completions.
type DriftKind string

const (
	// DriftMissingCompletion: the order reached its terminal status but the
	// terminal step was never recorded.
	DriftMissingCompletion DriftKind = "MISSING_COMPLETION"
	// DriftMissingStatus: the terminal step was recorded but the order's
	// status never caught up.
	DriftMissingStatus DriftKind = "MISSING_STATUS"
)

// WorkflowDriftQuery finds orders whose lifecycle status and progress
// records disagree about delivery, the postmortem view for reconciling a
// status update and its step completion that did not land together.
type WorkflowDriftQuery struct {
	guard guard.ConstructorGuard
}

// NewWorkflowDriftQuery creates a parameterless drift query.
func NewWorkflowDriftQuery() WorkflowDriftQuery {
	return WorkflowDriftQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrWorkflowDriftQueryIsNotConstructed if validation fails.
func (q WorkflowDriftQuery) Validate() error {
	return q.guard.Validate(ErrWorkflowDriftQueryIsNotConstructed)
}

// WorkflowDriftQueryResponse is one order out of sync with its records.
type WorkflowDriftQueryResponse struct {
	OrderID    kernel.UUID
	StatusName string
	StepCode   string
	Kind       DriftKind
}
