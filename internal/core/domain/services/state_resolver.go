package services

import (
	"fulfillment/internal/core/domain/model/workflow"
)

// NotYetReachedLabel is shown for steps whose business milestone has not
// happened yet, or whose derived status name is not in the configured catalog.
const NotYetReachedLabel = "Not yet reached"

// StatusSnapshot carries the live domain state a derived-status lookup needs:
// the relevant order's current status name, the status name of that order's
// most recent payment, and the set of valid catalog names per category.
// Query handlers assemble snapshots; the resolver itself touches no storage.
type StatusSnapshot struct {
	// OrderStatusName is the current status of the most recent relevant order,
	// empty when no order exists.
	OrderStatusName string

	// PaymentStatusName is the status of the order's most recent payment,
	// empty when no payment exists.
	PaymentStatusName string

	// ValidNames whitelists status names per category, as configured in the
	// status catalog. Names outside the whitelist never surface as labels.
	ValidNames map[workflow.StatusCategory]map[string]struct{}
}

// StateResolver derives a human-facing status label for milestone steps that
// have no explicit completion event of their own. Order creation and payment
// are observed from domain state rather than recorded as discrete events, so
// their labels come from the order / latest payment status, filtered against
// the valid name set for the step's category.
type StateResolver struct {
	milestones map[string]workflow.StatusCategory
}

// NewStateResolver creates a resolver with the built-in milestone bindings.
func NewStateResolver() StateResolver {
	return StateResolver{
		milestones: map[string]workflow.StatusCategory{
			workflow.StepCustomerCreateOrder: workflow.CategoryOrder,
			workflow.StepCustomerPayment:     workflow.CategoryPayment,
		},
	}
}

// IsMilestone reports whether the step derives its status from domain state.
func (r StateResolver) IsMilestone(stepCode string) bool {
	_, ok := r.milestones[stepCode]
	return ok
}

// Resolve returns the label for a step given the current domain state.
// Non-milestone steps and unreached milestones resolve to NotYetReachedLabel.
func (r StateResolver) Resolve(stepCode string, snapshot StatusSnapshot) string {
	category, ok := r.milestones[stepCode]
	if !ok {
		return NotYetReachedLabel
	}

	var name string
	switch category {
	case workflow.CategoryOrder:
		name = snapshot.OrderStatusName
	case workflow.CategoryPayment:
		name = snapshot.PaymentStatusName
	default:
		return NotYetReachedLabel
	}

	if name == "" {
		return NotYetReachedLabel
	}
	if valid, ok := snapshot.ValidNames[category]; !ok {
		return NotYetReachedLabel
	} else if _, ok := valid[name]; !ok {
		return NotYetReachedLabel
	}

	return name
}
