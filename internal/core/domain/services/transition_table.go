package services

import (
	"fulfillment/internal/core/domain/model/workflow"
)

// TransitionTarget names the catalog status a step completion implies.
type TransitionTarget struct {
	Category   workflow.StatusCategory
	StatusName string
}

// TransitionTable is the single owner of the step-to-status coupling that
// used to be duplicated across call sites. Completing a step listed here
// additionally moves the order to the named status, provided the status
// exists in the configured catalog.
type TransitionTable struct {
	targets map[string]TransitionTarget
}

// NewTransitionTable creates the table with the built-in couplings.
func NewTransitionTable() TransitionTable {
	return TransitionTable{
		targets: map[string]TransitionTarget{
			workflow.StepDispatcherAcceptOrder:  {Category: workflow.CategoryOrder, StatusName: "Processing"},
			workflow.StepDispatcherAssignDriver: {Category: workflow.CategoryDelivery, StatusName: "Scheduled"},
			workflow.StepDriverReceiveOrder:     {Category: workflow.CategoryDelivery, StatusName: "Shipped"},
			workflow.StepDriverUpdateLocation:   {Category: workflow.CategoryDelivery, StatusName: "Shipped"},
			workflow.StepDriverDelivered:        {Category: workflow.CategoryDelivery, StatusName: "Delivered"},
		},
	}
}

// TargetFor returns the status implied by completing stepCode, if any.
func (t TransitionTable) TargetFor(stepCode string) (TransitionTarget, bool) {
	target, ok := t.targets[stepCode]
	return target, ok
}

// Targets returns every configured target, for startup catalog validation.
func (t TransitionTable) Targets() map[string]TransitionTarget {
	out := make(map[string]TransitionTarget, len(t.targets))
	for code, target := range t.targets {
		out[code] = target
	}
	return out
}
