package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Processing ──> Scheduled ──> InTransit ──┬──> Delivered
//	                                                     └──> Failed
//
// Delivered and Failed are terminal; no further transitions are valid.
// The workflow engine never invents statuses: targets are resolved through
// the configured status catalog and validated here before being applied.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of a freshly created order.
	Pending

	// Processing indicates a dispatcher has accepted the order.
	Processing

	// Scheduled indicates a driver has been assigned.
	Scheduled

	// InTransit indicates the driver has received the order and is en route.
	// Its catalog display name is "Shipped".
	InTransit

	// Delivered is the successful terminal state.
	Delivered

	// Failed is the unsuccessful terminal state.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Processing: "Processing",
		Scheduled:  "Scheduled",
		InTransit:  "Shipped",
		Delivered:  "Delivered",
		Failed:     "Failed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Processing: "Processing",
		Scheduled:  "Scheduled",
		InTransit:  "Shipped",
		Delivered:  "Delivered",
		Failed:     "Failed",
	}
}

// statusAliases maps additional catalog spellings onto states. The delivery
// catalog historically used both "Shipped" and "In Transit" for the same leg.
func statusAliases() map[string]Status {
	return map[string]Status{
		"In Transit": InTransit,
	}
}

// StatusFromName resolves a catalog status name to its typed state.
func StatusFromName(name string) (Status, error) {
	for status, s := range getValidStatusStrings() {
		if s == name {
			return status, nil
		}
	}
	if status, ok := statusAliases()[name]; ok {
		return status, nil
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known order status", name))
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the catalog display name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed
}

// CanTransitionTo reports whether moving from s to target is a valid step
// of the lifecycle. Re-applying the current status is allowed so that
// repeated workflow triggers (e.g. successive location updates) stay idempotent.
func (s Status) CanTransitionTo(target Status) bool {
	if s == target {
		return !s.IsTerminal()
	}

	switch s {
	case Pending:
		return target == Processing
	case Processing:
		return target == Scheduled
	case Scheduled:
		return target == InTransit
	case InTransit:
		return target == Delivered || target == Failed
	default:
		return false
	}
}

// TransitionTo validates and performs the transition, returning the new status.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("transition from %s to %s is not allowed", s, target),
		)
	}
	return target, nil
}
