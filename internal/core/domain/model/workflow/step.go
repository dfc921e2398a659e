package workflow

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// ErrStepDefinitionIsNotConstructed is returned when a StepDefinition was not
// created through the NewStepDefinition factory method.
var ErrStepDefinitionIsNotConstructed = errors.New("StepDefinition must be created via NewStepDefinition constructor")

// Step codes for the seeded catalogs. The catalog itself is reference data
// owned outside this service; these constants exist so the transition table
// and the state resolver can bind behavior to specific milestones.
const (
	StepCustomerCreateOrder    = "CUSTOMER_CREATE_ORDER"
	StepCustomerPayment        = "CUSTOMER_PAYMENT"
	StepDispatcherAcceptOrder  = "DISPATCHER_ACCEPT_ORDER"
	StepDispatcherAssignDriver = "DISPATCHER_ASSIGN_DRIVER"
	StepDriverReceiveOrder     = "DRIVER_RECEIVE_ORDER"
	StepDriverUpdateLocation   = "DRIVER_UPDATE_LOCATION"
	StepDriverDelivered        = "DRIVER_DELIVERED"
)

// StepDefinition is one unit of role-scoped workflow, e.g. "driver received
// order". Definitions are immutable reference data seeded externally; the
// core only reads them.
//
// Invariants:
//   - Role must be one of the three fulfillment roles
//   - Code must be non-empty and unique across all catalogs
//   - SortOrder is strictly positive and strictly increasing within a role's catalog
type StepDefinition struct {
	role        Role
	code        string
	name        string
	description string
	sortOrder   int

	isConstructed bool
}

// NewStepDefinition creates a validated StepDefinition.
func NewStepDefinition(role Role, code, name, description string, sortOrder int) (StepDefinition, error) {
	if err := role.Validate(); err != nil {
		return StepDefinition{}, err
	}
	if code == "" {
		return StepDefinition{}, errs.NewValueIsRequiredError("code")
	}
	if name == "" {
		return StepDefinition{}, errs.NewValueIsRequiredError("name")
	}
	if sortOrder <= 0 {
		return StepDefinition{}, errs.NewValueIsInvalidErrorWithCause("sortOrder",
			fmt.Errorf("%d is not greater than 0", sortOrder))
	}

	return StepDefinition{
		role:          role,
		code:          code,
		name:          name,
		description:   description,
		sortOrder:     sortOrder,
		isConstructed: true,
	}, nil
}

// Validate ensures the definition was built through NewStepDefinition.
func (s StepDefinition) Validate() error {
	if !s.isConstructed {
		return ErrStepDefinitionIsNotConstructed
	}
	return nil
}

// Role returns the role whose catalog this step belongs to.
func (s StepDefinition) Role() Role {
	return s.role
}

// Code returns the unique step code.
func (s StepDefinition) Code() string {
	return s.code
}

// Name returns the display name.
func (s StepDefinition) Name() string {
	return s.name
}

// Description returns the step description.
func (s StepDefinition) Description() string {
	return s.description
}

// SortOrder returns the position of the step within its role's catalog.
func (s StepDefinition) SortOrder() int {
	return s.sortOrder
}
