package workflow

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Role identifies which step catalog applies to a user. It is a closed
// enumeration: every dispatch over Role is exhaustive over the three
// fulfillment roles, replacing the string comparisons the workflow grew up with.
type Role int

const (
	// RoleUnknown catches uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer places orders and pays for them.
	RoleCustomer

	// RoleDispatcher accepts orders and assigns drivers.
	RoleDispatcher

	// RoleDriver picks up and delivers orders.
	RoleDriver
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:    "Unknown",
		RoleCustomer:   "Customer",
		RoleDispatcher: "Dispatcher",
		RoleDriver:     "Driver",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer:   "Customer",
		RoleDispatcher: "Dispatcher",
		RoleDriver:     "Driver",
	}
}

// RoleFromString resolves a role by name, case-insensitively.
// Unknown names return RoleUnknown together with a validation error; read
// paths treat that as "empty catalog" rather than a failure.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if strings.EqualFold(name, s) {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

// Validate reports whether the Role is one of the three fulfillment roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the role name, or "Unknown" for invalid values.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// AllRoles returns the three valid roles in catalog order.
func AllRoles() []Role {
	return []Role{RoleCustomer, RoleDispatcher, RoleDriver}
}
