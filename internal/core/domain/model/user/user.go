// Package user models the account entity the workflow engine reads for role
// resolution and actor attribution. Account management itself is owned elsewhere.
package user

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/workflow"
	"fulfillment/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User was not created through RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via RestoreUser constructor")

// User is the actor descriptor: identity, display data, and the role that
// selects which step catalog applies.
type User struct {
	id          kernel.UUID
	username    string
	displayName string
	phone       string
	role        workflow.Role

	isConstructed bool
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(id kernel.UUID, username, displayName, phone string, role workflow.Role) (*User, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return nil, err
	}
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}

	return &User{
		id:            id,
		username:      username,
		displayName:   displayName,
		phone:         phone,
		role:          role,
		isConstructed: true,
	}, nil
}

// Validate ensures the user was built through RestoreUser.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Username returns the login name.
func (u *User) Username() string {
	return u.username
}

// DisplayName returns the human-facing name.
func (u *User) DisplayName() string {
	return u.displayName
}

// Phone returns the contact phone number.
func (u *User) Phone() string {
	return u.phone
}

// Role returns the user's fulfillment role.
func (u *User) Role() workflow.Role {
	return u.role
}
