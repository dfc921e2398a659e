package workflow

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrStatusIsNotConstructed is returned when a Status was not created through
// the NewStatus factory method.
var ErrStatusIsNotConstructed = errors.New("Status must be created via NewStatus constructor")

// Status is one row of the externally configured status catalog: a display
// name scoped to a category. Orders and payments reference catalog rows by
// id; the workflow engine looks rows up by (category, name) when applying
// transitions and validates derived-status names against the catalog.
type Status struct {
	id       kernel.UUID
	category StatusCategory
	name     string

	isConstructed bool
}

// NewStatus creates a validated catalog status.
func NewStatus(id kernel.UUID, category StatusCategory, name string) (Status, error) {
	if err := errors.Join(id.Validate(), category.Validate()); err != nil {
		return Status{}, err
	}
	if name == "" {
		return Status{}, errs.NewValueIsRequiredError("name")
	}

	return Status{
		id:            id,
		category:      category,
		name:          name,
		isConstructed: true,
	}, nil
}

// Validate ensures the status was built through NewStatus.
func (s Status) Validate() error {
	if !s.isConstructed {
		return ErrStatusIsNotConstructed
	}
	return nil
}

// ID returns the catalog row identifier.
func (s Status) ID() kernel.UUID {
	return s.id
}

// Category returns the catalog category the status belongs to.
func (s Status) Category() StatusCategory {
	return s.category
}

// Name returns the status display name.
func (s Status) Name() string {
	return s.name
}
