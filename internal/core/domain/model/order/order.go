package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the delivery order entity as the workflow engine sees it: an
// identity, the customer who created it, and a lifecycle status. Everything
// else about orders (items, fees, addresses) is owned elsewhere.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	status     Status
	createdAt  time.Time

	isConstructed bool
}

// NewOrder creates an order in Pending status.
func NewOrder(id, customerID kernel.UUID, createdAt time.Time) (*Order, error) {
	if err := errors.Join(id.Validate(), customerID.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence with its stored status.
func RestoreOrder(id, customerID kernel.UUID, status Status, createdAt time.Time) (*Order, error) {
	if err := errors.Join(id.Validate(), customerID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		status:        status,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the creating customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus moves the order to the target status, enforcing the lifecycle
// transition rules.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}
