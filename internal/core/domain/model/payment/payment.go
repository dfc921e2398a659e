// Package payment models the payment entity the state resolver reads.
// Payment processing is owned elsewhere; the workflow engine only inspects
// the most recent payment's status name per order.
package payment

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrPaymentIsNotConstructed is returned when a Payment was not created through RestorePayment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via RestorePayment constructor")

// Payment is one payment attempt against an order, carrying the catalog
// status name it currently holds.
type Payment struct {
	id         kernel.UUID
	orderID    kernel.UUID
	statusName string
	createdAt  time.Time

	isConstructed bool
}

// RestorePayment reconstructs a payment from persistence.
func RestorePayment(id, orderID kernel.UUID, statusName string, createdAt time.Time) (*Payment, error) {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}
	if statusName == "" {
		return nil, errs.NewValueIsRequiredError("statusName")
	}

	return &Payment{
		id:            id,
		orderID:       orderID,
		statusName:    statusName,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the payment was built through RestorePayment.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the order the payment belongs to.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// StatusName returns the catalog status name of the payment.
func (p *Payment) StatusName() string {
	return p.statusName
}

// CreatedAt returns the payment creation time.
func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}
