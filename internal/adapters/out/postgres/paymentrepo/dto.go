// Package paymentrepo reads payment rows so the state resolver can derive
// payment-step labels. Payments are written by the billing system.
package paymentrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database structure for payment rows.
type PaymentDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	StatusID  uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

// paymentRow is the joined read shape: the payment with its status name.
type paymentRow struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	StatusName string
	CreatedAt  time.Time
}

// toDomain converts a joined row to a payment entity.
func toDomain(row paymentRow) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(row.OrderID[:])
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(id, orderID, row.StatusName, row.CreatedAt)
}
