package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"
)

// PaymentRepository is the read-only payment store contract. The state
// resolver only ever needs the most recent payment per order; the audit job
// additionally scans recent payments for checklist drift.
type PaymentRepository interface {
	// ListByOrder returns the order's payments ordered by creation time,
	// most recent first.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*payment.Payment, error)

	// ListRecent returns the newest payments across all orders, most
	// recent first, capped at limit.
	ListRecent(ctx context.Context, limit int) ([]*payment.Payment, error)
}
