package paymentrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"

	"gorm.io/gorm"
)

// GormPaymentRepository implements PaymentRepository using GORM. Read-only.
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// ListByOrder retrieves an order's payments, most recent first, with their
// catalog status names resolved.
func (r *GormPaymentRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*payment.Payment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var rows []paymentRow
	err := r.db.WithContext(ctx).
		Table("payments").
		Select("payments.id, payments.order_id, payments.created_at, statuses.name AS status_name").
		Joins("JOIN statuses ON statuses.id = payments.status_id").
		Where("payments.order_id = ?", orderID.Bytes()).
		Order("payments.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(rows)
}

// ListRecent retrieves the newest payments across all orders, capped at limit.
func (r *GormPaymentRepository) ListRecent(ctx context.Context, limit int) ([]*payment.Payment, error) {
	if limit <= 0 {
		return []*payment.Payment{}, nil
	}

	var rows []paymentRow
	err := r.db.WithContext(ctx).
		Table("payments").
		Select("payments.id, payments.order_id, payments.created_at, statuses.name AS status_name").
		Joins("JOIN statuses ON statuses.id = payments.status_id").
		Order("payments.created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(rows)
}

func toDomainSlice(rows []paymentRow) ([]*payment.Payment, error) {
	payments := make([]*payment.Payment, 0, len(rows))
	for _, row := range rows {
		p, rowErr := toDomain(row)
		if rowErr != nil {
			return nil, rowErr
		}
		payments = append(payments, p)
	}

	return payments, nil
}
