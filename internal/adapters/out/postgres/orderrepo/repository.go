package orderrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves an order by ID with its catalog status resolved.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var row orderRow
	err := r.db.WithContext(ctx).
		Table("orders").
		Select("orders.id, orders.customer_id, orders.created_at, statuses.name AS status_name").
		Joins("JOIN statuses ON statuses.id = orders.status_id").
		Where("orders.id = ?", id.Bytes()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(row)
}

// UpdateStatus points the order at a new catalog status row. The aggregate
// must already carry the corresponding lifecycle state; this only persists it.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order, statusID kernel.UUID) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := statusID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("status_id", statusID.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// ListByCustomer retrieves a customer's orders, most recent first.
func (r *GormOrderRepository) ListByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var rows []orderRow
	err := r.db.WithContext(ctx).
		Table("orders").
		Select("orders.id, orders.customer_id, orders.created_at, statuses.name AS status_name").
		Joins("JOIN statuses ON statuses.id = orders.status_id").
		Where("orders.customer_id = ?", customerID.Bytes()).
		Order("orders.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(rows))
	for _, row := range rows {
		o, rowErr := toDomain(row)
		if rowErr != nil {
			return nil, rowErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}
