// Package orderrepo reads and updates the order rows the workflow engine
// touches. Order creation and the rest of the order's data are owned by the
// ordering system; this adapter only resolves status and customer linkage.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for order rows. The status is
// a reference into the configured status catalog, not an inline enum.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	StatusID   uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt  time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// orderRow is the joined read shape: the order with its catalog status name.
type orderRow struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	StatusName string
	CreatedAt  time.Time
}

// toDomain converts a joined row to an order entity, resolving the catalog
// status name to the typed lifecycle state.
func toDomain(row orderRow) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(row.CustomerID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromName(row.StatusName)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, status, row.CreatedAt)
}
