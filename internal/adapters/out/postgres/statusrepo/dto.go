// Package statusrepo reads the externally configured status catalog. The
// unique index on (category, name) mirrors the catalog's lookup key.
package statusrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/workflow"

	"github.com/google/uuid"
)

// StatusDTO represents the database structure for status catalog rows.
type StatusDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Category string    `gorm:"uniqueIndex:idx_statuses_category_name"`
	Name     string    `gorm:"uniqueIndex:idx_statuses_category_name"`
}

// TableName specifies the database table name for status catalog rows.
func (StatusDTO) TableName() string {
	return "statuses"
}

// toDomain converts a database DTO to a catalog status value.
func toDomain(dto StatusDTO) (workflow.Status, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return workflow.Status{}, err
	}
	category, err := workflow.CategoryFromString(dto.Category)
	if err != nil {
		return workflow.Status{}, err
	}

	return workflow.NewStatus(id, category, dto.Name)
}
