// Package progressrepo persists progress records, the per-order completion
// checklist entries. The composite unique index on (order_id, step_code) is
// what guarantees at most one record per order and step under concurrency.
package progressrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/workflow"

	"github.com/google/uuid"
)

// ProgressRecordDTO represents the database structure for persisting
// progress records. The unique index backs the upsert's conflict target.
type ProgressRecordDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_progress_order_step"`
	StepCode    string    `gorm:"uniqueIndex:idx_progress_order_step"`
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Completed   bool
	CompletedAt time.Time
	Details     string
}

// TableName specifies the database table name for progress records.
func (ProgressRecordDTO) TableName() string {
	return "progress_records"
}

// fromDomain converts a progress record aggregate to its database representation.
func fromDomain(record *workflow.ProgressRecord) ProgressRecordDTO {
	return ProgressRecordDTO{
		ID:          record.ID().Bytes(),
		OrderID:     record.OrderID().Bytes(),
		StepCode:    record.StepCode(),
		UserID:      record.UserID().Bytes(),
		Completed:   record.Completed(),
		CompletedAt: record.CompletedAt(),
		Details:     record.Details(),
	}
}

// toDomain converts a database DTO back to a progress record aggregate.
func toDomain(dto ProgressRecordDTO) (*workflow.ProgressRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return workflow.RestoreProgressRecord(id, orderID, dto.StepCode, userID, dto.Completed, dto.CompletedAt, dto.Details)
}
