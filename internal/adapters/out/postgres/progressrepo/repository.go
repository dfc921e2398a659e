package progressrepo

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/workflow"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProgressRepository implements ProgressRepository using GORM.
type GormProgressRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProgressRepository creates a new GORM progress repository.
func NewGormProgressRepository(db *gorm.DB, tracker aggregateTracker) *GormProgressRepository {
	return &GormProgressRepository{
		db:      db,
		tracker: tracker,
	}
}

// Upsert saves a progress record, atomically resolving concurrent inserts
// for the same (order, step) pair. On conflict the existing row keeps its
// identifier and the completion columns are overwritten, so two racing
// completions converge to a single record with the last writer's data.
func (r *GormProgressRepository) Upsert(ctx context.Context, record *workflow.ProgressRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "order_id"}, {Name: "step_code"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"user_id", "completed", "completed_at", "details",
		}),
	}).Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// GetByOrderAndStep retrieves the single record for an (order, step) pair.
// Returns errs.ErrObjectNotFound when no completion was recorded.
func (r *GormProgressRepository) GetByOrderAndStep(ctx context.Context, orderID kernel.UUID, stepCode string) (*workflow.ProgressRecord, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if stepCode == "" {
		return nil, errs.NewValueIsRequiredError("stepCode")
	}

	var dto ProgressRecordDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND step_code = ?", orderID.Bytes(), stepCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("progressRecord",
				fmt.Sprintf("%s/%s", orderID.String(), stepCode))
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListByOrder retrieves all records for one order, oldest completion first.
func (r *GormProgressRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*workflow.ProgressRecord, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ProgressRecordDTO
	err := r.db.WithContext(ctx).
		Order("completed_at").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainSlice(dtos)
}

// ListByUser retrieves all records attributed to one user, oldest first.
func (r *GormProgressRepository) ListByUser(ctx context.Context, userID kernel.UUID) ([]*workflow.ProgressRecord, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ProgressRecordDTO
	err := r.db.WithContext(ctx).
		Order("completed_at").
		Find(&dtos, "user_id = ?", userID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainSlice(dtos)
}

func (r *GormProgressRepository) toDomainSlice(dtos []ProgressRecordDTO) ([]*workflow.ProgressRecord, error) {
	records := make([]*workflow.ProgressRecord, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
