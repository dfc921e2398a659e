package statusrepo

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/workflow"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStatusCatalog implements StatusCatalog using GORM. Read-only: the
// catalog is configured by operators, never by the engine.
type GormStatusCatalog struct {
	db *gorm.DB
}

// NewGormStatusCatalog creates a new GORM status catalog.
func NewGormStatusCatalog(db *gorm.DB) *GormStatusCatalog {
	return &GormStatusCatalog{db: db}
}

// GetByCategoryAndName retrieves the catalog row for a (category, name)
// pair. Returns errs.ErrObjectNotFound when the catalog has no such row;
// the workflow engine treats that as "record the step, skip the status".
func (c *GormStatusCatalog) GetByCategoryAndName(ctx context.Context, category workflow.StatusCategory, name string) (workflow.Status, error) {
	if err := category.Validate(); err != nil {
		return workflow.Status{}, err
	}
	if name == "" {
		return workflow.Status{}, errs.NewValueIsRequiredError("name")
	}

	var dto StatusDTO
	err := c.db.WithContext(ctx).
		First(&dto, "category = ? AND name = ?", category.String(), name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return workflow.Status{}, errs.NewObjectNotFoundError("status",
				fmt.Sprintf("%s/%s", category.String(), name))
		}
		return workflow.Status{}, err
	}

	return toDomain(dto)
}

// Get retrieves a catalog row by ID.
func (c *GormStatusCatalog) Get(ctx context.Context, id kernel.UUID) (workflow.Status, error) {
	if err := id.Validate(); err != nil {
		return workflow.Status{}, err
	}

	var dto StatusDTO
	if err := c.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return workflow.Status{}, errs.NewObjectNotFoundError("status", id.String())
		}
		return workflow.Status{}, err
	}

	return toDomain(dto)
}

// ListByCategory retrieves all catalog rows in one category, sorted by name.
func (c *GormStatusCatalog) ListByCategory(ctx context.Context, category workflow.StatusCategory) ([]workflow.Status, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}

	var dtos []StatusDTO
	err := c.db.WithContext(ctx).
		Order("name").
		Find(&dtos, "category = ?", category.String()).Error
	if err != nil {
		return nil, err
	}

	statuses := make([]workflow.Status, 0, len(dtos))
	for _, dto := range dtos {
		status, dtoErr := toDomain(dto)
		if dtoErr != nil {
			return nil, dtoErr
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}
