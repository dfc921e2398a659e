package steprepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/workflow"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStepCatalog implements StepCatalog using GORM. Read-only on the
// request path; Seed exists for bootstrap and tests.
type GormStepCatalog struct {
	db *gorm.DB
}

// NewGormStepCatalog creates a new GORM step catalog.
func NewGormStepCatalog(db *gorm.DB) *GormStepCatalog {
	return &GormStepCatalog{db: db}
}

// ListByRole retrieves one role's steps in checklist order.
func (c *GormStepCatalog) ListByRole(ctx context.Context, role workflow.Role) ([]workflow.StepDefinition, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}

	var dtos []StepDefinitionDTO
	err := c.db.WithContext(ctx).
		Order("sort_order").
		Find(&dtos, "role = ?", role.String()).Error
	if err != nil {
		return nil, err
	}

	steps := make([]workflow.StepDefinition, 0, len(dtos))
	for _, dto := range dtos {
		step, dtoErr := toDomain(dto)
		if dtoErr != nil {
			return nil, dtoErr
		}
		steps = append(steps, step)
	}

	return steps, nil
}

// GetByCode retrieves a single step definition by its code.
// Returns errs.ErrObjectNotFound for codes absent from the catalog.
func (c *GormStepCatalog) GetByCode(ctx context.Context, code string) (workflow.StepDefinition, error) {
	if code == "" {
		return workflow.StepDefinition{}, errs.NewValueIsRequiredError("code")
	}

	var dto StepDefinitionDTO
	if err := c.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return workflow.StepDefinition{}, errs.NewObjectNotFoundError("stepDefinition", code)
		}
		return workflow.StepDefinition{}, err
	}

	return toDomain(dto)
}
