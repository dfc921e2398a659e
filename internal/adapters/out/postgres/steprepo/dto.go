// Package steprepo reads the step definition catalog, the reference data
// describing each role's checklist.
package steprepo

import (
	"fulfillment/internal/core/domain/model/workflow"
)

// StepDefinitionDTO represents the database structure for step catalog rows.
// The step code is the natural key used by progress records.
type StepDefinitionDTO struct {
	Code        string `gorm:"primaryKey"`
	Role        string `gorm:"index"`
	Name        string
	Description string
	SortOrder   int
}

// TableName specifies the database table name for step definitions.
func (StepDefinitionDTO) TableName() string {
	return "step_definitions"
}

// toDomain converts a database DTO to a step definition value.
func toDomain(dto StepDefinitionDTO) (workflow.StepDefinition, error) {
	role, err := workflow.RoleFromString(dto.Role)
	if err != nil {
		return workflow.StepDefinition{}, err
	}

	return workflow.NewStepDefinition(role, dto.Code, dto.Name, dto.Description, dto.SortOrder)
}
