// Package userrepo reads account rows for role resolution and actor
// attribution. Account management is owned by the identity system.
package userrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/user"
	"fulfillment/internal/core/domain/model/workflow"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for account rows.
type UserDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username    string    `gorm:"uniqueIndex"`
	DisplayName string
	Phone       string
	Role        string `gorm:"index"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// toDomain converts a database DTO to a user entity.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	role, err := workflow.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Username, dto.DisplayName, dto.Phone, role)
}
