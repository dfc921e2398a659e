package userrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/user"
	"fulfillment/internal/core/domain/model/workflow"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM. Read-only: the
// workflow engine never creates or modifies accounts.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Get retrieves a user by ID.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUsername retrieves a user by login name.
func (r *GormUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", username)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListByRole retrieves all users holding one role, sorted by username.
func (r *GormUserRepository) ListByRole(ctx context.Context, role workflow.Role) ([]*user.User, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}

	var dtos []UserDTO
	err := r.db.WithContext(ctx).
		Order("username").
		Find(&dtos, "role = ?", role.String()).Error
	if err != nil {
		return nil, err
	}

	users := make([]*user.User, 0, len(dtos))
	for _, dto := range dtos {
		u, dtoErr := toDomain(dto)
		if dtoErr != nil {
			return nil, dtoErr
		}
		users = append(users, u)
	}

	return users, nil
}
