// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pingoou/backend/internal/application/adapter"
	"github.com/pingoou/backend/internal/domain/entity"
	domainerror "github.com/pingoou/backend/internal/domain/error"
	"github.com/pingoou/backend/internal/integration/persistence/model"
)

// profileRepository implements the adapter.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository instance.
func NewProfileRepository(db *gorm.DB) adapter.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// Create creates the profile row for a new user.
func (r *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileModel := model.ProfileFromEntity(profile)
	result := r.db.WithContext(ctx).Create(profileModel)
	return result.Error
}

// FindByUser retrieves the profile of the given user.
func (r *profileRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profileModel model.ProfileModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profileModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProfileNotFound
		}
		return nil, result.Error
	}
	return profileModel.ToEntity(), nil
}

// Update persists profile changes.
func (r *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	profileModel := model.ProfileFromEntity(profile)
	result := r.db.WithContext(ctx).Save(profileModel)
	return result.Error
}

// IncrementDataResetCount bumps the reset counter after a data wipe.
func (r *profileRepository) IncrementDataResetCount(ctx context.Context, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ?", userID).
		Update("data_reset_count", gorm.Expr("data_reset_count + 1"))
	return result.Error
}
