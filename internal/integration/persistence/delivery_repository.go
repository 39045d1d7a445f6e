// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pingoou/backend/internal/application/adapter"
	"github.com/pingoou/backend/internal/domain/entity"
	"github.com/pingoou/backend/internal/integration/persistence/model"
)

// deliveryRepository implements the adapter.DeliveryRepository interface.
type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository creates a new delivery repository instance.
func NewDeliveryRepository(db *gorm.DB) adapter.DeliveryRepository {
	return &deliveryRepository{
		db: db,
	}
}

// FindByUser retrieves all worked days for a given user, sorted ascending.
func (r *deliveryRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeliveryWorkDay, error) {
	var dayModels []model.DeliveryWorkDayModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("work_date ASC").
		Find(&dayModels)
	if result.Error != nil {
		return nil, result.Error
	}

	days := make([]*entity.DeliveryWorkDay, 0, len(dayModels))
	for i := range dayModels {
		days = append(days, dayModels[i].ToEntity())
	}
	return days, nil
}

// Exists reports whether the user has the given date flagged.
func (r *deliveryRepository) Exists(ctx context.Context, userID uuid.UUID, workDate string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.DeliveryWorkDayModel{}).
		Where("user_id = ? AND work_date = ?", userID, workDate).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Create flags a date as worked.
func (r *deliveryRepository) Create(ctx context.Context, day *entity.DeliveryWorkDay) error {
	dayModel := model.WorkDayFromEntity(day)
	result := r.db.WithContext(ctx).Create(dayModel)
	return result.Error
}

// Delete unflags a date.
func (r *deliveryRepository) Delete(ctx context.Context, userID uuid.UUID, workDate string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND work_date = ?", userID, workDate).
		Delete(&model.DeliveryWorkDayModel{})
	return result.Error
}
