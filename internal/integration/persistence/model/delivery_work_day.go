// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/pingoou/backend/internal/domain/entity"
)

// DeliveryWorkDayModel represents the delivery_work_days table in the database.
type DeliveryWorkDayModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_work_day_user_date"`
	WorkDate  string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_work_day_user_date"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the DeliveryWorkDayModel.
func (DeliveryWorkDayModel) TableName() string {
	return "delivery_work_days"
}

// ToEntity converts a DeliveryWorkDayModel to a domain DeliveryWorkDay entity.
func (m *DeliveryWorkDayModel) ToEntity() *entity.DeliveryWorkDay {
	return &entity.DeliveryWorkDay{
		ID:        m.ID,
		UserID:    m.UserID,
		WorkDate:  m.WorkDate,
		CreatedAt: m.CreatedAt,
	}
}

// WorkDayFromEntity creates a DeliveryWorkDayModel from a domain DeliveryWorkDay entity.
func WorkDayFromEntity(day *entity.DeliveryWorkDay) *DeliveryWorkDayModel {
	return &DeliveryWorkDayModel{
		ID:        day.ID,
		UserID:    day.UserID,
		WorkDate:  day.WorkDate,
		CreatedAt: day.CreatedAt,
	}
}
