// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// WorkDateLayout is the canonical YYYY-MM-DD layout for delivery work dates.
const WorkDateLayout = "2006-01-02"

// DeliveryWorkDay flags a calendar date on which delivery operations ran.
// Existence of the row, not delivery volume, is the unit of cost.
type DeliveryWorkDay struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	WorkDate  string // YYYY-MM-DD, unique per user
	CreatedAt time.Time
}

// NewDeliveryWorkDay creates a worked-day marker for the given date.
func NewDeliveryWorkDay(userID uuid.UUID, workDate time.Time) *DeliveryWorkDay {
	return &DeliveryWorkDay{
		ID:        uuid.New(),
		UserID:    userID,
		WorkDate:  workDate.Format(WorkDateLayout),
		CreatedAt: time.Now().UTC(),
	}
}
