// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pingoou/backend/internal/domain/entity"
)

// DeliveryRepository defines the interface for delivery worked-day persistence.
// Work dates are YYYY-MM-DD strings, unique per user.
type DeliveryRepository interface {
	// FindByUser retrieves all worked days for a given user, sorted ascending.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeliveryWorkDay, error)

	// Exists reports whether the user has the given date flagged.
	Exists(ctx context.Context, userID uuid.UUID, workDate string) (bool, error)

	// Create flags a date as worked.
	Create(ctx context.Context, day *entity.DeliveryWorkDay) error

	// Delete unflags a date.
	Delete(ctx context.Context, userID uuid.UUID, workDate string) error
}
