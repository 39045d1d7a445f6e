// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pingoou/backend/internal/domain/entity"
)

// ProfileRepository defines the interface for merchant profile persistence.
// One row per user, created at registration.
type ProfileRepository interface {
	// Create creates the profile row for a new user.
	Create(ctx context.Context, profile *entity.Profile) error

	// FindByUser retrieves the profile of the given user.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// Update persists profile changes.
	Update(ctx context.Context, profile *entity.Profile) error

	// IncrementDataResetCount bumps the reset counter after a data wipe.
	IncrementDataResetCount(ctx context.Context, userID uuid.UUID) error
}
