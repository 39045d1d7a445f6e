package mascot

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pingoou/backend/internal/application/adapter"
	"github.com/pingoou/backend/internal/domain/entity"
)

// GetMascotMoodInput represents the input for resolving the mascot mood.
type GetMascotMoodInput struct {
	UserID uuid.UUID
	Now    time.Time // zero means time.Now()
}

// GetMascotMoodOutput carries the resolved mood and the data it came from.
type GetMascotMoodOutput struct {
	Mood         Mood       `json:"mood"`
	LastSaleAt   *time.Time `json:"lastSaleAt,omitempty"`
	SleepSeconds int        `json:"sleepSeconds"`
}

// GetMascotMoodUseCase resolves the mascot mood for a merchant.
type GetMascotMoodUseCase struct {
	saleRepo    adapter.SaleRepository
	profileRepo adapter.ProfileRepository
}

// NewGetMascotMoodUseCase creates a new GetMascotMoodUseCase instance.
func NewGetMascotMoodUseCase(saleRepo adapter.SaleRepository, profileRepo adapter.ProfileRepository) *GetMascotMoodUseCase {
	return &GetMascotMoodUseCase{
		saleRepo:    saleRepo,
		profileRepo: profileRepo,
	}
}

// Execute resolves the current mood from the last sale and the configured timeout.
func (uc *GetMascotMoodUseCase) Execute(ctx context.Context, input GetMascotMoodInput) (*GetMascotMoodOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	sleepSeconds := entity.DefaultMascotSleepSeconds
	profile, err := uc.profileRepo.FindByUser(ctx, input.UserID)
	if err == nil && entity.ValidMascotSleepSeconds(profile.MascotSleepSeconds) {
		sleepSeconds = profile.MascotSleepSeconds
	}

	lastSaleAt, err := uc.saleRepo.LastSaleAt(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load last sale: %w", err)
	}

	return &GetMascotMoodOutput{
		Mood:         ResolveMood(lastSaleAt, sleepSeconds, now),
		LastSaleAt:   lastSaleAt,
		SleepSeconds: sleepSeconds,
	}, nil
}
