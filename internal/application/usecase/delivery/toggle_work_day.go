// Package delivery contains delivery-tracking use cases.
package delivery

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pingoou/backend/internal/application/adapter"
	"github.com/pingoou/backend/internal/domain/entity"
	domainerror "github.com/pingoou/backend/internal/domain/error"
)

// ToggleWorkDayInput represents the input for flipping a worked-day flag.
type ToggleWorkDayInput struct {
	UserID   uuid.UUID
	WorkDate string // YYYY-MM-DD
}

// ToggleWorkDayOutput represents the output of flipping a worked-day flag.
type ToggleWorkDayOutput struct {
	WorkDate string
	Worked   bool // state after the toggle
}

// ToggleWorkDayUseCase flips a calendar date between worked and not worked.
// Toggling twice restores the original state, so a double tap is harmless.
type ToggleWorkDayUseCase struct {
	deliveryRepo adapter.DeliveryRepository
	statsCache   adapter.StatsCache
}

// NewToggleWorkDayUseCase creates a new ToggleWorkDayUseCase instance.
func NewToggleWorkDayUseCase(deliveryRepo adapter.DeliveryRepository, statsCache adapter.StatsCache) *ToggleWorkDayUseCase {
	return &ToggleWorkDayUseCase{
		deliveryRepo: deliveryRepo,
		statsCache:   statsCache,
	}
}

// Execute performs the toggle.
func (uc *ToggleWorkDayUseCase) Execute(ctx context.Context, input ToggleWorkDayInput) (*ToggleWorkDayOutput, error) {
	// Validate and canonicalize the date
	parsed, err := time.Parse(entity.WorkDateLayout, input.WorkDate)
	if err != nil {
		return nil, domainerror.ErrInvalidWorkDate
	}
	workDate := parsed.Format(entity.WorkDateLayout)

	exists, err := uc.deliveryRepo.Exists(ctx, input.UserID, workDate)
	if err != nil {
		return nil, fmt.Errorf("failed to check work day: %w", err)
	}

	if exists {
		if err := uc.deliveryRepo.Delete(ctx, input.UserID, workDate); err != nil {
			return nil, fmt.Errorf("failed to unflag work day: %w", err)
		}
	} else {
		day := entity.NewDeliveryWorkDay(input.UserID, parsed)
		if err := uc.deliveryRepo.Create(ctx, day); err != nil {
			return nil, fmt.Errorf("failed to flag work day: %w", err)
		}
	}

	// Drop the cached dashboard: delivery cost depends on worked days
	if uc.statsCache != nil {
		if err := uc.statsCache.InvalidateDashboard(ctx, input.UserID); err != nil {
			slog.Debug("dashboard cache invalidation failed", "userID", input.UserID, "error", err)
		}
	}

	return &ToggleWorkDayOutput{
		WorkDate: workDate,
		Worked:   !exists,
	}, nil
}
