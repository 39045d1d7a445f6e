// Package profile contains merchant-profile use cases.
package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pingoou/backend/internal/application/adapter"
	"github.com/pingoou/backend/internal/domain/entity"
	domainerror "github.com/pingoou/backend/internal/domain/error"
)

// UpdateProfileInput represents the input for profile update. Nil fields
// keep their current value.
type UpdateProfileInput struct {
	UserID                uuid.UUID
	FullName              *string
	StoreName             *string
	HapticsEnabled        *bool
	MascotSleepSeconds    *int
	MonthlyRevenueGoalBRL *decimal.Decimal // zero or negative clears the goal
	DeliveryFeeBRL        *decimal.Decimal
	DeliveryDailyCostBRL  *decimal.Decimal
	CardRateCredit        *decimal.Decimal
	CardRateDebit         *decimal.Decimal
	AvatarURL             *string
}

// UpdateProfileOutput represents the output of profile update.
type UpdateProfileOutput struct {
	Profile *entity.Profile
}

// UpdateProfileUseCase handles profile update logic. Rate changes take effect
// on the next aggregation; historical summaries are recomputed on read, so
// there is nothing to rewrite.
type UpdateProfileUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(profileRepo adapter.ProfileRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		profileRepo: profileRepo,
	}
}

// Execute performs the profile update.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	// Find the existing profile
	profile, err := uc.profileRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrProfileNotFound) {
			return nil, domainerror.NewProfileError(
				domainerror.ErrCodeProfileNotFound,
				"profile not found",
				domainerror.ErrProfileNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	// Validate mascot sleep timeout if provided
	if input.MascotSleepSeconds != nil {
		if !entity.ValidMascotSleepSeconds(*input.MascotSleepSeconds) {
			return nil, domainerror.NewProfileError(
				domainerror.ErrCodeInvalidMascotSleepSeconds,
				fmt.Sprintf("mascot sleep seconds must be between %d and %d",
					entity.MinMascotSleepSeconds, entity.MaxMascotSleepSeconds),
				domainerror.ErrInvalidMascotSleepSeconds,
			)
		}
		profile.MascotSleepSeconds = *input.MascotSleepSeconds
	}

	// Validate rates and costs if provided
	for _, rate := range []*decimal.Decimal{
		input.DeliveryFeeBRL,
		input.DeliveryDailyCostBRL,
		input.CardRateCredit,
		input.CardRateDebit,
	} {
		if rate != nil && rate.IsNegative() {
			return nil, domainerror.NewProfileError(
				domainerror.ErrCodeNegativeRate,
				"rates and costs cannot be negative",
				domainerror.ErrNegativeRate,
			)
		}
	}

	if input.FullName != nil {
		profile.FullName = *input.FullName
	}
	if input.StoreName != nil {
		profile.StoreName = *input.StoreName
	}
	if input.HapticsEnabled != nil {
		profile.HapticsEnabled = *input.HapticsEnabled
	}
	if input.MonthlyRevenueGoalBRL != nil {
		if input.MonthlyRevenueGoalBRL.IsPositive() {
			goal := *input.MonthlyRevenueGoalBRL
			profile.MonthlyRevenueGoalBRL = &goal
		} else {
			profile.MonthlyRevenueGoalBRL = nil
		}
	}
	if input.DeliveryFeeBRL != nil {
		profile.DeliveryFeeBRL = *input.DeliveryFeeBRL
	}
	if input.DeliveryDailyCostBRL != nil {
		profile.DeliveryDailyCostBRL = *input.DeliveryDailyCostBRL
	}
	if input.CardRateCredit != nil {
		profile.CardRateCredit = *input.CardRateCredit
	}
	if input.CardRateDebit != nil {
		profile.CardRateDebit = *input.CardRateDebit
	}

	// Update timestamp
	profile.UpdatedAt = time.Now().UTC()

	if input.AvatarURL != nil {
		profile.AvatarURL = *input.AvatarURL
	}

	// Save updated profile
	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return &UpdateProfileOutput{
		Profile: profile,
	}, nil
}
