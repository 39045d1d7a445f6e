// Package profile contains merchant-profile use cases.
package profile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pingoou/backend/internal/application/adapter"
	domainerror "github.com/pingoou/backend/internal/domain/error"
)

// ResetDataInput represents the input for wiping operational data.
type ResetDataInput struct {
	UserID   uuid.UUID
	Password string
}

// ResetDataOutput represents the output of wiping operational data.
type ResetDataOutput struct {
	Success bool
}

// ResetDataUseCase wipes a merchant's sales, expenses, products and worked
// days. The account, profile and settings stay. Password re-entry is required
// since the wipe is unrecoverable.
type ResetDataUseCase struct {
	userRepo        adapter.UserRepository
	profileRepo     adapter.ProfileRepository
	passwordService adapter.PasswordService
	dataReset       adapter.DataReset
	statsCache      adapter.StatsCache
}

// NewResetDataUseCase creates a new ResetDataUseCase instance.
func NewResetDataUseCase(
	userRepo adapter.UserRepository,
	profileRepo adapter.ProfileRepository,
	passwordService adapter.PasswordService,
	dataReset adapter.DataReset,
	statsCache adapter.StatsCache,
) *ResetDataUseCase {
	return &ResetDataUseCase{
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		passwordService: passwordService,
		dataReset:       dataReset,
		statsCache:      statsCache,
	}
}

// Execute performs the data wipe.
func (uc *ResetDataUseCase) Execute(ctx context.Context, input ResetDataInput) (*ResetDataOutput, error) {
	// Find user by ID
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			err,
		)
	}

	// Verify password
	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid password",
			domainerror.ErrInvalidCredentials,
		)
	}

	// Wipe operational data in one transaction
	if err := uc.dataReset.WipeUserData(ctx, input.UserID); err != nil {
		return nil, fmt.Errorf("failed to wipe user data: %w", err)
	}

	// Record the wipe on the profile
	if err := uc.profileRepo.IncrementDataResetCount(ctx, input.UserID); err != nil {
		slog.Warn("Failed to bump data reset count", "error", err, "userID", input.UserID)
	}

	// Drop the cached dashboard: everything it summarized is gone
	if uc.statsCache != nil {
		if err := uc.statsCache.InvalidateDashboard(ctx, input.UserID); err != nil {
			slog.Debug("dashboard cache invalidation failed", "userID", input.UserID, "error", err)
		}
	}

	slog.Info("Merchant data wiped", "userID", input.UserID)

	return &ResetDataOutput{
		Success: true,
	}, nil
}
