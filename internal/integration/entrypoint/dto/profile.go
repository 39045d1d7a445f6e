// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pingoou/backend/internal/domain/entity"
)

// UpdateProfileRequest represents the request body for profile update.
// Omitted fields keep their current value.
type UpdateProfileRequest struct {
	FullName              *string          `json:"full_name"`
	StoreName             *string          `json:"store_name"`
	HapticsEnabled        *bool            `json:"haptics_enabled"`
	MascotSleepSeconds    *int             `json:"mascot_sleep_seconds"`
	MonthlyRevenueGoalBRL *decimal.Decimal `json:"monthly_revenue_goal_brl"`
	DeliveryFeeBRL        *decimal.Decimal `json:"delivery_fee_brl"`
	DeliveryDailyCostBRL  *decimal.Decimal `json:"delivery_daily_cost_brl"`
	CardRateCredit        *decimal.Decimal `json:"card_rate_credit"`
	CardRateDebit         *decimal.Decimal `json:"card_rate_debit"`
	AvatarURL             *string          `json:"avatar_url"`
}

// ResetDataRequest represents the request body for the full data wipe.
// The current password is required as confirmation.
type ResetDataRequest struct {
	Password string `json:"password" binding:"required"`
}

// ProfileResponse represents the profile data in API responses.
type ProfileResponse struct {
	UserID                string           `json:"user_id"`
	FullName              string           `json:"full_name"`
	StoreName             string           `json:"store_name"`
	HapticsEnabled        bool             `json:"haptics_enabled"`
	MascotSleepSeconds    int              `json:"mascot_sleep_seconds"`
	MonthlyRevenueGoalBRL *decimal.Decimal `json:"monthly_revenue_goal_brl,omitempty"`
	DeliveryFeeBRL        decimal.Decimal  `json:"delivery_fee_brl"`
	DeliveryDailyCostBRL  decimal.Decimal  `json:"delivery_daily_cost_brl"`
	CardRateCredit        decimal.Decimal  `json:"card_rate_credit"`
	CardRateDebit         decimal.Decimal  `json:"card_rate_debit"`
	AvatarURL             string           `json:"avatar_url,omitempty"`
	DataResetCount        int              `json:"data_reset_count"`
	UpdatedAt             time.Time        `json:"updated_at"`
}

// ToProfileResponse converts a domain Profile entity to a ProfileResponse DTO.
func ToProfileResponse(profile *entity.Profile) ProfileResponse {
	return ProfileResponse{
		UserID:                profile.UserID.String(),
		FullName:              profile.FullName,
		StoreName:             profile.StoreName,
		HapticsEnabled:        profile.HapticsEnabled,
		MascotSleepSeconds:    profile.MascotSleepSeconds,
		MonthlyRevenueGoalBRL: profile.MonthlyRevenueGoalBRL,
		DeliveryFeeBRL:        profile.DeliveryFeeBRL,
		DeliveryDailyCostBRL:  profile.DeliveryDailyCostBRL,
		CardRateCredit:        profile.CardRateCredit,
		CardRateDebit:         profile.CardRateDebit,
		AvatarURL:             profile.AvatarURL,
		DataResetCount:        profile.DataResetCount,
		UpdatedAt:             profile.UpdatedAt,
	}
}
