// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pingoou/backend/internal/domain/entity"
)

// ProfileModel represents the profiles table in the database. One row per user.
type ProfileModel struct {
	UserID                uuid.UUID        `gorm:"type:uuid;primaryKey"`
	FullName              string           `gorm:"type:varchar(100)"`
	StoreName             string           `gorm:"type:varchar(100)"`
	HapticsEnabled        bool             `gorm:"default:true"`
	MascotSleepSeconds    int              `gorm:"not null;default:10"`
	MonthlyRevenueGoalBRL *decimal.Decimal `gorm:"type:decimal(12,2)"`
	DeliveryFeeBRL        decimal.Decimal  `gorm:"type:decimal(12,2);not null;default:6"`
	DeliveryDailyCostBRL  decimal.Decimal  `gorm:"type:decimal(12,2);not null;default:0"`
	CardRateCredit        decimal.Decimal  `gorm:"type:decimal(6,3);not null;default:0"`
	CardRateDebit         decimal.Decimal  `gorm:"type:decimal(6,3);not null;default:0"`
	AvatarURL             string           `gorm:"type:text"`
	DataResetCount        int              `gorm:"not null;default:0"`
	CreatedAt             time.Time        `gorm:"not null"`
	UpdatedAt             time.Time        `gorm:"not null"`
}

// TableName returns the table name for the ProfileModel.
func (ProfileModel) TableName() string {
	return "profiles"
}

// ToEntity converts a ProfileModel to a domain Profile entity.
func (m *ProfileModel) ToEntity() *entity.Profile {
	return &entity.Profile{
		UserID:                m.UserID,
		FullName:              m.FullName,
		StoreName:             m.StoreName,
		HapticsEnabled:        m.HapticsEnabled,
		MascotSleepSeconds:    m.MascotSleepSeconds,
		MonthlyRevenueGoalBRL: m.MonthlyRevenueGoalBRL,
		DeliveryFeeBRL:        m.DeliveryFeeBRL,
		DeliveryDailyCostBRL:  m.DeliveryDailyCostBRL,
		CardRateCredit:        m.CardRateCredit,
		CardRateDebit:         m.CardRateDebit,
		AvatarURL:             m.AvatarURL,
		DataResetCount:        m.DataResetCount,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

// ProfileFromEntity creates a ProfileModel from a domain Profile entity.
func ProfileFromEntity(profile *entity.Profile) *ProfileModel {
	return &ProfileModel{
		UserID:                profile.UserID,
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
		CreatedAt:             profile.CreatedAt,
		UpdatedAt:             profile.UpdatedAt,
	}
}
