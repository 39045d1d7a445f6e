// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// DefaultMascotSleepSeconds is the idle timeout before the mascot dozes off.
	DefaultMascotSleepSeconds = 10
	// MinMascotSleepSeconds and MaxMascotSleepSeconds bound the configurable timeout.
	MinMascotSleepSeconds = 3
	MaxMascotSleepSeconds = 600
)

// Profile is the singleton per-merchant configuration row. It feeds the
// aggregation engine (card rates, delivery costs) but is never aggregated itself.
type Profile struct {
	UserID                uuid.UUID
	FullName              string
	StoreName             string
	HapticsEnabled        bool
	MascotSleepSeconds    int
	MonthlyRevenueGoalBRL *decimal.Decimal
	DeliveryFeeBRL        decimal.Decimal
	DeliveryDailyCostBRL  decimal.Decimal
	CardRateCredit        decimal.Decimal // percent, e.g. 3 means 3%
	CardRateDebit         decimal.Decimal // percent
	AvatarURL             string
	DataResetCount        int
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// NewProfile creates the default profile written at registration time.
func NewProfile(userID uuid.UUID, fullName, storeName string) *Profile {
	now := time.Now().UTC()
	return &Profile{
		UserID:               userID,
		FullName:             fullName,
		StoreName:            storeName,
		HapticsEnabled:       true,
		MascotSleepSeconds:   DefaultMascotSleepSeconds,
		DeliveryFeeBRL:       decimal.NewFromInt(6),
		DeliveryDailyCostBRL: decimal.Zero,
		CardRateCredit:       decimal.Zero,
		CardRateDebit:        decimal.Zero,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// ValidMascotSleepSeconds reports whether the timeout is inside the accepted range.
func ValidMascotSleepSeconds(seconds int) bool {
	return seconds >= MinMascotSleepSeconds && seconds <= MaxMascotSleepSeconds
}
