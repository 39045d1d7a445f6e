// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/pingoou/backend/internal/application/usecase/stats"
)

// StatsResponse represents the period-filtered financial summary response.
// The summary types carry their own JSON tags; the envelope only adds the
// resolved period bounds.
type StatsResponse struct {
	Period  string                 `json:"period"`
	From    time.Time              `json:"from"`
	To      time.Time              `json:"to"`
	Summary stats.FinancialSummary `json:"summary"`
}

// MascotResponse represents the mascot mood response.
type MascotResponse struct {
	Mood         string     `json:"mood"`
	LastSaleAt   *time.Time `json:"last_sale_at,omitempty"`
	SleepSeconds int        `json:"sleep_seconds"`
}
