// Package stats contains the financial aggregation use cases.
package stats

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatsRepository defines the reads the aggregation engine performs. Each
// computation queries a fresh snapshot; there is no incremental update.
type StatsRepository interface {
	// SalesInRange returns the user's sales with created_at inside [start, end].
	SalesInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]SaleRecord, error)

	// ItemCostsInRange returns line items of in-range sales joined to the
	// current product cost. Items of removed products come back with zero cost.
	ItemCostsInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]ItemCostRecord, error)

	// ExpenseAmountsInRange returns amounts of expenses dated inside [start, end].
	ExpenseAmountsInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]decimal.Decimal, error)

	// WorkedDaysInRange counts delivery worked days with work_date inside
	// [startDate, endDate] (YYYY-MM-DD, inclusive).
	WorkedDaysInRange(ctx context.Context, userID uuid.UUID, startDate, endDate string) (int, error)
}
