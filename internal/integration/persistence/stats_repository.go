// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pingoou/backend/internal/application/usecase/stats"
	"github.com/pingoou/backend/internal/integration/persistence/model"
)

// statsRepository implements the stats.StatsRepository interface with the
// narrow projections the aggregation engine reads.
type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new stats repository instance.
func NewStatsRepository(db *gorm.DB) stats.StatsRepository {
	return &statsRepository{
		db: db,
	}
}

// SalesInRange returns the totals and payment methods of the user's sales
// inside [start, end].
func (r *statsRepository) SalesInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]stats.SaleRecord, error) {
	var rows []struct {
		Total         decimal.Decimal
		PaymentMethod string
	}
	result := r.db.WithContext(ctx).
		Model(&model.SaleModel{}).
		Select("total", "payment_method").
		Where("user_id = ? AND created_at BETWEEN ? AND ?", userID, start, end).
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]stats.SaleRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, stats.SaleRecord{
			Total:         row.Total,
			PaymentMethod: row.PaymentMethod,
		})
	}
	return records, nil
}

// ItemCostsInRange returns quantity and CURRENT catalog cost for every line
// item sold in the range. Lines whose product was soft-deleted resolve to
// zero cost; the join deliberately reads the live cost, not a snapshot.
func (r *statsRepository) ItemCostsInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]stats.ItemCostRecord, error) {
	var rows []struct {
		Qty      int
		UnitCost decimal.Decimal
	}
	result := r.db.WithContext(ctx).
		Model(&model.SaleItemModel{}).
		Select("sale_items.qty AS qty, COALESCE(products.cost_price, 0) AS unit_cost").
		Joins("JOIN sales ON sales.id = sale_items.sale_id").
		Joins("LEFT JOIN products ON products.id = sale_items.product_id AND products.deleted_at IS NULL").
		Where("sales.user_id = ? AND sales.created_at BETWEEN ? AND ?", userID, start, end).
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]stats.ItemCostRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, stats.ItemCostRecord{
			Qty:      row.Qty,
			UnitCost: row.UnitCost,
		})
	}
	return records, nil
}

// ExpenseAmountsInRange returns the amounts of the user's expenses whose date
// falls inside [start, end].
func (r *statsRepository) ExpenseAmountsInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]decimal.Decimal, error) {
	var amounts []decimal.Decimal
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Pluck("amount", &amounts)
	if result.Error != nil {
		return nil, result.Error
	}
	return amounts, nil
}

// WorkedDaysInRange counts the user's flagged delivery days between the two
// YYYY-MM-DD dates, inclusive. String comparison is correct for this layout.
func (r *statsRepository) WorkedDaysInRange(ctx context.Context, userID uuid.UUID, startDate, endDate string) (int, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.DeliveryWorkDayModel{}).
		Where("user_id = ? AND work_date BETWEEN ? AND ?", userID, startDate, endDate).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(count), nil
}
