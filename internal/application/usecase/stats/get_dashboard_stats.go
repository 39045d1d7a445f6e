// Package stats contains the financial aggregation use cases.
package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pingoou/backend/internal/application/adapter"
	"github.com/pingoou/backend/internal/domain/entity"
	domainerror "github.com/pingoou/backend/internal/domain/error"
)

// GetDashboardStatsInput represents the input for the dashboard snapshot.
type GetDashboardStatsInput struct {
	UserID uuid.UUID
	Now    time.Time // zero means time.Now()
}

// DashboardStats is the home-screen snapshot: today's numbers plus the
// month-to-date cost and profit picture. JSON keys keep the storefront's
// Portuguese naming.
type DashboardStats struct {
	FaturamentoHoje decimal.Decimal `json:"faturamentoHoje"`
	VendasHoje      int             `json:"vendasHoje"`
	TicketMedio     decimal.Decimal `json:"ticketMedio"`
	TotalMes        decimal.Decimal `json:"totalMes"`
	CustosMes       decimal.Decimal `json:"custosMes"`
	LucroMes        decimal.Decimal `json:"lucroMes"`

	// Goal progress, present only when a monthly revenue goal is configured.
	MetaMensal    *decimal.Decimal `json:"metaMensal,omitempty"`
	ProgressoMeta *int             `json:"progressoMeta,omitempty"`
}

// GetDashboardStatsUseCase computes the dashboard snapshot. Results are kept
// in a short-TTL cache per user; sale, expense and worked-day writes
// invalidate it. Cache failures degrade to a fresh computation.
type GetDashboardStatsUseCase struct {
	statsRepo   StatsRepository
	profileRepo adapter.ProfileRepository
	cache       adapter.StatsCache
}

// NewGetDashboardStatsUseCase creates a new GetDashboardStatsUseCase instance.
func NewGetDashboardStatsUseCase(
	statsRepo StatsRepository,
	profileRepo adapter.ProfileRepository,
	cache adapter.StatsCache,
) *GetDashboardStatsUseCase {
	return &GetDashboardStatsUseCase{
		statsRepo:   statsRepo,
		profileRepo: profileRepo,
		cache:       cache,
	}
}

// Execute returns the dashboard snapshot, from cache when fresh.
func (uc *GetDashboardStatsUseCase) Execute(ctx context.Context, input GetDashboardStatsInput) (*DashboardStats, error) {
	if uc.cache != nil {
		payload, err := uc.cache.GetDashboard(ctx, input.UserID)
		if err != nil {
			slog.Debug("dashboard cache read failed", "userID", input.UserID, "error", err)
		} else if payload != nil {
			var cached DashboardStats
			if err := json.Unmarshal(payload, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	stats, err := uc.compute(ctx, input)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := uc.cache.SetDashboard(ctx, input.UserID, payload); err != nil {
				slog.Debug("dashboard cache write failed", "userID", input.UserID, "error", err)
			}
		}
	}

	return stats, nil
}

func (uc *GetDashboardStatsUseCase) compute(ctx context.Context, input GetDashboardStatsInput) (*DashboardStats, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	profile, err := uc.profileRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load profile: %v", domainerror.ErrStatsUnavailable, err)
	}

	today := ResolvePeriod(PeriodToday, nil, now)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := today.End // month-to-date, not end of month

	todaySales, err := uc.statsRepo.SalesInRange(ctx, input.UserID, today.Start, today.End)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load today's sales: %v", domainerror.ErrStatsUnavailable, err)
	}

	monthSales, err := uc.statsRepo.SalesInRange(ctx, input.UserID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load month sales: %v", domainerror.ErrStatsUnavailable, err)
	}

	itemCosts, err := uc.statsRepo.ItemCostsInRange(ctx, input.UserID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load item costs: %v", domainerror.ErrStatsUnavailable, err)
	}

	expenses, err := uc.statsRepo.ExpenseAmountsInRange(ctx, input.UserID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load expenses: %v", domainerror.ErrStatsUnavailable, err)
	}

	workedDays, err := uc.statsRepo.WorkedDaysInRange(
		ctx,
		input.UserID,
		monthStart.Format(entity.WorkDateLayout),
		monthEnd.Format(entity.WorkDateLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load worked days: %v", domainerror.ErrStatsUnavailable, err)
	}

	todayRevenue := decimal.Zero
	for _, s := range todaySales {
		todayRevenue = todayRevenue.Add(s.Total)
	}
	monthRevenue := decimal.Zero
	for _, s := range monthSales {
		monthRevenue = monthRevenue.Add(s.Total)
	}

	rates := Rates{CardRateCredit: profile.CardRateCredit, CardRateDebit: profile.CardRateDebit}
	monthCosts := CardFees(monthSales, rates).
		Add(DeliveryCost(workedDays, profile.DeliveryDailyCostBRL)).
		Add(ProductCost(itemCosts)).
		Add(ExpenseTotal(expenses))

	ticketMedio := decimal.Zero
	if len(todaySales) > 0 {
		ticketMedio = todayRevenue.Div(decimal.NewFromInt(int64(len(todaySales))))
	}

	stats := &DashboardStats{
		FaturamentoHoje: todayRevenue,
		VendasHoje:      len(todaySales),
		TicketMedio:     ticketMedio,
		TotalMes:        monthRevenue,
		CustosMes:       monthCosts,
		LucroMes:        monthRevenue.Sub(monthCosts),
	}

	if goal := profile.MonthlyRevenueGoalBRL; goal != nil && goal.IsPositive() {
		stats.MetaMensal = goal
		progress := int(monthRevenue.Div(*goal).Mul(hundred).Round(0).IntPart())
		stats.ProgressoMeta = &progress
	}

	return stats, nil
}
