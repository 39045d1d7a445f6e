// Package stats contains the financial aggregation use cases.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pingoou/backend/internal/application/adapter"
	"github.com/pingoou/backend/internal/domain/entity"
	domainerror "github.com/pingoou/backend/internal/domain/error"
)

// GetFilteredStatsInput represents the input for a period-filtered summary.
type GetFilteredStatsInput struct {
	UserID uuid.UUID
	Period Period
	Custom *CustomRange
	Now    time.Time // zero means time.Now()
}

// GetFilteredStatsOutput carries the summary and the resolved bounds.
type GetFilteredStatsOutput struct {
	Period  PeriodBounds
	Summary FinancialSummary
}

// GetFilteredStatsUseCase computes the financial summary for a symbolic period.
// All reads must succeed; a single failure aborts the whole computation so the
// caller never sees a summary built from partial data. Cancellation of ctx
// (e.g. the client switched periods and dropped the request) aborts mid-flight
// reads, so a stale computation cannot publish a result.
type GetFilteredStatsUseCase struct {
	statsRepo   StatsRepository
	profileRepo adapter.ProfileRepository
}

// NewGetFilteredStatsUseCase creates a new GetFilteredStatsUseCase instance.
func NewGetFilteredStatsUseCase(statsRepo StatsRepository, profileRepo adapter.ProfileRepository) *GetFilteredStatsUseCase {
	return &GetFilteredStatsUseCase{
		statsRepo:   statsRepo,
		profileRepo: profileRepo,
	}
}

// Execute resolves the period, reads a fresh snapshot and aggregates it.
func (uc *GetFilteredStatsUseCase) Execute(ctx context.Context, input GetFilteredStatsInput) (*GetFilteredStatsOutput, error) {
	if !ValidPeriod(input.Period) {
		return nil, domainerror.ErrInvalidPeriod
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}
	bounds := ResolvePeriod(input.Period, input.Custom, now)

	snap, err := uc.loadSnapshot(ctx, input.UserID, bounds)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrStatsUnavailable, err)
	}

	return &GetFilteredStatsOutput{
		Period:  bounds,
		Summary: Aggregate(*snap),
	}, nil
}

// loadSnapshot performs the independent reads that make up one computation.
func (uc *GetFilteredStatsUseCase) loadSnapshot(ctx context.Context, userID uuid.UUID, bounds PeriodBounds) (*Snapshot, error) {
	profile, err := uc.profileRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	sales, err := uc.statsRepo.SalesInRange(ctx, userID, bounds.Start, bounds.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}

	itemCosts, err := uc.statsRepo.ItemCostsInRange(ctx, userID, bounds.Start, bounds.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load item costs: %w", err)
	}

	expenses, err := uc.statsRepo.ExpenseAmountsInRange(ctx, userID, bounds.Start, bounds.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	workedDays, err := uc.statsRepo.WorkedDaysInRange(
		ctx,
		userID,
		bounds.Start.Format(entity.WorkDateLayout),
		bounds.End.Format(entity.WorkDateLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load worked days: %w", err)
	}

	return &Snapshot{
		Sales:          sales,
		ItemCosts:      itemCosts,
		ExpenseAmounts: expenses,
		WorkedDays:     workedDays,
		Rates: Rates{
			CardRateCredit: profile.CardRateCredit,
			CardRateDebit:  profile.CardRateDebit,
		},
		DailyCost: profile.DeliveryDailyCostBRL,
	}, nil
}
