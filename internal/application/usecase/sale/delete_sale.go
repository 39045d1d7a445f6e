// Package sale contains sale-related use cases.
package sale

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pingoou/backend/internal/application/adapter"
	domainerror "github.com/pingoou/backend/internal/domain/error"
)

// DeleteSaleInput represents the input for sale deletion.
type DeleteSaleInput struct {
	SaleID uuid.UUID
	UserID uuid.UUID
}

// DeleteSaleOutput represents the output of sale deletion.
type DeleteSaleOutput struct {
	Success bool
}

// DeleteSaleUseCase handles sale deletion logic. The sale and its items go
// together in one transaction; orphan items never survive.
type DeleteSaleUseCase struct {
	saleRepo   adapter.SaleRepository
	statsCache adapter.StatsCache
}

// NewDeleteSaleUseCase creates a new DeleteSaleUseCase instance.
func NewDeleteSaleUseCase(saleRepo adapter.SaleRepository, statsCache adapter.StatsCache) *DeleteSaleUseCase {
	return &DeleteSaleUseCase{
		saleRepo:   saleRepo,
		statsCache: statsCache,
	}
}

// Execute performs the sale deletion.
func (uc *DeleteSaleUseCase) Execute(ctx context.Context, input DeleteSaleInput) (*DeleteSaleOutput, error) {
	// Find the existing sale
	sale, err := uc.saleRepo.FindByID(ctx, input.SaleID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSaleNotFound) {
			return nil, domainerror.NewSaleError(
				domainerror.ErrCodeSaleNotFound,
				"sale not found",
				domainerror.ErrSaleNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find sale: %w", err)
	}

	// Check if user is authorized to delete this sale
	if sale.UserID != input.UserID {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeNotAuthorizedSale,
			"not authorized to delete this sale",
			domainerror.ErrNotAuthorizedToModifySale,
		)
	}

	// Delete the sale and its items atomically
	if err := uc.saleRepo.Delete(ctx, input.SaleID); err != nil {
		return nil, fmt.Errorf("failed to delete sale: %w", err)
	}

	// Drop the cached dashboard so the next read sees the removal
	if uc.statsCache != nil {
		if err := uc.statsCache.InvalidateDashboard(ctx, input.UserID); err != nil {
			slog.Debug("dashboard cache invalidation failed", "userID", input.UserID, "error", err)
		}
	}

	return &DeleteSaleOutput{
		Success: true,
	}, nil
}
