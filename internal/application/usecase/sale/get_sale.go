// Package sale contains sale-related use cases.
package sale

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pingoou/backend/internal/application/adapter"
	"github.com/pingoou/backend/internal/domain/entity"
	domainerror "github.com/pingoou/backend/internal/domain/error"
)

// GetSaleInput represents the input for fetching one sale.
type GetSaleInput struct {
	SaleID uuid.UUID
	UserID uuid.UUID
}

// GetSaleOutput represents the output of fetching one sale.
type GetSaleOutput struct {
	Sale *entity.Sale
}

// GetSaleUseCase fetches a sale with its line items.
type GetSaleUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewGetSaleUseCase creates a new GetSaleUseCase instance.
func NewGetSaleUseCase(saleRepo adapter.SaleRepository) *GetSaleUseCase {
	return &GetSaleUseCase{
		saleRepo: saleRepo,
	}
}

// Execute fetches the sale and checks ownership.
func (uc *GetSaleUseCase) Execute(ctx context.Context, input GetSaleInput) (*GetSaleOutput, error) {
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

	if sale.UserID != input.UserID {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeNotAuthorizedSale,
			"not authorized to view this sale",
			domainerror.ErrNotAuthorizedToModifySale,
		)
	}

	return &GetSaleOutput{
		Sale: sale,
	}, nil
}
