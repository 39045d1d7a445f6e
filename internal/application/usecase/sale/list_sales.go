// Package sale contains sale-related use cases.
package sale

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pingoou/backend/internal/application/adapter"
	"github.com/pingoou/backend/internal/domain/entity"
)

// ListSalesInput represents the input for sale listing.
type ListSalesInput struct {
	UserID uuid.UUID
}

// ListSalesOutput represents the output of sale listing.
type ListSalesOutput struct {
	Sales []*entity.Sale
}

// ListSalesUseCase handles sale listing logic.
type ListSalesUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewListSalesUseCase creates a new ListSalesUseCase instance.
func NewListSalesUseCase(saleRepo adapter.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{
		saleRepo: saleRepo,
	}
}

// Execute returns the merchant's sales, newest first, without line items.
func (uc *ListSalesUseCase) Execute(ctx context.Context, input ListSalesInput) (*ListSalesOutput, error) {
	sales, err := uc.saleRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	return &ListSalesOutput{
		Sales: sales,
	}, nil
}
