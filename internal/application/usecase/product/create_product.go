// Package product contains catalog-related use cases.
package product

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pingoou/backend/internal/application/adapter"
	"github.com/pingoou/backend/internal/domain/entity"
	domainerror "github.com/pingoou/backend/internal/domain/error"
)

// CreateProductInput represents the input for product creation.
type CreateProductInput struct {
	UserID    uuid.UUID
	Name      string
	Price     decimal.Decimal
	CostPrice decimal.Decimal
	Category  string
}

// CreateProductOutput represents the output of product creation.
type CreateProductOutput struct {
	Product *entity.Product
}

// CreateProductUseCase handles product creation logic.
type CreateProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewCreateProductUseCase creates a new CreateProductUseCase instance.
func NewCreateProductUseCase(productRepo adapter.ProductRepository) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo: productRepo,
	}
}

// Execute performs the product creation.
func (uc *CreateProductUseCase) Execute(ctx context.Context, input CreateProductInput) (*CreateProductOutput, error) {
	// Validate name
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeEmptyProductName,
			"product name cannot be empty",
			domainerror.ErrEmptyProductName,
		)
	}

	// Validate prices
	if input.Price.IsNegative() || input.CostPrice.IsNegative() {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeNegativeProductPrice,
			"price and cost price cannot be negative",
			domainerror.ErrNegativeProductPrice,
		)
	}

	// Create product entity
	product := entity.NewProduct(input.UserID, name, input.Price, input.CostPrice, input.Category)

	// Save product to database
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &CreateProductOutput{
		Product: product,
	}, nil
}
