// Package product contains catalog-related use cases.
package product

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pingoou/backend/internal/application/adapter"
	"github.com/pingoou/backend/internal/domain/entity"
	domainerror "github.com/pingoou/backend/internal/domain/error"
)

// UpdateProductInput represents the input for product update.
type UpdateProductInput struct {
	ProductID uuid.UUID
	UserID    uuid.UUID
	Name      *string          // Optional
	Price     *decimal.Decimal // Optional
	CostPrice *decimal.Decimal // Optional
	Category  *string          // Optional
}

// UpdateProductOutput represents the output of product update.
type UpdateProductOutput struct {
	Product *entity.Product
}

// UpdateProductUseCase handles product update logic. Price and cost edits
// apply to the catalog only; sale item snapshots are never rewritten.
type UpdateProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewUpdateProductUseCase creates a new UpdateProductUseCase instance.
func NewUpdateProductUseCase(productRepo adapter.ProductRepository) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		productRepo: productRepo,
	}
}

// Execute performs the product update.
func (uc *UpdateProductUseCase) Execute(ctx context.Context, input UpdateProductInput) (*UpdateProductOutput, error) {
	// Find the existing product
	product, err := uc.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, domainerror.ErrProductNotFound) {
			return nil, domainerror.NewProductError(
				domainerror.ErrCodeProductNotFound,
				"product not found",
				domainerror.ErrProductNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	// Check if user is authorized to modify this product
	if product.UserID != input.UserID {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeNotAuthorizedProduct,
			"not authorized to modify this product",
			domainerror.ErrNotAuthorizedToModifyProduct,
		)
	}

	// Update name if provided
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewProductError(
				domainerror.ErrCodeEmptyProductName,
				"product name cannot be empty",
				domainerror.ErrEmptyProductName,
			)
		}
		product.Name = name
	}

	// Update price if provided
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, domainerror.NewProductError(
				domainerror.ErrCodeNegativeProductPrice,
				"price cannot be negative",
				domainerror.ErrNegativeProductPrice,
			)
		}
		product.Price = *input.Price
	}

	// Update cost price if provided
	if input.CostPrice != nil {
		if input.CostPrice.IsNegative() {
			return nil, domainerror.NewProductError(
				domainerror.ErrCodeNegativeProductPrice,
				"cost price cannot be negative",
				domainerror.ErrNegativeProductPrice,
			)
		}
		product.CostPrice = *input.CostPrice
	}

	// Update category if provided
	if input.Category != nil {
		product.Category = *input.Category
	}

	// Update timestamp
	product.UpdatedAt = time.Now().UTC()

	// Save updated product
	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &UpdateProductOutput{
		Product: product,
	}, nil
}
