// Package product contains catalog-related use cases.
package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pingoou/backend/internal/application/adapter"
	domainerror "github.com/pingoou/backend/internal/domain/error"
)

// DeleteProductInput represents the input for product deletion.
type DeleteProductInput struct {
	ProductID uuid.UUID
	UserID    uuid.UUID
}

// DeleteProductOutput represents the output of product deletion.
type DeleteProductOutput struct {
	Success bool
}

// DeleteProductUseCase handles product deletion logic. Deletion is soft so
// historical sales keep resolving the product; cost aggregation treats the
// deleted product's lines as zero cost from then on.
type DeleteProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewDeleteProductUseCase creates a new DeleteProductUseCase instance.
func NewDeleteProductUseCase(productRepo adapter.ProductRepository) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productRepo: productRepo,
	}
}

// Execute performs the product deletion.
func (uc *DeleteProductUseCase) Execute(ctx context.Context, input DeleteProductInput) (*DeleteProductOutput, error) {
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

	// Check if user is authorized to delete this product
	if product.UserID != input.UserID {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeNotAuthorizedProduct,
			"not authorized to delete this product",
			domainerror.ErrNotAuthorizedToModifyProduct,
		)
	}

	// Soft delete the product
	if err := uc.productRepo.Delete(ctx, input.ProductID); err != nil {
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}

	return &DeleteProductOutput{
		Success: true,
	}, nil
}
