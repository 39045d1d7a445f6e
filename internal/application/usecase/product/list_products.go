// Package product contains catalog-related use cases.
package product

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pingoou/backend/internal/application/adapter"
	"github.com/pingoou/backend/internal/domain/entity"
)

// ListProductsInput represents the input for product listing.
type ListProductsInput struct {
	UserID uuid.UUID
}

// ListProductsOutput represents the output of product listing.
type ListProductsOutput struct {
	Products []*entity.Product
}

// ListProductsUseCase handles product listing logic.
type ListProductsUseCase struct {
	productRepo adapter.ProductRepository
}

// NewListProductsUseCase creates a new ListProductsUseCase instance.
func NewListProductsUseCase(productRepo adapter.ProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
	}
}

// Execute returns the merchant's catalog, soft-deleted products excluded.
func (uc *ListProductsUseCase) Execute(ctx context.Context, input ListProductsInput) (*ListProductsOutput, error) {
	products, err := uc.productRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return &ListProductsOutput{
		Products: products,
	}, nil
}
