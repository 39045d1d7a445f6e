// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pingoou/backend/internal/domain/entity"
)

// CreateProductRequest represents the request body for product creation.
type CreateProductRequest struct {
	Name      string          `json:"name" binding:"required,min=1,max=255"`
	Price     decimal.Decimal `json:"price" binding:"required"`
	CostPrice decimal.Decimal `json:"cost_price"`
	Category  string          `json:"category" binding:"max=100"`
}

// UpdateProductRequest represents the request body for product update.
// Omitted fields keep their current value.
type UpdateProductRequest struct {
	Name      *string          `json:"name"`
	Price     *decimal.Decimal `json:"price"`
	CostPrice *decimal.Decimal `json:"cost_price"`
	Category  *string          `json:"category"`
}

// ProductResponse represents the product data in API responses.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	CostPrice decimal.Decimal `json:"cost_price"`
	Category  string          `json:"category,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse represents the response for product listing.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

// ToProductResponse converts a domain Product entity to a ProductResponse DTO.
func ToProductResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:        product.ID.String(),
		Name:      product.Name,
		Price:     product.Price,
		CostPrice: product.CostPrice,
		Category:  product.Category,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}
