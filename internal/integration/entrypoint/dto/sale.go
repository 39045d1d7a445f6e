// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pingoou/backend/internal/domain/entity"
)

// SaleItemRequest is one line item in a sale request.
type SaleItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Qty       int    `json:"qty" binding:"required,min=1"`
}

// CreateSaleRequest represents the request body for sale creation. No amounts
// are accepted; the server computes them from the catalog.
type CreateSaleRequest struct {
	Items         []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string            `json:"payment_method" binding:"required"`
	IsDelivery    bool              `json:"is_delivery"`
	CreatedAt     *time.Time        `json:"created_at"`
}

// UpdateSaleRequest represents the request body for sale update.
// Omitted fields keep their current value; items, when present, replace all lines.
type UpdateSaleRequest struct {
	Items         []SaleItemRequest `json:"items" binding:"omitempty,min=1,dive"`
	PaymentMethod *string           `json:"payment_method"`
	IsDelivery    *bool             `json:"is_delivery"`
	CreatedAt     *time.Time        `json:"created_at"`
}

// SaleItemResponse represents a sale line item in API responses.
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	Qty         int             `json:"qty"`
	PriceAtSale decimal.Decimal `json:"price_at_sale"`
}

// SaleResponse represents the sale data in API responses.
type SaleResponse struct {
	ID            string             `json:"id"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	TaxaDelivery  decimal.Decimal    `json:"taxa_delivery"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"payment_method"`
	IsDelivery    bool               `json:"is_delivery"`
	Items         []SaleItemResponse `json:"items,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

// SaleListResponse represents the response for sale listing.
type SaleListResponse struct {
	Sales []SaleResponse `json:"sales"`
}

// ToSaleResponse converts a domain Sale entity to a SaleResponse DTO.
func ToSaleResponse(sale *entity.Sale) SaleResponse {
	resp := SaleResponse{
		ID:            sale.ID.String(),
		Subtotal:      sale.Subtotal,
		TaxaDelivery:  sale.TaxaDelivery,
		Total:         sale.Total,
		PaymentMethod: string(sale.PaymentMethod),
		IsDelivery:    sale.IsDelivery,
		CreatedAt:     sale.CreatedAt,
	}
	for _, item := range sale.Items {
		resp.Items = append(resp.Items, SaleItemResponse{
			ID:          item.ID.String(),
			ProductID:   item.ProductID.String(),
			Qty:         item.Qty,
			PriceAtSale: item.PriceAtSale,
		})
	}
	return resp
}
