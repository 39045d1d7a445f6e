// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a catalog item sold at the point of sale.
// Price and cost edits never rewrite historical sale item snapshots.
type Product struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Price     decimal.Decimal
	CostPrice decimal.Decimal
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete so removed products stay resolvable from old sales
}

// NewProduct creates a new Product entity.
func NewProduct(userID uuid.UUID, name string, price, costPrice decimal.Decimal, category string) *Product {
	now := time.Now().UTC()
	return &Product{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Price:     price,
		CostPrice: costPrice,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
