// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pingoou/backend/internal/domain/entity"
)

// SaleRepository defines the interface for sale persistence operations.
// Create and delete span the sale row and its item rows inside a single
// database transaction; there is no partially written sale.
type SaleRepository interface {
	// CreateWithItems creates a sale and its line items atomically.
	CreateWithItems(ctx context.Context, sale *entity.Sale) error

	// FindByID retrieves a sale with its items by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)

	// FindByUser retrieves all sales for a given user, newest first (no items).
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Sale, error)

	// Update persists sale header changes and, when items is non-nil,
	// replaces all line items atomically.
	Update(ctx context.Context, sale *entity.Sale, items []*entity.SaleItem) error

	// Delete removes a sale and its items atomically.
	Delete(ctx context.Context, id uuid.UUID) error

	// LastSaleAt returns the timestamp of the user's most recent sale,
	// or nil when the user never sold anything.
	LastSaleAt(ctx context.Context, userID uuid.UUID) (*time.Time, error)
}
