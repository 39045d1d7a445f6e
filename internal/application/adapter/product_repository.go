// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pingoou/backend/internal/domain/entity"
)

// ProductRepository defines the interface for product persistence operations.
type ProductRepository interface {
	// Create creates a new product in the database.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs retrieves products by their IDs, keyed by ID. Missing or
	// soft-deleted products are simply absent from the map.
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error)

	// FindByUser retrieves all products for a given user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error)

	// Update updates an existing product in the database.
	Update(ctx context.Context, product *entity.Product) error

	// Delete soft-deletes a product.
	Delete(ctx context.Context, id uuid.UUID) error
}
