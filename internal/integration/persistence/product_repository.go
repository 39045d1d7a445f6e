// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pingoou/backend/internal/application/adapter"
	"github.com/pingoou/backend/internal/domain/entity"
	domainerror "github.com/pingoou/backend/internal/domain/error"
	"github.com/pingoou/backend/internal/integration/persistence/model"
)

// productRepository implements the adapter.ProductRepository interface.
// Deletes are soft; gorm's DeletedAt filter hides removed products from the
// default scopes automatically.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository instance.
func NewProductRepository(db *gorm.DB) adapter.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Create creates a new product in the database.
func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productModel := model.ProductFromEntity(product)
	result := r.db.WithContext(ctx).Create(productModel)
	return result.Error
}

// FindByID retrieves a product by its ID.
func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productModel model.ProductModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&productModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProductNotFound
		}
		return nil, result.Error
	}
	return productModel.ToEntity(), nil
}

// FindByIDs retrieves products by their IDs, keyed by ID. Missing or
// soft-deleted products are simply absent from the map.
func (r *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error) {
	var productModels []model.ProductModel
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&productModels)
	if result.Error != nil {
		return nil, result.Error
	}

	products := make(map[uuid.UUID]*entity.Product, len(productModels))
	for i := range productModels {
		products[productModels[i].ID] = productModels[i].ToEntity()
	}
	return products, nil
}

// FindByUser retrieves all products for a given user, newest first.
func (r *productRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error) {
	var productModels []model.ProductModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&productModels)
	if result.Error != nil {
		return nil, result.Error
	}

	products := make([]*entity.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, productModels[i].ToEntity())
	}
	return products, nil
}

// Update updates an existing product in the database.
func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productModel := model.ProductFromEntity(product)
	result := r.db.WithContext(ctx).Save(productModel)
	return result.Error
}

// Delete soft-deletes a product.
func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ProductModel{}, "id = ?", id)
	return result.Error
}
