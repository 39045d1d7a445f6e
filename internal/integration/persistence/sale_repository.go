// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pingoou/backend/internal/application/adapter"
	"github.com/pingoou/backend/internal/domain/entity"
	domainerror "github.com/pingoou/backend/internal/domain/error"
	"github.com/pingoou/backend/internal/integration/persistence/model"
)

// saleRepository implements the adapter.SaleRepository interface. Writes that
// touch both the sale and its items run inside one transaction.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository instance.
func NewSaleRepository(db *gorm.DB) adapter.SaleRepository {
	return &saleRepository{
		db: db,
	}
}

// CreateWithItems creates a sale and its line items atomically.
func (r *saleRepository) CreateWithItems(ctx context.Context, sale *entity.Sale) error {
	saleModel := model.SaleFromEntity(sale)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := saleModel.Items
		saleModel.Items = nil
		if err := tx.Create(saleModel).Error; err != nil {
			return err
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID retrieves a sale with its items by ID.
func (r *saleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var saleModel model.SaleModel
	result := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&saleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSaleNotFound
		}
		return nil, result.Error
	}
	return saleModel.ToEntity(), nil
}

// FindByUser retrieves all sales for a given user, newest first, without items.
func (r *saleRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Sale, error) {
	var saleModels []model.SaleModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&saleModels)
	if result.Error != nil {
		return nil, result.Error
	}

	sales := make([]*entity.Sale, 0, len(saleModels))
	for i := range saleModels {
		sales = append(sales, saleModels[i].ToEntity())
	}
	return sales, nil
}

// Update persists sale header changes and, when items is non-nil, replaces
// all line items atomically.
func (r *saleRepository) Update(ctx context.Context, sale *entity.Sale, items []*entity.SaleItem) error {
	saleModel := model.SaleFromEntity(sale)
	saleModel.Items = nil
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(saleModel).Error; err != nil {
			return err
		}
		if items == nil {
			return nil
		}
		if err := tx.Where("sale_id = ?", sale.ID).Delete(&model.SaleItemModel{}).Error; err != nil {
			return err
		}
		itemModels := make([]model.SaleItemModel, 0, len(items))
		for _, item := range items {
			itemModels = append(itemModels, *model.SaleItemFromEntity(item))
		}
		if len(itemModels) > 0 {
			if err := tx.Create(&itemModels).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a sale and its items atomically.
func (r *saleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sale_id = ?", id).Delete(&model.SaleItemModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.SaleModel{}, "id = ?", id).Error
	})
}

// LastSaleAt returns the timestamp of the user's most recent sale, or nil
// when the user never sold anything.
func (r *saleRepository) LastSaleAt(ctx context.Context, userID uuid.UUID) (*time.Time, error) {
	var saleModel model.SaleModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&saleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &saleModel.CreatedAt, nil
}
