// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pingoou/backend/internal/application/adapter"
	"github.com/pingoou/backend/internal/integration/persistence/model"
)

// dataReset implements the adapter.DataReset interface.
type dataReset struct {
	db *gorm.DB
}

// NewDataReset creates a new data reset instance.
func NewDataReset(db *gorm.DB) adapter.DataReset {
	return &dataReset{
		db: db,
	}
}

// WipeUserData removes all operational rows belonging to the user in one
// transaction. Products are hard-deleted here: with the sales gone there is
// no history left for a soft-deleted product to serve.
func (d *dataReset) WipeUserData(ctx context.Context, userID uuid.UUID) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("sale_id IN (?)", tx.Model(&model.SaleModel{}).Select("id").Where("user_id = ?", userID)).
			Delete(&model.SaleItemModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&model.SaleModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&model.ExpenseModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&model.DeliveryWorkDayModel{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&model.ProductModel{}).Error; err != nil {
			return err
		}
		return nil
	})
}
