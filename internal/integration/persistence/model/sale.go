// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pingoou/backend/internal/domain/entity"
)

// SaleModel represents the sales table in the database.
type SaleModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TaxaDelivery  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentMethod string          `gorm:"type:varchar(30);not null"`
	IsDelivery    bool            `gorm:"default:false"`
	CreatedAt     time.Time       `gorm:"not null;index"`
	UpdatedAt     time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Items []SaleItemModel `gorm:"foreignKey:SaleID;references:ID"`
}

// TableName returns the table name for the SaleModel.
func (SaleModel) TableName() string {
	return "sales"
}

// ToEntity converts a SaleModel to a domain Sale entity.
func (m *SaleModel) ToEntity() *entity.Sale {
	sale := &entity.Sale{
		ID:            m.ID,
		UserID:        m.UserID,
		Subtotal:      m.Subtotal,
		TaxaDelivery:  m.TaxaDelivery,
		Total:         m.Total,
		PaymentMethod: entity.PaymentMethod(m.PaymentMethod),
		IsDelivery:    m.IsDelivery,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	for i := range m.Items {
		sale.Items = append(sale.Items, m.Items[i].ToEntity())
	}
	return sale
}

// SaleFromEntity creates a SaleModel from a domain Sale entity, items included.
func SaleFromEntity(sale *entity.Sale) *SaleModel {
	m := &SaleModel{
		ID:            sale.ID,
		UserID:        sale.UserID,
		Subtotal:      sale.Subtotal,
		TaxaDelivery:  sale.TaxaDelivery,
		Total:         sale.Total,
		PaymentMethod: string(sale.PaymentMethod),
		IsDelivery:    sale.IsDelivery,
		CreatedAt:     sale.CreatedAt,
		UpdatedAt:     sale.UpdatedAt,
	}
	for _, item := range sale.Items {
		m.Items = append(m.Items, *SaleItemFromEntity(item))
	}
	return m
}

// SaleItemModel represents the sale_items table in the database.
type SaleItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SaleID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Qty         int             `gorm:"not null"`
	PriceAtSale decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// TableName returns the table name for the SaleItemModel.
func (SaleItemModel) TableName() string {
	return "sale_items"
}

// ToEntity converts a SaleItemModel to a domain SaleItem entity.
func (m *SaleItemModel) ToEntity() *entity.SaleItem {
	return &entity.SaleItem{
		ID:          m.ID,
		SaleID:      m.SaleID,
		ProductID:   m.ProductID,
		Qty:         m.Qty,
		PriceAtSale: m.PriceAtSale,
	}
}

// SaleItemFromEntity creates a SaleItemModel from a domain SaleItem entity.
func SaleItemFromEntity(item *entity.SaleItem) *SaleItemModel {
	return &SaleItemModel{
		ID:          item.ID,
		SaleID:      item.SaleID,
		ProductID:   item.ProductID,
		Qty:         item.Qty,
		PriceAtSale: item.PriceAtSale,
	}
}
