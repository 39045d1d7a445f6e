// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod is the method a sale was paid with. Values keep the
// Portuguese labels the storefront uses.
type PaymentMethod string

const (
	PaymentMethodPix    PaymentMethod = "PIX"
	PaymentMethodCredit PaymentMethod = "Crédito"
	PaymentMethodDebit  PaymentMethod = "Débito"
	PaymentMethodCash   PaymentMethod = "Dinheiro"
)

// ValidPaymentMethod reports whether the method is one of the accepted values.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodPix, PaymentMethodCredit, PaymentMethodDebit, PaymentMethodCash:
		return true
	}
	return false
}

// Sale represents a completed sale. Total is computed once at creation
// (total = subtotal + taxa_delivery) and only changes through an explicit
// recompute on edit.
type Sale struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Subtotal      decimal.Decimal
	TaxaDelivery  decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod PaymentMethod
	IsDelivery    bool
	Items         []*SaleItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SaleItem is a line item of a sale. PriceAtSale snapshots the product
// price at sale time and is never recomputed from the current catalog.
type SaleItem struct {
	ID          uuid.UUID
	SaleID      uuid.UUID
	ProductID   uuid.UUID
	Qty         int
	PriceAtSale decimal.Decimal
}

// RemovedProductName is shown for items whose product was deleted after the sale.
const RemovedProductName = "Produto removido"

// NewSale assembles a sale from its parts. createdAt lets callers backdate a
// sale; zero means "now".
func NewSale(
	userID uuid.UUID,
	subtotal, taxaDelivery decimal.Decimal,
	paymentMethod PaymentMethod,
	isDelivery bool,
	createdAt time.Time,
) *Sale {
	now := time.Now().UTC()
	if createdAt.IsZero() {
		createdAt = now
	}
	return &Sale{
		ID:            uuid.New(),
		UserID:        userID,
		Subtotal:      subtotal,
		TaxaDelivery:  taxaDelivery,
		Total:         subtotal.Add(taxaDelivery),
		PaymentMethod: paymentMethod,
		IsDelivery:    isDelivery,
		CreatedAt:     createdAt,
		UpdatedAt:     now,
	}
}

// NewSaleItem creates a line item for the given sale.
func NewSaleItem(saleID, productID uuid.UUID, qty int, priceAtSale decimal.Decimal) *SaleItem {
	return &SaleItem{
		ID:          uuid.New(),
		SaleID:      saleID,
		ProductID:   productID,
		Qty:         qty,
		PriceAtSale: priceAtSale,
	}
}

// PaymentBucket classifies an arbitrary payment-method label into one of the
// four reporting buckets. Matching is case-insensitive substring matching;
// anything unrecognized counts as cash.
type PaymentBucket int

const (
	BucketCash PaymentBucket = iota
	BucketCredit
	BucketDebit
	BucketPix
)

// ClassifyPaymentMethod maps a payment-method label to its reporting bucket.
func ClassifyPaymentMethod(method string) PaymentBucket {
	m := strings.ToLower(method)
	switch {
	case strings.Contains(m, "crédito"):
		return BucketCredit
	case strings.Contains(m, "débito"):
		return BucketDebit
	case strings.Contains(m, "pix"):
		return BucketPix
	default:
		return BucketCash
	}
}
