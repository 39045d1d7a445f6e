// Package sale contains sale-related use cases.
package sale

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pingoou/backend/internal/application/adapter"
	"github.com/pingoou/backend/internal/domain/entity"
	domainerror "github.com/pingoou/backend/internal/domain/error"
)

// UpdateSaleInput represents the input for sale update.
type UpdateSaleInput struct {
	SaleID        uuid.UUID
	UserID        uuid.UUID
	PaymentMethod *entity.PaymentMethod // Optional
	IsDelivery    *bool                 // Optional
	CreatedAt     *time.Time            // Optional backdating
	Items         []CreateSaleItemInput // Optional; nil keeps existing items
}

// UpdateSaleOutput represents the output of sale update.
type UpdateSaleOutput struct {
	Sale *entity.Sale
}

// UpdateSaleUseCase handles sale edits. Replacing the items re-snapshots
// prices from the current catalog and recomputes the totals; other edits
// leave the original snapshots untouched.
type UpdateSaleUseCase struct {
	saleRepo    adapter.SaleRepository
	productRepo adapter.ProductRepository
	profileRepo adapter.ProfileRepository
	statsCache  adapter.StatsCache
}

// NewUpdateSaleUseCase creates a new UpdateSaleUseCase instance.
func NewUpdateSaleUseCase(
	saleRepo adapter.SaleRepository,
	productRepo adapter.ProductRepository,
	profileRepo adapter.ProfileRepository,
	statsCache adapter.StatsCache,
) *UpdateSaleUseCase {
	return &UpdateSaleUseCase{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		profileRepo: profileRepo,
		statsCache:  statsCache,
	}
}

// Execute performs the sale update.
func (uc *UpdateSaleUseCase) Execute(ctx context.Context, input UpdateSaleInput) (*UpdateSaleOutput, error) {
	// Find the existing sale
	sale, err := uc.saleRepo.FindByID(ctx, input.SaleID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSaleNotFound) {
			return nil, domainerror.NewSaleError(
				domainerror.ErrCodeSaleNotFound,
				"sale not found",
				domainerror.ErrSaleNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find sale: %w", err)
	}

	// Check if user is authorized to modify this sale
	if sale.UserID != input.UserID {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeNotAuthorizedSale,
			"not authorized to modify this sale",
			domainerror.ErrNotAuthorizedToModifySale,
		)
	}

	// Update payment method if provided
	if input.PaymentMethod != nil {
		if !entity.ValidPaymentMethod(*input.PaymentMethod) {
			return nil, domainerror.NewSaleError(
				domainerror.ErrCodeInvalidPaymentMethod,
				"invalid payment method",
				domainerror.ErrInvalidPaymentMethod,
			)
		}
		sale.PaymentMethod = *input.PaymentMethod
	}

	// Update delivery flag if provided
	if input.IsDelivery != nil {
		sale.IsDelivery = *input.IsDelivery
	}

	// Update creation date if provided
	if input.CreatedAt != nil {
		sale.CreatedAt = *input.CreatedAt
	}

	// Replace items if provided, re-snapshotting current prices
	var newItems []*entity.SaleItem
	if input.Items != nil {
		newItems, err = uc.buildItems(ctx, sale, input.Items)
		if err != nil {
			return nil, err
		}
		sale.Items = newItems
	}

	// Recompute totals: delivery fee follows the current flag and profile
	taxaDelivery := decimal.Zero
	if sale.IsDelivery {
		profile, err := uc.profileRepo.FindByUser(ctx, sale.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load profile: %w", err)
		}
		taxaDelivery = profile.DeliveryFeeBRL
	}
	subtotal := decimal.Zero
	for _, item := range sale.Items {
		subtotal = subtotal.Add(item.PriceAtSale.Mul(decimal.NewFromInt(int64(item.Qty))))
	}
	sale.Subtotal = subtotal
	sale.TaxaDelivery = taxaDelivery
	sale.Total = subtotal.Add(taxaDelivery)
	sale.UpdatedAt = time.Now().UTC()

	// Persist header and, when replaced, items atomically
	if err := uc.saleRepo.Update(ctx, sale, newItems); err != nil {
		return nil, fmt.Errorf("failed to update sale: %w", err)
	}

	// Drop the cached dashboard so the next read sees the edit
	if uc.statsCache != nil {
		if err := uc.statsCache.InvalidateDashboard(ctx, sale.UserID); err != nil {
			slog.Debug("dashboard cache invalidation failed", "userID", sale.UserID, "error", err)
		}
	}

	return &UpdateSaleOutput{
		Sale: sale,
	}, nil
}

func (uc *UpdateSaleUseCase) buildItems(ctx context.Context, sale *entity.Sale, inputs []CreateSaleItemInput) ([]*entity.SaleItem, error) {
	if len(inputs) == 0 {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeEmptySaleItems,
			"sale must have at least one item",
			domainerror.ErrEmptySaleItems,
		)
	}

	ids := make([]uuid.UUID, 0, len(inputs))
	for _, item := range inputs {
		if item.Qty <= 0 {
			return nil, domainerror.NewSaleError(
				domainerror.ErrCodeInvalidItemQty,
				"item quantity must be positive",
				domainerror.ErrInvalidItemQty,
			)
		}
		ids = append(ids, item.ProductID)
	}

	products, err := uc.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	items := make([]*entity.SaleItem, 0, len(inputs))
	for _, item := range inputs {
		product, ok := products[item.ProductID]
		if !ok || product.UserID != sale.UserID {
			return nil, domainerror.NewSaleError(
				domainerror.ErrCodeSaleProductNotFound,
				fmt.Sprintf("product %s not found", item.ProductID),
				domainerror.ErrSaleProductNotFound,
			)
		}
		items = append(items, entity.NewSaleItem(sale.ID, product.ID, item.Qty, product.Price))
	}
	return items, nil
}
