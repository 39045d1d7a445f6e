// Package sale contains sale-related use cases.
package sale

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pingoou/backend/internal/application/adapter"
	"github.com/pingoou/backend/internal/domain/entity"
	domainerror "github.com/pingoou/backend/internal/domain/error"
)

// CreateSaleItemInput is one line of a new sale.
type CreateSaleItemInput struct {
	ProductID uuid.UUID
	Qty       int
}

// CreateSaleInput represents the input for sale creation. Totals are always
// computed server-side from the current catalog; client-sent amounts are ignored.
type CreateSaleInput struct {
	UserID        uuid.UUID
	Items         []CreateSaleItemInput
	PaymentMethod entity.PaymentMethod
	IsDelivery    bool
	CreatedAt     time.Time // optional backdating; zero means now
}

// CreateSaleOutput represents the output of sale creation.
type CreateSaleOutput struct {
	Sale *entity.Sale
}

// CreateSaleUseCase handles sale creation logic. The sale row and its item
// rows are written in one transaction; a failure leaves nothing behind.
type CreateSaleUseCase struct {
	saleRepo    adapter.SaleRepository
	productRepo adapter.ProductRepository
	profileRepo adapter.ProfileRepository
	statsCache  adapter.StatsCache
}

// NewCreateSaleUseCase creates a new CreateSaleUseCase instance.
func NewCreateSaleUseCase(
	saleRepo adapter.SaleRepository,
	productRepo adapter.ProductRepository,
	profileRepo adapter.ProfileRepository,
	statsCache adapter.StatsCache,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		profileRepo: profileRepo,
		statsCache:  statsCache,
	}
}

// Execute performs the sale creation.
func (uc *CreateSaleUseCase) Execute(ctx context.Context, input CreateSaleInput) (*CreateSaleOutput, error) {
	// Validate payment method
	if !entity.ValidPaymentMethod(input.PaymentMethod) {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeInvalidPaymentMethod,
			"invalid payment method",
			domainerror.ErrInvalidPaymentMethod,
		)
	}

	// Validate items
	if len(input.Items) == 0 {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeEmptySaleItems,
			"sale must have at least one item",
			domainerror.ErrEmptySaleItems,
		)
	}
	ids := make([]uuid.UUID, 0, len(input.Items))
	for _, item := range input.Items {
		if item.Qty <= 0 {
			return nil, domainerror.NewSaleError(
				domainerror.ErrCodeInvalidItemQty,
				"item quantity must be positive",
				domainerror.ErrInvalidItemQty,
			)
		}
		ids = append(ids, item.ProductID)
	}

	// Resolve products and snapshot their current prices
	products, err := uc.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	subtotal := decimal.Zero
	for _, item := range input.Items {
		product, ok := products[item.ProductID]
		if !ok || product.UserID != input.UserID {
			return nil, domainerror.NewSaleError(
				domainerror.ErrCodeSaleProductNotFound,
				fmt.Sprintf("product %s not found", item.ProductID),
				domainerror.ErrSaleProductNotFound,
			)
		}
		subtotal = subtotal.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Qty))))
	}

	// Delivery sales charge the configured per-sale delivery fee
	taxaDelivery := decimal.Zero
	if input.IsDelivery {
		profile, err := uc.profileRepo.FindByUser(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load profile: %w", err)
		}
		taxaDelivery = profile.DeliveryFeeBRL
	}

	// Assemble the sale with price-at-sale snapshots
	sale := entity.NewSale(input.UserID, subtotal, taxaDelivery, input.PaymentMethod, input.IsDelivery, input.CreatedAt)
	for _, item := range input.Items {
		product := products[item.ProductID]
		sale.Items = append(sale.Items, entity.NewSaleItem(sale.ID, product.ID, item.Qty, product.Price))
	}

	// Persist sale and items atomically
	if err := uc.saleRepo.CreateWithItems(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}

	// Drop the cached dashboard so the next read sees this sale
	if uc.statsCache != nil {
		if err := uc.statsCache.InvalidateDashboard(ctx, input.UserID); err != nil {
			slog.Debug("dashboard cache invalidation failed", "userID", input.UserID, "error", err)
		}
	}

	return &CreateSaleOutput{
		Sale: sale,
	}, nil
}
