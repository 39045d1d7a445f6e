package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pingoou/backend/internal/domain/entity"
	domainerror "github.com/pingoou/backend/internal/domain/error"
	"github.com/pingoou/backend/internal/integration/persistence/model"
)

// newTestDB opens a private in-memory database migrated with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	dbSQL, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	dbSQL.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open gorm: %v", err)
	}

	err = db.AutoMigrate(
		&model.UserModel{},
		&model.ProductModel{},
		&model.SaleModel{},
		&model.SaleItemModel{},
		&model.ExpenseModel{},
		&model.DeliveryWorkDayModel{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() { _ = dbSQL.Close() })
	return db
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSaleRepository_CreateWithItems(t *testing.T) {
	db := newTestDB(t)
	repo := NewSaleRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	sale := entity.NewSale(userID, dec("30.00"), dec("6.00"), entity.PaymentMethodPix, true, time.Time{})
	sale.Items = []*entity.SaleItem{
		entity.NewSaleItem(sale.ID, uuid.New(), 2, dec("10.00")),
		entity.NewSaleItem(sale.ID, uuid.New(), 1, dec("10.00")),
	}

	if err := repo.CreateWithItems(ctx, sale); err != nil {
		t.Fatalf("CreateWithItems: %v", err)
	}

	got, err := repo.FindByID(ctx, sale.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if !got.Total.Equal(dec("36.00")) {
		t.Errorf("Total = %s, want 36.00", got.Total)
	}
	if len(got.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(got.Items))
	}

	last, err := repo.LastSaleAt(ctx, userID)
	if err != nil {
		t.Fatalf("LastSaleAt: %v", err)
	}
	if last == nil {
		t.Fatal("LastSaleAt = nil, want timestamp")
	}
}

func TestSaleRepository_LastSaleAt_NoSales(t *testing.T) {
	db := newTestDB(t)
	repo := NewSaleRepository(db)

	last, err := repo.LastSaleAt(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("LastSaleAt: %v", err)
	}
	if last != nil {
		t.Errorf("LastSaleAt = %v, want nil", last)
	}
}

func TestSaleRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewSaleRepository(db)
	ctx := context.Background()

	sale := entity.NewSale(uuid.New(), dec("10.00"), dec("0"), entity.PaymentMethodCash, false, time.Time{})
	sale.Items = []*entity.SaleItem{entity.NewSaleItem(sale.ID, uuid.New(), 1, dec("10.00"))}
	if err := repo.CreateWithItems(ctx, sale); err != nil {
		t.Fatalf("CreateWithItems: %v", err)
	}

	t.Run("nil items keeps existing lines", func(t *testing.T) {
		sale.PaymentMethod = entity.PaymentMethodPix
		if err := repo.Update(ctx, sale, nil); err != nil {
			t.Fatalf("Update: %v", err)
		}

		got, err := repo.FindByID(ctx, sale.ID)
		if err != nil {
			t.Fatalf("FindByID: %v", err)
		}
		if got.PaymentMethod != entity.PaymentMethodPix {
			t.Errorf("PaymentMethod = %s, want PIX", got.PaymentMethod)
		}
		if len(got.Items) != 1 {
			t.Errorf("len(Items) = %d, want 1", len(got.Items))
		}
	})

	t.Run("non-nil items replaces all lines", func(t *testing.T) {
		newItems := []*entity.SaleItem{
			entity.NewSaleItem(sale.ID, uuid.New(), 3, dec("5.00")),
			entity.NewSaleItem(sale.ID, uuid.New(), 1, dec("2.50")),
		}
		if err := repo.Update(ctx, sale, newItems); err != nil {
			t.Fatalf("Update: %v", err)
		}

		got, err := repo.FindByID(ctx, sale.ID)
		if err != nil {
			t.Fatalf("FindByID: %v", err)
		}
		if len(got.Items) != 2 {
			t.Fatalf("len(Items) = %d, want 2", len(got.Items))
		}
	})
}

func TestSaleRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewSaleRepository(db)
	ctx := context.Background()

	sale := entity.NewSale(uuid.New(), dec("10.00"), dec("0"), entity.PaymentMethodCash, false, time.Time{})
	sale.Items = []*entity.SaleItem{entity.NewSaleItem(sale.ID, uuid.New(), 1, dec("10.00"))}
	if err := repo.CreateWithItems(ctx, sale); err != nil {
		t.Fatalf("CreateWithItems: %v", err)
	}

	if err := repo.Delete(ctx, sale.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := repo.FindByID(ctx, sale.ID); !errors.Is(err, domainerror.ErrSaleNotFound) {
		t.Errorf("FindByID after delete = %v, want ErrSaleNotFound", err)
	}

	var itemCount int64
	if err := db.Model(&model.SaleItemModel{}).Where("sale_id = ?", sale.ID).Count(&itemCount).Error; err != nil {
		t.Fatalf("count items: %v", err)
	}
	if itemCount != 0 {
		t.Errorf("orphan items = %d, want 0", itemCount)
	}
}

func TestProductRepository_FindByIDs_SkipsSoftDeleted(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	kept := entity.NewProduct(userID, "Açaí 500ml", dec("15.00"), dec("6.00"), "Açaí")
	removed := entity.NewProduct(userID, "Copo extra", dec("2.00"), dec("0.50"), "")
	for _, p := range []*entity.Product{kept, removed} {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if err := repo.Delete(ctx, removed.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	found, err := repo.FindByIDs(ctx, []uuid.UUID{kept.ID, removed.ID})
	if err != nil {
		t.Fatalf("FindByIDs: %v", err)
	}
	if _, ok := found[kept.ID]; !ok {
		t.Error("kept product missing from result")
	}
	if _, ok := found[removed.ID]; ok {
		t.Error("soft-deleted product present in result")
	}
}

func TestStatsRepository_ItemCostsInRange(t *testing.T) {
	db := newTestDB(t)
	products := NewProductRepository(db)
	sales := NewSaleRepository(db)
	repo := NewStatsRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	live := entity.NewProduct(userID, "Açaí 300ml", dec("10.00"), dec("4.00"), "Açaí")
	gone := entity.NewProduct(userID, "Brownie", dec("8.00"), dec("3.00"), "Doces")
	for _, p := range []*entity.Product{live, gone} {
		if err := products.Create(ctx, p); err != nil {
			t.Fatalf("Create product: %v", err)
		}
	}

	sale := entity.NewSale(userID, dec("28.00"), dec("0"), entity.PaymentMethodPix, false, time.Time{})
	sale.Items = []*entity.SaleItem{
		entity.NewSaleItem(sale.ID, live.ID, 2, dec("10.00")),
		entity.NewSaleItem(sale.ID, gone.ID, 1, dec("8.00")),
	}
	if err := sales.CreateWithItems(ctx, sale); err != nil {
		t.Fatalf("CreateWithItems: %v", err)
	}
	if err := products.Delete(ctx, gone.ID); err != nil {
		t.Fatalf("Delete product: %v", err)
	}

	start := time.Now().UTC().Add(-time.Hour)
	end := time.Now().UTC().Add(time.Hour)
	records, err := repo.ItemCostsInRange(ctx, userID, start, end)
	if err != nil {
		t.Fatalf("ItemCostsInRange: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}

	// The line whose product survives carries the live catalog cost; the
	// soft-deleted one resolves to zero.
	byQty := map[int]decimal.Decimal{}
	for _, rec := range records {
		byQty[rec.Qty] = rec.UnitCost
	}
	if !byQty[2].Equal(dec("4.00")) {
		t.Errorf("live unit cost = %s, want 4.00", byQty[2])
	}
	if !byQty[1].IsZero() {
		t.Errorf("deleted unit cost = %s, want 0", byQty[1])
	}
}

func TestDataReset_WipeUserData(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()

	products := NewProductRepository(db)
	sales := NewSaleRepository(db)
	expenses := NewExpenseRepository(db)
	workDays := NewDeliveryRepository(db)

	product := entity.NewProduct(userID, "Açaí 500ml", dec("15.00"), dec("6.00"), "Açaí")
	if err := products.Create(ctx, product); err != nil {
		t.Fatalf("Create product: %v", err)
	}

	sale := entity.NewSale(userID, dec("15.00"), dec("0"), entity.PaymentMethodPix, false, time.Time{})
	sale.Items = []*entity.SaleItem{entity.NewSaleItem(sale.ID, product.ID, 1, dec("15.00"))}
	if err := sales.CreateWithItems(ctx, sale); err != nil {
		t.Fatalf("CreateWithItems: %v", err)
	}

	expense := entity.NewExpense(userID, "Copos", dec("45.90"), "Insumos", time.Now().UTC())
	if err := expenses.Create(ctx, expense); err != nil {
		t.Fatalf("Create expense: %v", err)
	}

	day := entity.NewDeliveryWorkDay(userID, time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC))
	if err := workDays.Create(ctx, day); err != nil {
		t.Fatalf("Create work day: %v", err)
	}

	otherSale := entity.NewSale(otherID, dec("9.00"), dec("0"), entity.PaymentMethodCash, false, time.Time{})
	if err := sales.CreateWithItems(ctx, otherSale); err != nil {
		t.Fatalf("CreateWithItems other: %v", err)
	}

	if err := NewDataReset(db).WipeUserData(ctx, userID); err != nil {
		t.Fatalf("WipeUserData: %v", err)
	}

	for _, check := range []struct {
		name  string
		model any
	}{
		{"sales", &model.SaleModel{}},
		{"expenses", &model.ExpenseModel{}},
		{"work_days", &model.DeliveryWorkDayModel{}},
	} {
		var count int64
		if err := db.Model(check.model).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			t.Fatalf("count %s: %v", check.name, err)
		}
		if count != 0 {
			t.Errorf("%s rows for user = %d, want 0", check.name, count)
		}
	}

	var itemCount int64
	if err := db.Model(&model.SaleItemModel{}).Where("sale_id = ?", sale.ID).Count(&itemCount).Error; err != nil {
		t.Fatalf("count sale items: %v", err)
	}
	if itemCount != 0 {
		t.Errorf("sale item rows for user = %d, want 0", itemCount)
	}

	// Products are wiped unscoped, soft-deleted ones included.
	var productCount int64
	if err := db.Unscoped().Model(&model.ProductModel{}).Where("user_id = ?", userID).Count(&productCount).Error; err != nil {
		t.Fatalf("count products: %v", err)
	}
	if productCount != 0 {
		t.Errorf("product rows for user = %d, want 0", productCount)
	}

	// Other merchants are untouched.
	var otherCount int64
	if err := db.Model(&model.SaleModel{}).Where("user_id = ?", otherID).Count(&otherCount).Error; err != nil {
		t.Fatalf("count other sales: %v", err)
	}
	if otherCount != 1 {
		t.Errorf("other merchant sales = %d, want 1", otherCount)
	}
}
