package stats

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCardFees(t *testing.T) {
	rates := Rates{CardRateCredit: d("3"), CardRateDebit: d("1.5")}

	t.Run("credit sale pays credit rate", func(t *testing.T) {
		sales := []SaleRecord{{Total: d("100"), PaymentMethod: "Crédito"}}
		if got := CardFees(sales, rates); !got.Equal(d("3")) {
			t.Errorf("CardFees = %s, want 3", got)
		}
	})

	t.Run("debit sale pays debit rate", func(t *testing.T) {
		sales := []SaleRecord{{Total: d("200"), PaymentMethod: "Débito"}}
		if got := CardFees(sales, rates); !got.Equal(d("3")) {
			t.Errorf("CardFees = %s, want 3", got)
		}
	})

	t.Run("pix and cash pay nothing", func(t *testing.T) {
		sales := []SaleRecord{
			{Total: d("500"), PaymentMethod: "PIX"},
			{Total: d("500"), PaymentMethod: "Dinheiro"},
		}
		if got := CardFees(sales, rates); !got.IsZero() {
			t.Errorf("CardFees = %s, want 0", got)
		}
	})

	t.Run("zero rate contributes zero", func(t *testing.T) {
		sales := []SaleRecord{{Total: d("100"), PaymentMethod: "Crédito"}}
		if got := CardFees(sales, Rates{}); !got.IsZero() {
			t.Errorf("CardFees with zero rates = %s, want 0", got)
		}
	})
}

func TestDeliveryCost(t *testing.T) {
	if got := DeliveryCost(2, d("50")); !got.Equal(d("100")) {
		t.Errorf("DeliveryCost(2, 50) = %s, want 100", got)
	}
	if got := DeliveryCost(0, d("50")); !got.IsZero() {
		t.Errorf("DeliveryCost(0, 50) = %s, want 0", got)
	}
	if got := DeliveryCost(-1, d("50")); !got.IsZero() {
		t.Errorf("DeliveryCost(-1, 50) = %s, want 0", got)
	}
}

func TestProductCost(t *testing.T) {
	items := []ItemCostRecord{
		{Qty: 3, UnitCost: d("2.50")},
		{Qty: 1, UnitCost: d("10")},
		{Qty: 5, UnitCost: decimal.Zero}, // product removed after the sale
	}
	if got := ProductCost(items); !got.Equal(d("17.5")) {
		t.Errorf("ProductCost = %s, want 17.5", got)
	}
}

func TestExpenseTotal(t *testing.T) {
	amounts := []decimal.Decimal{d("10.10"), d("0.90"), d("4")}
	if got := ExpenseTotal(amounts); !got.Equal(d("15")) {
		t.Errorf("ExpenseTotal = %s, want 15", got)
	}
	if got := ExpenseTotal(nil); !got.IsZero() {
		t.Errorf("ExpenseTotal(nil) = %s, want 0", got)
	}
}
