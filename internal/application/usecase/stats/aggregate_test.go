package stats

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAggregate_CashOnlyDay(t *testing.T) {
	// Two cash sales: 10.00 and 20.00.
	snap := Snapshot{
		Sales: []SaleRecord{
			{Total: d("10.00"), PaymentMethod: "Dinheiro"},
			{Total: d("20.00"), PaymentMethod: "Dinheiro"},
		},
	}
	got := Aggregate(snap)

	if !got.TotalRevenue.Equal(d("30.00")) {
		t.Errorf("TotalRevenue = %s, want 30.00", got.TotalRevenue)
	}
	if got.TotalSales != 2 {
		t.Errorf("TotalSales = %d, want 2", got.TotalSales)
	}
	if !got.TicketAverage.Equal(d("15")) {
		t.Errorf("TicketAverage = %s, want 15", got.TicketAverage)
	}
	if got.PaymentMix.Cash != 100 {
		t.Errorf("PaymentMix.Cash = %d, want 100", got.PaymentMix.Cash)
	}
	if !got.CardFees.IsZero() {
		t.Errorf("CardFees = %s, want 0", got.CardFees)
	}
}

func TestAggregate_CreditFee(t *testing.T) {
	// One 100.00 credit sale at a 3% credit rate.
	snap := Snapshot{
		Sales: []SaleRecord{{Total: d("100.00"), PaymentMethod: "Crédito"}},
		Rates: Rates{CardRateCredit: d("3")},
	}
	got := Aggregate(snap)

	if !got.CardFees.Equal(d("3")) {
		t.Errorf("CardFees = %s, want 3", got.CardFees)
	}
	if !got.NetProfit.Equal(d("97")) {
		t.Errorf("NetProfit = %s, want 97", got.NetProfit)
	}
}

func TestAggregate_DeliveryDays(t *testing.T) {
	// Two worked days at 50/day.
	snap := Snapshot{
		WorkedDays: 2,
		DailyCost:  d("50"),
	}
	got := Aggregate(snap)

	if !got.DeliveryCosts.Equal(d("100")) {
		t.Errorf("DeliveryCosts = %s, want 100", got.DeliveryCosts)
	}
}

func TestAggregate_EmptyPeriod(t *testing.T) {
	got := Aggregate(Snapshot{})

	if !got.TotalRevenue.IsZero() {
		t.Errorf("TotalRevenue = %s, want 0", got.TotalRevenue)
	}
	if !got.TicketAverage.IsZero() {
		t.Errorf("TicketAverage = %s, want 0 (no division error)", got.TicketAverage)
	}
	if got.PaymentMix != (PaymentMix{}) {
		t.Errorf("PaymentMix = %+v, want all zeros", got.PaymentMix)
	}
}

func TestAggregate_NetProfitIsExactSubtraction(t *testing.T) {
	snap := Snapshot{
		Sales:          []SaleRecord{{Total: d("10.01"), PaymentMethod: "PIX"}},
		ExpenseAmounts: []decimal.Decimal{d("10.02")},
	}
	got := Aggregate(snap)

	// Negative profit stays negative; no clamping, no hidden rounding.
	if !got.NetProfit.Equal(got.TotalRevenue.Sub(got.TotalCosts)) {
		t.Errorf("NetProfit = %s, want revenue-costs = %s", got.NetProfit, got.TotalRevenue.Sub(got.TotalCosts))
	}
	if !got.NetProfit.Equal(d("-0.01")) {
		t.Errorf("NetProfit = %s, want -0.01", got.NetProfit)
	}
}

func TestAggregate_PaymentMixClassification(t *testing.T) {
	snap := Snapshot{
		Sales: []SaleRecord{
			{Total: d("1"), PaymentMethod: "Cartão de Crédito"}, // substring match
			{Total: d("1"), PaymentMethod: "pix"},
			{Total: d("1"), PaymentMethod: "Vale"}, // unrecognized -> cash
		},
	}
	got := Aggregate(snap).PaymentMix

	if got.Credit != 33 || got.Pix != 33 || got.Cash != 33 || got.Debit != 0 {
		t.Errorf("PaymentMix = %+v, want credit/pix/cash at 33 each", got)
	}
}

func TestAggregate_PaymentMixBounds(t *testing.T) {
	// Independent rounding may miss 100 but every bucket stays in [0, 100].
	snap := Snapshot{
		Sales: []SaleRecord{
			{Total: d("1"), PaymentMethod: "Crédito"},
			{Total: d("1"), PaymentMethod: "Débito"},
			{Total: d("1"), PaymentMethod: "PIX"},
			{Total: d("1"), PaymentMethod: "Dinheiro"},
			{Total: d("1"), PaymentMethod: "Dinheiro"},
			{Total: d("1"), PaymentMethod: "Dinheiro"},
		},
	}
	mix := Aggregate(snap).PaymentMix

	for name, v := range map[string]int{"credit": mix.Credit, "debit": mix.Debit, "pix": mix.Pix, "cash": mix.Cash} {
		if v < 0 || v > 100 {
			t.Errorf("bucket %s = %d, outside [0, 100]", name, v)
		}
	}

	sum := mix.Credit + mix.Debit + mix.Pix + mix.Cash
	if sum < 100-12 || sum > 100+12 {
		t.Errorf("mix sum = %d, drifted more than rounding allows", sum)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	snap := Snapshot{
		Sales: []SaleRecord{
			{Total: d("12.34"), PaymentMethod: "Crédito"},
			{Total: d("56.78"), PaymentMethod: "PIX"},
		},
		ItemCosts:      []ItemCostRecord{{Qty: 2, UnitCost: d("1.11")}},
		ExpenseAmounts: []decimal.Decimal{d("9.99")},
		WorkedDays:     1,
		Rates:          Rates{CardRateCredit: d("2.5")},
		DailyCost:      d("40"),
	}

	first := Aggregate(snap)
	second := Aggregate(snap)

	if !first.TotalRevenue.Equal(second.TotalRevenue) ||
		!first.TotalCosts.Equal(second.TotalCosts) ||
		!first.NetProfit.Equal(second.NetProfit) ||
		first.PaymentMix != second.PaymentMix {
		t.Errorf("aggregation not idempotent:\nfirst  %+v\nsecond %+v", first, second)
	}
}
