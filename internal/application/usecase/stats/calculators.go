// Package stats contains the financial aggregation use cases.
package stats

import (
	"github.com/shopspring/decimal"

	"github.com/pingoou/backend/internal/domain/entity"
)

// SaleRecord is the slice of a sale the aggregation engine needs.
type SaleRecord struct {
	Total         decimal.Decimal
	PaymentMethod string
}

// ItemCostRecord is a sale line item joined to the product's *current* cost.
// UnitCost is zero when the product was removed after the sale. Joining to
// current cost instead of a snapshot is preserved behavior; see DESIGN.md.
type ItemCostRecord struct {
	Qty      int
	UnitCost decimal.Decimal
}

// Rates are the merchant's card fee percentages.
type Rates struct {
	CardRateCredit decimal.Decimal
	CardRateDebit  decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// CardFees sums the percentage-based fee of card-paid sales. Only exact
// Crédito/Débito methods carry a fee; everything else contributes zero.
func CardFees(sales []SaleRecord, rates Rates) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sales {
		switch entity.PaymentMethod(s.PaymentMethod) {
		case entity.PaymentMethodCredit:
			total = total.Add(s.Total.Mul(rates.CardRateCredit).Div(hundred))
		case entity.PaymentMethodDebit:
			total = total.Add(s.Total.Mul(rates.CardRateDebit).Div(hundred))
		}
	}
	return total
}

// DeliveryCost is the flat daily staffing cost: worked days × daily rate,
// independent of how many deliveries each day carried.
func DeliveryCost(workedDays int, dailyCost decimal.Decimal) decimal.Decimal {
	if workedDays <= 0 {
		return decimal.Zero
	}
	return dailyCost.Mul(decimal.NewFromInt(int64(workedDays)))
}

// ProductCost sums qty × current unit cost across the period's line items.
func ProductCost(items []ItemCostRecord) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.UnitCost.Mul(decimal.NewFromInt(int64(it.Qty))))
	}
	return total
}

// ExpenseTotal sums manual expense amounts.
func ExpenseTotal(amounts []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
