// Package stats contains the financial aggregation use cases.
package stats

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/pingoou/backend/internal/domain/entity"
)

// PaymentMix is the percentage distribution of sales across payment buckets.
// Each bucket is rounded independently, so the four values need not sum to 100.
type PaymentMix struct {
	Credit int `json:"credit"`
	Debit  int `json:"debit"`
	Pix    int `json:"pix"`
	Cash   int `json:"cash"`
}

// FinancialSummary is the engine's output for one resolved period.
type FinancialSummary struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalSales    int             `json:"total_sales"`
	TicketAverage decimal.Decimal `json:"ticket_average"`
	CardFees      decimal.Decimal `json:"card_fees"`
	DeliveryCosts decimal.Decimal `json:"delivery_costs"`
	ProductCosts  decimal.Decimal `json:"product_costs"`
	ExpenseCosts  decimal.Decimal `json:"expense_costs"`
	TotalCosts    decimal.Decimal `json:"total_costs"`
	NetProfit     decimal.Decimal `json:"net_profit"`
	PaymentMix    PaymentMix      `json:"payment_mix"`
}

// Snapshot is the immutable record set one aggregation runs over. The engine
// never mutates it, so aggregating the same snapshot twice yields identical
// summaries.
type Snapshot struct {
	Sales          []SaleRecord
	ItemCosts      []ItemCostRecord
	ExpenseAmounts []decimal.Decimal
	WorkedDays     int
	Rates          Rates
	DailyCost      decimal.Decimal
}

// Aggregate rolls a snapshot up into a financial summary.
func Aggregate(snap Snapshot) FinancialSummary {
	totalRevenue := decimal.Zero
	for _, s := range snap.Sales {
		totalRevenue = totalRevenue.Add(s.Total)
	}
	totalSales := len(snap.Sales)

	ticketAverage := decimal.Zero
	if totalSales > 0 {
		ticketAverage = totalRevenue.Div(decimal.NewFromInt(int64(totalSales)))
	}

	cardFees := CardFees(snap.Sales, snap.Rates)
	deliveryCosts := DeliveryCost(snap.WorkedDays, snap.DailyCost)
	productCosts := ProductCost(snap.ItemCosts)
	expenseCosts := ExpenseTotal(snap.ExpenseAmounts)
	totalCosts := cardFees.Add(deliveryCosts).Add(productCosts).Add(expenseCosts)

	return FinancialSummary{
		TotalRevenue:  totalRevenue,
		TotalSales:    totalSales,
		TicketAverage: ticketAverage,
		CardFees:      cardFees,
		DeliveryCosts: deliveryCosts,
		ProductCosts:  productCosts,
		ExpenseCosts:  expenseCosts,
		TotalCosts:    totalCosts,
		NetProfit:     totalRevenue.Sub(totalCosts),
		PaymentMix:    paymentMix(snap.Sales),
	}
}

// paymentMix classifies sales into buckets and rounds each bucket's share
// independently. All zeros when there are no sales.
func paymentMix(sales []SaleRecord) PaymentMix {
	if len(sales) == 0 {
		return PaymentMix{}
	}

	var credit, debit, pix, cash int
	for _, s := range sales {
		switch entity.ClassifyPaymentMethod(s.PaymentMethod) {
		case entity.BucketCredit:
			credit++
		case entity.BucketDebit:
			debit++
		case entity.BucketPix:
			pix++
		default:
			cash++
		}
	}

	total := len(sales)
	return PaymentMix{
		Credit: roundPercent(credit, total),
		Debit:  roundPercent(debit, total),
		Pix:    roundPercent(pix, total),
		Cash:   roundPercent(cash, total),
	}
}

func roundPercent(count, total int) int {
	return int(math.Round(float64(count) / float64(total) * 100))
}
