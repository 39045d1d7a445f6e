package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pingoou/backend/internal/domain/entity"
	domainerror "github.com/pingoou/backend/internal/domain/error"
)

type fakeStatsRepo struct {
	sales      []SaleRecord
	itemCosts  []ItemCostRecord
	expenses   []decimal.Decimal
	workedDays int

	salesErr      error
	itemCostsErr  error
	expensesErr   error
	workedDaysErr error

	lastStart time.Time
	lastEnd   time.Time
}

func (f *fakeStatsRepo) SalesInRange(_ context.Context, _ uuid.UUID, start, end time.Time) ([]SaleRecord, error) {
	f.lastStart, f.lastEnd = start, end
	return f.sales, f.salesErr
}

func (f *fakeStatsRepo) ItemCostsInRange(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]ItemCostRecord, error) {
	return f.itemCosts, f.itemCostsErr
}

func (f *fakeStatsRepo) ExpenseAmountsInRange(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]decimal.Decimal, error) {
	return f.expenses, f.expensesErr
}

func (f *fakeStatsRepo) WorkedDaysInRange(_ context.Context, _ uuid.UUID, _, _ string) (int, error) {
	return f.workedDays, f.workedDaysErr
}

type fakeProfileRepo struct {
	profile *entity.Profile
	err     error
}

func (f *fakeProfileRepo) Create(_ context.Context, _ *entity.Profile) error { return nil }

func (f *fakeProfileRepo) FindByUser(_ context.Context, _ uuid.UUID) (*entity.Profile, error) {
	return f.profile, f.err
}

func (f *fakeProfileRepo) Update(_ context.Context, _ *entity.Profile) error { return nil }

func (f *fakeProfileRepo) IncrementDataResetCount(_ context.Context, _ uuid.UUID) error { return nil }

func testProfile(userID uuid.UUID) *entity.Profile {
	p := entity.NewProfile(userID, "Maria", "Doces da Maria")
	p.CardRateCredit = d("3")
	p.CardRateDebit = d("1.5")
	p.DeliveryDailyCostBRL = d("50")
	return p
}

func TestGetFilteredStats_Execute(t *testing.T) {
	userID := uuid.New()

	statsRepo := &fakeStatsRepo{
		sales: []SaleRecord{
			{Total: d("100"), PaymentMethod: "Crédito"},
			{Total: d("50"), PaymentMethod: "PIX"},
		},
		itemCosts:  []ItemCostRecord{{Qty: 2, UnitCost: d("5")}},
		expenses:   []decimal.Decimal{d("20")},
		workedDays: 1,
	}
	uc := NewGetFilteredStatsUseCase(statsRepo, &fakeProfileRepo{profile: testProfile(userID)})

	out, err := uc.Execute(context.Background(), GetFilteredStatsInput{
		UserID: userID,
		Period: PeriodMonth,
		Now:    testNow,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !out.Summary.TotalRevenue.Equal(d("150")) {
		t.Errorf("TotalRevenue = %s, want 150", out.Summary.TotalRevenue)
	}
	// 3 card fee + 50 delivery + 10 product + 20 expenses.
	if !out.Summary.TotalCosts.Equal(d("83")) {
		t.Errorf("TotalCosts = %s, want 83", out.Summary.TotalCosts)
	}
	if !out.Summary.NetProfit.Equal(d("67")) {
		t.Errorf("NetProfit = %s, want 67", out.Summary.NetProfit)
	}
	if out.Period.Start.Day() != 1 || out.Period.End.Day() != 31 {
		t.Errorf("bounds = [%v, %v], want full March", out.Period.Start, out.Period.End)
	}
	if !statsRepo.lastEnd.Equal(out.Period.End) {
		t.Errorf("repo queried until %v, bounds say %v", statsRepo.lastEnd, out.Period.End)
	}
}

func TestGetFilteredStats_RejectsUnknownPeriod(t *testing.T) {
	uc := NewGetFilteredStatsUseCase(&fakeStatsRepo{}, &fakeProfileRepo{profile: testProfile(uuid.New())})

	_, err := uc.Execute(context.Background(), GetFilteredStatsInput{
		UserID: uuid.New(),
		Period: "quarter",
	})
	if !errors.Is(err, domainerror.ErrInvalidPeriod) {
		t.Errorf("err = %v, want ErrInvalidPeriod", err)
	}
}

func TestGetFilteredStats_AnyReadFailureAborts(t *testing.T) {
	userID := uuid.New()
	boom := errors.New("connection reset")

	cases := map[string]*fakeStatsRepo{
		"sales":       {salesErr: boom},
		"item costs":  {itemCostsErr: boom},
		"expenses":    {expensesErr: boom},
		"worked days": {workedDaysErr: boom},
	}

	for name, repo := range cases {
		t.Run(name, func(t *testing.T) {
			uc := NewGetFilteredStatsUseCase(repo, &fakeProfileRepo{profile: testProfile(userID)})

			out, err := uc.Execute(context.Background(), GetFilteredStatsInput{
				UserID: userID,
				Period: PeriodToday,
				Now:    testNow,
			})
			if out != nil {
				t.Errorf("got partial summary %+v, want none", out)
			}
			if !errors.Is(err, domainerror.ErrStatsUnavailable) {
				t.Errorf("err = %v, want ErrStatsUnavailable", err)
			}
		})
	}
}

func TestGetFilteredStats_ProfileFailureAborts(t *testing.T) {
	uc := NewGetFilteredStatsUseCase(&fakeStatsRepo{}, &fakeProfileRepo{err: errors.New("down")})

	_, err := uc.Execute(context.Background(), GetFilteredStatsInput{
		UserID: uuid.New(),
		Period: PeriodYear,
		Now:    testNow,
	})
	if !errors.Is(err, domainerror.ErrStatsUnavailable) {
		t.Errorf("err = %v, want ErrStatsUnavailable", err)
	}
}
