package stats

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type fakeStatsCache struct {
	store    map[uuid.UUID][]byte
	getErr   error
	setErr   error
	getCalls int
	setCalls int
}

func newFakeStatsCache() *fakeStatsCache {
	return &fakeStatsCache{store: map[uuid.UUID][]byte{}}
}

func (f *fakeStatsCache) GetDashboard(_ context.Context, userID uuid.UUID) ([]byte, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.store[userID], nil
}

func (f *fakeStatsCache) SetDashboard(_ context.Context, userID uuid.UUID, payload []byte) error {
	f.setCalls++
	if f.setErr != nil {
		return f.setErr
	}
	f.store[userID] = payload
	return nil
}

func (f *fakeStatsCache) InvalidateDashboard(_ context.Context, userID uuid.UUID) error {
	delete(f.store, userID)
	return nil
}

func TestGetDashboardStats_ComputesAndCaches(t *testing.T) {
	userID := uuid.New()
	repo := &fakeStatsRepo{
		sales: []SaleRecord{
			{Total: d("30"), PaymentMethod: "Dinheiro"},
			{Total: d("70"), PaymentMethod: "PIX"},
		},
		expenses:   []decimal.Decimal{d("40")},
		workedDays: 1,
	}
	cache := newFakeStatsCache()
	uc := NewGetDashboardStatsUseCase(repo, &fakeProfileRepo{profile: testProfile(userID)}, cache)

	out, err := uc.Execute(context.Background(), GetDashboardStatsInput{UserID: userID, Now: testNow})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if out.VendasHoje != 2 {
		t.Errorf("VendasHoje = %d, want 2", out.VendasHoje)
	}
	if !out.FaturamentoHoje.Equal(d("100")) {
		t.Errorf("FaturamentoHoje = %s, want 100", out.FaturamentoHoje)
	}
	if !out.TicketMedio.Equal(d("50")) {
		t.Errorf("TicketMedio = %s, want 50", out.TicketMedio)
	}
	// 50 delivery + 40 expenses, no card sales.
	if !out.CustosMes.Equal(d("90")) {
		t.Errorf("CustosMes = %s, want 90", out.CustosMes)
	}
	if !out.LucroMes.Equal(d("10")) {
		t.Errorf("LucroMes = %s, want 10", out.LucroMes)
	}
	if cache.setCalls != 1 {
		t.Errorf("cache writes = %d, want 1", cache.setCalls)
	}
}

func TestGetDashboardStats_ServesFromCache(t *testing.T) {
	userID := uuid.New()
	cached := DashboardStats{FaturamentoHoje: d("123"), VendasHoje: 7, TicketMedio: d("17.57")}
	payload, _ := json.Marshal(cached)

	cache := newFakeStatsCache()
	cache.store[userID] = payload

	// No repo data; a computation would return zeros.
	uc := NewGetDashboardStatsUseCase(&fakeStatsRepo{}, &fakeProfileRepo{profile: testProfile(userID)}, cache)

	out, err := uc.Execute(context.Background(), GetDashboardStatsInput{UserID: userID, Now: testNow})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out.VendasHoje != 7 || !out.FaturamentoHoje.Equal(d("123")) {
		t.Errorf("got %+v, want the cached snapshot", out)
	}
	if cache.setCalls != 0 {
		t.Errorf("cache writes = %d, want 0 on hit", cache.setCalls)
	}
}

func TestGetDashboardStats_CacheFailureDegradesToCompute(t *testing.T) {
	userID := uuid.New()
	repo := &fakeStatsRepo{sales: []SaleRecord{{Total: d("25"), PaymentMethod: "PIX"}}}
	cache := newFakeStatsCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")

	uc := NewGetDashboardStatsUseCase(repo, &fakeProfileRepo{profile: testProfile(userID)}, cache)

	out, err := uc.Execute(context.Background(), GetDashboardStatsInput{UserID: userID, Now: testNow})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !out.FaturamentoHoje.Equal(d("25")) {
		t.Errorf("FaturamentoHoje = %s, want fresh 25", out.FaturamentoHoje)
	}
}

func TestGetDashboardStats_GoalProgress(t *testing.T) {
	userID := uuid.New()
	profile := testProfile(userID)
	goal := d("200")
	profile.MonthlyRevenueGoalBRL = &goal
	profile.DeliveryDailyCostBRL = decimal.Zero

	repo := &fakeStatsRepo{sales: []SaleRecord{{Total: d("50"), PaymentMethod: "PIX"}}}
	uc := NewGetDashboardStatsUseCase(repo, &fakeProfileRepo{profile: profile}, newFakeStatsCache())

	out, err := uc.Execute(context.Background(), GetDashboardStatsInput{UserID: userID, Now: testNow})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out.MetaMensal == nil || !out.MetaMensal.Equal(goal) {
		t.Fatalf("MetaMensal = %v, want 200", out.MetaMensal)
	}
	if out.ProgressoMeta == nil || *out.ProgressoMeta != 25 {
		t.Errorf("ProgressoMeta = %v, want 25", out.ProgressoMeta)
	}
}

func TestGetDashboardStats_NoGoalOmitsProgress(t *testing.T) {
	userID := uuid.New()
	uc := NewGetDashboardStatsUseCase(&fakeStatsRepo{}, &fakeProfileRepo{profile: testProfile(userID)}, newFakeStatsCache())

	out, err := uc.Execute(context.Background(), GetDashboardStatsInput{UserID: userID, Now: testNow})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out.MetaMensal != nil || out.ProgressoMeta != nil {
		t.Errorf("goal fields = (%v, %v), want both nil", out.MetaMensal, out.ProgressoMeta)
	}
}
