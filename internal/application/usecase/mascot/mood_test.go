package mascot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pingoou/backend/internal/domain/entity"
)

var now = time.Date(2025, time.March, 15, 14, 30, 0, 0, time.Local)

func at(d time.Duration) *time.Time {
	t := now.Add(-d)
	return &t
}

func TestResolveMood(t *testing.T) {
	const sleepSeconds = 10

	cases := []struct {
		name       string
		lastSaleAt *time.Time
		want       Mood
	}{
		{"no sales yet stays active", nil, MoodActive},
		{"sale just now is happy", at(0), MoodHappy},
		{"sale 4s ago is happy", at(4 * time.Second), MoodHappy},
		{"sale 5s ago is active", at(5 * time.Second), MoodActive},
		{"sale 9s ago is active", at(9 * time.Second), MoodActive},
		{"sale 10s ago is sleeping", at(10 * time.Second), MoodSleeping},
		{"sale an hour ago is sleeping", at(time.Hour), MoodSleeping},
		{"future sale is happy", at(-time.Minute), MoodHappy},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveMood(tc.lastSaleAt, sleepSeconds, now); got != tc.want {
				t.Errorf("ResolveMood = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResolveMood_CustomTimeout(t *testing.T) {
	// With a 60s timeout a 30s idle mascot is still awake.
	if got := ResolveMood(at(30*time.Second), 60, now); got != MoodActive {
		t.Errorf("ResolveMood = %q, want active", got)
	}
	if got := ResolveMood(at(61*time.Second), 60, now); got != MoodSleeping {
		t.Errorf("ResolveMood = %q, want sleeping", got)
	}
}

type fakeSaleTimes struct {
	lastSaleAt *time.Time
	err        error
}

func (f *fakeSaleTimes) CreateWithItems(_ context.Context, _ *entity.Sale) error { return nil }
func (f *fakeSaleTimes) FindByID(_ context.Context, _ uuid.UUID) (*entity.Sale, error) {
	return nil, nil
}
func (f *fakeSaleTimes) FindByUser(_ context.Context, _ uuid.UUID) ([]*entity.Sale, error) {
	return nil, nil
}
func (f *fakeSaleTimes) Update(_ context.Context, _ *entity.Sale, _ []*entity.SaleItem) error {
	return nil
}
func (f *fakeSaleTimes) Delete(_ context.Context, _ uuid.UUID) error { return nil }
func (f *fakeSaleTimes) LastSaleAt(_ context.Context, _ uuid.UUID) (*time.Time, error) {
	return f.lastSaleAt, f.err
}

type fakeProfiles struct {
	profile *entity.Profile
	err     error
}

func (f *fakeProfiles) Create(_ context.Context, _ *entity.Profile) error { return nil }
func (f *fakeProfiles) FindByUser(_ context.Context, _ uuid.UUID) (*entity.Profile, error) {
	return f.profile, f.err
}
func (f *fakeProfiles) Update(_ context.Context, _ *entity.Profile) error              { return nil }
func (f *fakeProfiles) IncrementDataResetCount(_ context.Context, _ uuid.UUID) error { return nil }

func TestGetMascotMood_Execute(t *testing.T) {
	userID := uuid.New()
	profile := entity.NewProfile(userID, "Maria", "Doces da Maria")
	profile.MascotSleepSeconds = 30

	uc := NewGetMascotMoodUseCase(
		&fakeSaleTimes{lastSaleAt: at(45 * time.Second)},
		&fakeProfiles{profile: profile},
	)

	out, err := uc.Execute(context.Background(), GetMascotMoodInput{UserID: userID, Now: now})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out.Mood != MoodSleeping {
		t.Errorf("Mood = %q, want sleeping after 45s with a 30s timeout", out.Mood)
	}
	if out.SleepSeconds != 30 {
		t.Errorf("SleepSeconds = %d, want 30", out.SleepSeconds)
	}
}

func TestGetMascotMood_ProfileFailureUsesDefaultTimeout(t *testing.T) {
	uc := NewGetMascotMoodUseCase(
		&fakeSaleTimes{lastSaleAt: at(7 * time.Second)},
		&fakeProfiles{err: errors.New("down")},
	)

	out, err := uc.Execute(context.Background(), GetMascotMoodInput{UserID: uuid.New(), Now: now})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out.SleepSeconds != entity.DefaultMascotSleepSeconds {
		t.Errorf("SleepSeconds = %d, want default %d", out.SleepSeconds, entity.DefaultMascotSleepSeconds)
	}
	if out.Mood != MoodActive {
		t.Errorf("Mood = %q, want active at 7s of 10s", out.Mood)
	}
}

func TestGetMascotMood_SaleReadFailure(t *testing.T) {
	uc := NewGetMascotMoodUseCase(
		&fakeSaleTimes{err: errors.New("down")},
		&fakeProfiles{profile: entity.NewProfile(uuid.New(), "Maria", "Doces da Maria")},
	)

	if _, err := uc.Execute(context.Background(), GetMascotMoodInput{UserID: uuid.New(), Now: now}); err == nil {
		t.Error("Execute succeeded, want error when last sale cannot be read")
	}
}
