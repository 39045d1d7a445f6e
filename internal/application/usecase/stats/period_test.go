package stats

import (
	"testing"
	"time"
)

var testNow = time.Date(2025, time.March, 15, 14, 30, 0, 0, time.Local)

func TestResolvePeriod_EndOfDayInvariant(t *testing.T) {
	periods := []Period{PeriodToday, PeriodYesterday, PeriodMonth, PeriodYear, PeriodCustom}

	for _, p := range periods {
		bounds := ResolvePeriod(p, nil, testNow)

		if bounds.Start.After(bounds.End) {
			t.Errorf("period %q: start %v after end %v", p, bounds.Start, bounds.End)
		}

		h, m, s := bounds.End.Clock()
		if h != 23 || m != 59 || s != 59 {
			t.Errorf("period %q: end time of day = %02d:%02d:%02d, want 23:59:59", p, h, m, s)
		}
		if bounds.End.Nanosecond() != int(999*time.Millisecond) {
			t.Errorf("period %q: end nanoseconds = %d, want 999ms", p, bounds.End.Nanosecond())
		}
	}
}

func TestResolvePeriod_Today(t *testing.T) {
	bounds := ResolvePeriod(PeriodToday, nil, testNow)

	wantStart := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.Local)
	if !bounds.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", bounds.Start, wantStart)
	}
	if bounds.End.Day() != 15 {
		t.Errorf("end day = %d, want 15", bounds.End.Day())
	}
}

func TestResolvePeriod_Yesterday(t *testing.T) {
	bounds := ResolvePeriod(PeriodYesterday, nil, testNow)

	if bounds.Start.Day() != 14 || bounds.End.Day() != 14 {
		t.Errorf("bounds = [%v, %v], want both on day 14", bounds.Start, bounds.End)
	}
}

func TestResolvePeriod_Month(t *testing.T) {
	bounds := ResolvePeriod(PeriodMonth, nil, testNow)

	wantStart := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local)
	if !bounds.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", bounds.Start, wantStart)
	}
	if bounds.End.Day() != 31 || bounds.End.Month() != time.March {
		t.Errorf("end = %v, want March 31", bounds.End)
	}
}

func TestResolvePeriod_MonthHandlesFebruary(t *testing.T) {
	feb := time.Date(2024, time.February, 10, 8, 0, 0, 0, time.Local)
	bounds := ResolvePeriod(PeriodMonth, nil, feb)

	if bounds.End.Day() != 29 {
		t.Errorf("leap-year February end day = %d, want 29", bounds.End.Day())
	}
}

func TestResolvePeriod_Year(t *testing.T) {
	bounds := ResolvePeriod(PeriodYear, nil, testNow)

	if bounds.Start.Month() != time.January || bounds.Start.Day() != 1 {
		t.Errorf("start = %v, want Jan 1", bounds.Start)
	}
	if bounds.End.Month() != time.December || bounds.End.Day() != 31 {
		t.Errorf("end = %v, want Dec 31", bounds.End)
	}
}

func TestResolvePeriod_Custom(t *testing.T) {
	t.Run("valid range is used as-is", func(t *testing.T) {
		custom := &CustomRange{
			From: time.Date(2025, time.January, 5, 10, 0, 0, 0, time.Local),
			To:   time.Date(2025, time.January, 9, 18, 0, 0, 0, time.Local),
		}
		bounds := ResolvePeriod(PeriodCustom, custom, testNow)

		if bounds.Start.Day() != 5 || bounds.End.Day() != 9 {
			t.Errorf("bounds = [%v, %v], want Jan 5..Jan 9", bounds.Start, bounds.End)
		}
	})

	t.Run("missing range falls back to month", func(t *testing.T) {
		got := ResolvePeriod(PeriodCustom, nil, testNow)
		want := ResolvePeriod(PeriodMonth, nil, testNow)

		if !got.Start.Equal(want.Start) || !got.End.Equal(want.End) {
			t.Errorf("got [%v, %v], want month bounds [%v, %v]", got.Start, got.End, want.Start, want.End)
		}
	})

	t.Run("inverted range falls back to month", func(t *testing.T) {
		custom := &CustomRange{
			From: time.Date(2025, time.March, 20, 0, 0, 0, 0, time.Local),
			To:   time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local),
		}
		got := ResolvePeriod(PeriodCustom, custom, testNow)
		want := ResolvePeriod(PeriodMonth, nil, testNow)

		if !got.Start.Equal(want.Start) || !got.End.Equal(want.End) {
			t.Errorf("got [%v, %v], want month bounds [%v, %v]", got.Start, got.End, want.Start, want.End)
		}
	})
}

func TestValidPeriod(t *testing.T) {
	for _, p := range []Period{PeriodToday, PeriodYesterday, PeriodMonth, PeriodYear, PeriodCustom} {
		if !ValidPeriod(p) {
			t.Errorf("ValidPeriod(%q) = false, want true", p)
		}
	}
	if ValidPeriod("semester") {
		t.Error("ValidPeriod(\"semester\") = true, want false")
	}
}
