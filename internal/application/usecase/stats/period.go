// Package stats contains the financial aggregation use cases: period
// resolution, cost calculators and the summary aggregator.
package stats

import "time"

// Period is a symbolic date-range selector.
type Period string

const (
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	PeriodMonth     Period = "month"
	PeriodYear      Period = "year"
	PeriodCustom    Period = "custom"
)

// ValidPeriod reports whether p is a known selector.
func ValidPeriod(p Period) bool {
	switch p {
	case PeriodToday, PeriodYesterday, PeriodMonth, PeriodYear, PeriodCustom:
		return true
	}
	return false
}

// CustomRange is an explicit from/to pair for the custom period.
type CustomRange struct {
	From time.Time
	To   time.Time
}

// PeriodBounds is a resolved, inclusive datetime interval. End always carries
// a 23:59:59.999 time of day; callers filter with date >= Start AND date <= End.
type PeriodBounds struct {
	Start time.Time
	End   time.Time
}

// ResolvePeriod maps a symbolic period to concrete bounds in now's location.
// A custom period with missing or inverted from/to falls back to the month
// interval rather than erroring.
func ResolvePeriod(period Period, custom *CustomRange, now time.Time) PeriodBounds {
	switch period {
	case PeriodToday:
		return PeriodBounds{Start: startOfDay(now), End: endOfDay(now)}
	case PeriodYesterday:
		y := now.AddDate(0, 0, -1)
		return PeriodBounds{Start: startOfDay(y), End: endOfDay(y)}
	case PeriodYear:
		loc := now.Location()
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc)
		end := endOfDay(time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, loc))
		return PeriodBounds{Start: start, End: end}
	case PeriodCustom:
		if custom != nil && !custom.From.IsZero() && !custom.To.IsZero() && !custom.From.After(custom.To) {
			return PeriodBounds{Start: startOfDay(custom.From), End: endOfDay(custom.To)}
		}
		return monthBounds(now)
	default: // PeriodMonth
		return monthBounds(now)
	}
}

func monthBounds(now time.Time) PeriodBounds {
	loc := now.Location()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	lastDay := start.AddDate(0, 1, -1)
	return PeriodBounds{Start: start, End: endOfDay(lastDay)}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
