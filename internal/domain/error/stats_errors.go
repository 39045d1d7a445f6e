// Package error defines domain-specific errors for the PinGoou PDV backend.
package error

import "errors"

// Stats domain errors. Aggregation never produces partial results: any failed
// read aborts the whole computation with one of these wrapped underneath.
var (
	// ErrInvalidPeriod is returned when the period selector is not a known value.
	ErrInvalidPeriod = errors.New("invalid period selector")

	// ErrStatsUnavailable is returned when one of the aggregation reads failed.
	ErrStatsUnavailable = errors.New("stats unavailable")
)

// StatsErrorCode defines error codes for stats errors.
type StatsErrorCode string

const (
	ErrCodeInvalidPeriod    StatsErrorCode = "STS-010001"
	ErrCodeStatsUnavailable StatsErrorCode = "STS-020001"
)
