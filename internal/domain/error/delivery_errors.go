// Package error defines domain-specific errors for the PinGoou PDV backend.
package error

import "errors"

// Delivery tracking domain errors.
var (
	// ErrInvalidWorkDate is returned when a worked-day date is not a valid YYYY-MM-DD value.
	ErrInvalidWorkDate = errors.New("invalid work date")
)

// DeliveryErrorCode defines error codes for delivery tracking errors.
type DeliveryErrorCode string

const (
	ErrCodeInvalidWorkDate DeliveryErrorCode = "DLV-010001"
)
