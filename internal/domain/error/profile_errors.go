// Package error defines domain-specific errors for the PinGoou PDV backend.
package error

import "errors"

// Profile domain errors.
var (
	// ErrProfileNotFound is returned when a merchant profile is not found.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrInvalidMascotSleepSeconds is returned when the mascot sleep timeout is outside 3..600.
	ErrInvalidMascotSleepSeconds = errors.New("mascot sleep seconds must be between 3 and 600")

	// ErrNegativeRate is returned when a card rate, fee or daily cost is negative.
	ErrNegativeRate = errors.New("rates and costs cannot be negative")
)

// ProfileErrorCode defines error codes for profile errors.
// Format: PRF-XXYYYY where XX is category and YYYY is specific error.
type ProfileErrorCode string

const (
	ErrCodeInvalidMascotSleepSeconds ProfileErrorCode = "PRF-010001"
	ErrCodeNegativeRate              ProfileErrorCode = "PRF-010002"
	ErrCodeProfileNotFound           ProfileErrorCode = "PRF-020001"
)

// ProfileError represents a profile error with code and message.
type ProfileError struct {
	Code    ProfileErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProfileError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProfileError) Unwrap() error {
	return e.Err
}

// NewProfileError creates a new ProfileError with the given code and message.
func NewProfileError(code ProfileErrorCode, message string, err error) *ProfileError {
	return &ProfileError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
