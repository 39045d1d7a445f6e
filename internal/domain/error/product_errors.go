// Package error defines domain-specific errors for the PinGoou PDV backend.
package error

import "errors"

// Product domain errors.
var (
	// ErrProductNotFound is returned when a product is not found in the system.
	ErrProductNotFound = errors.New("product not found")

	// ErrNotAuthorizedToModifyProduct is returned when user is not authorized to modify a product.
	ErrNotAuthorizedToModifyProduct = errors.New("not authorized to modify product")

	// ErrEmptyProductName is returned when the product name is empty.
	ErrEmptyProductName = errors.New("product name cannot be empty")

	// ErrNegativeProductPrice is returned when the price or cost price is negative.
	ErrNegativeProductPrice = errors.New("product price cannot be negative")
)

// ProductErrorCode defines error codes for product errors.
// Format: PRD-XXYYYY where XX is category and YYYY is specific error.
type ProductErrorCode string

const (
	ErrCodeEmptyProductName     ProductErrorCode = "PRD-010001"
	ErrCodeNegativeProductPrice ProductErrorCode = "PRD-010002"
	ErrCodeProductNotFound      ProductErrorCode = "PRD-020001"
	ErrCodeNotAuthorizedProduct ProductErrorCode = "PRD-020002"
)

// ProductError represents a product error with code and message.
type ProductError struct {
	Code    ProductErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProductError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProductError) Unwrap() error {
	return e.Err
}

// NewProductError creates a new ProductError with the given code and message.
func NewProductError(code ProductErrorCode, message string, err error) *ProductError {
	return &ProductError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
