// Package error defines domain-specific errors for the PinGoou PDV backend.
package error

import "errors"

// Sale domain errors.
var (
	// ErrSaleNotFound is returned when a sale is not found in the system.
	ErrSaleNotFound = errors.New("sale not found")

	// ErrNotAuthorizedToModifySale is returned when user is not authorized to modify a sale.
	ErrNotAuthorizedToModifySale = errors.New("not authorized to modify sale")

	// ErrInvalidPaymentMethod is returned when the payment method is not one of the accepted values.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrEmptySaleItems is returned when a sale is created or edited with no items.
	ErrEmptySaleItems = errors.New("sale must have at least one item")

	// ErrInvalidItemQty is returned when a sale item quantity is zero or negative.
	ErrInvalidItemQty = errors.New("item quantity must be positive")

	// ErrSaleProductNotFound is returned when a sale item references an unknown product.
	ErrSaleProductNotFound = errors.New("product not found")
)

// SaleErrorCode defines error codes for sale errors.
// Format: SAL-XXYYYY where XX is category and YYYY is specific error.
type SaleErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPaymentMethod SaleErrorCode = "SAL-010001"
	ErrCodeEmptySaleItems       SaleErrorCode = "SAL-010002"
	ErrCodeInvalidItemQty       SaleErrorCode = "SAL-010003"
	ErrCodeSaleProductNotFound  SaleErrorCode = "SAL-010004"
	ErrCodeMissingSaleFields    SaleErrorCode = "SAL-010005"

	// Access errors (02XXXX)
	ErrCodeSaleNotFound        SaleErrorCode = "SAL-020001"
	ErrCodeNotAuthorizedSale   SaleErrorCode = "SAL-020002"
)

// SaleError represents a sale error with code and message.
type SaleError struct {
	Code    SaleErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SaleError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SaleError) Unwrap() error {
	return e.Err
}

// NewSaleError creates a new SaleError with the given code and message.
func NewSaleError(code SaleErrorCode, message string, err error) *SaleError {
	return &SaleError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
