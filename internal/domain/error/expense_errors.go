// Package error defines domain-specific errors for the PinGoou PDV backend.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrNotAuthorizedToModifyExpense is returned when user is not authorized to modify an expense.
	ErrNotAuthorizedToModifyExpense = errors.New("not authorized to modify expense")

	// ErrInvalidExpenseAmount is returned when the expense amount is not a positive number.
	ErrInvalidExpenseAmount = errors.New("expense amount must be positive")

	// ErrEmptyExpenseDescription is returned when the expense description is empty.
	ErrEmptyExpenseDescription = errors.New("expense description cannot be empty")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	ErrCodeInvalidExpenseAmount    ExpenseErrorCode = "EXP-010001"
	ErrCodeEmptyExpenseDescription ExpenseErrorCode = "EXP-010002"
	ErrCodeExpenseNotFound         ExpenseErrorCode = "EXP-020001"
	ErrCodeNotAuthorizedExpense    ExpenseErrorCode = "EXP-020002"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
