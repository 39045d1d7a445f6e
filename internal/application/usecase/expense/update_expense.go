// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pingoou/backend/internal/application/adapter"
	"github.com/pingoou/backend/internal/domain/entity"
	domainerror "github.com/pingoou/backend/internal/domain/error"
)

// UpdateExpenseInput represents the input for expense update.
type UpdateExpenseInput struct {
	ExpenseID   uuid.UUID
	UserID      uuid.UUID
	Description *string          // Optional
	Amount      *decimal.Decimal // Optional
	Category    *string          // Optional
	Date        *time.Time       // Optional
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	statsCache  adapter.StatsCache
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository, statsCache adapter.StatsCache) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
		statsCache:  statsCache,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	// Find the existing expense
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}

	// Check if user is authorized to modify this expense
	if expense.UserID != input.UserID {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeNotAuthorizedExpense,
			"not authorized to modify this expense",
			domainerror.ErrNotAuthorizedToModifyExpense,
		)
	}

	// Update description if provided
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if description == "" {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeEmptyExpenseDescription,
				"expense description cannot be empty",
				domainerror.ErrEmptyExpenseDescription,
			)
		}
		expense.Description = description
	}

	// Update amount if provided
	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseAmount,
				"expense amount must be positive",
				domainerror.ErrInvalidExpenseAmount,
			)
		}
		expense.Amount = *input.Amount
	}

	// Update category if provided
	if input.Category != nil {
		expense.Category = *input.Category
	}

	// Update date if provided
	if input.Date != nil {
		expense.Date = *input.Date
	}

	// Update timestamp
	expense.UpdatedAt = time.Now().UTC()

	// Save updated expense
	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	// Drop the cached dashboard so the next read sees the edit
	if uc.statsCache != nil {
		if err := uc.statsCache.InvalidateDashboard(ctx, input.UserID); err != nil {
			slog.Debug("dashboard cache invalidation failed", "userID", input.UserID, "error", err)
		}
	}

	return &UpdateExpenseOutput{
		Expense: expense,
	}, nil
}
