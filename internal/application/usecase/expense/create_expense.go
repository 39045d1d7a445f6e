// Package expense contains expense-related use cases.
package expense

import (
	"context"
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

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	UserID      uuid.UUID
	Description string
	Amount      decimal.Decimal
	Category    string    // empty asks the suggester for one
	Date        time.Time // zero means now
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic. When no category is
// given, the suggester is consulted; any suggester failure leaves the
// category empty and never fails the write.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	suggester   adapter.CategorySuggester
	statsCache  adapter.StatsCache
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	suggester adapter.CategorySuggester,
	statsCache adapter.StatsCache,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
		suggester:   suggester,
		statsCache:  statsCache,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	// Validate description
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeEmptyExpenseDescription,
			"expense description cannot be empty",
			domainerror.ErrEmptyExpenseDescription,
		)
	}

	// Validate amount
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"expense amount must be positive",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	// Suggest a category when none was given
	category := strings.TrimSpace(input.Category)
	if category == "" && uc.suggester != nil && uc.suggester.IsAvailable() {
		suggested, err := uc.suggester.SuggestCategory(ctx, description)
		if err != nil {
			slog.Debug("category suggestion failed", "error", err)
		} else {
			category = suggested
		}
	}

	// Create expense entity
	expense := entity.NewExpense(input.UserID, description, input.Amount, category, date)

	// Save expense to database
	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	// Drop the cached dashboard so the next read sees this expense
	if uc.statsCache != nil {
		if err := uc.statsCache.InvalidateDashboard(ctx, input.UserID); err != nil {
			slog.Debug("dashboard cache invalidation failed", "userID", input.UserID, "error", err)
		}
	}

	return &CreateExpenseOutput{
		Expense: expense,
	}, nil
}
