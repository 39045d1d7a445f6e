// Package delivery contains delivery-tracking use cases.
package delivery

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pingoou/backend/internal/application/adapter"
	"github.com/pingoou/backend/internal/domain/entity"
)

// ListWorkDaysInput represents the input for worked-day listing.
type ListWorkDaysInput struct {
	UserID uuid.UUID
}

// ListWorkDaysOutput represents the output of worked-day listing.
type ListWorkDaysOutput struct {
	WorkDays []*entity.DeliveryWorkDay
}

// ListWorkDaysUseCase handles worked-day listing logic.
type ListWorkDaysUseCase struct {
	deliveryRepo adapter.DeliveryRepository
}

// NewListWorkDaysUseCase creates a new ListWorkDaysUseCase instance.
func NewListWorkDaysUseCase(deliveryRepo adapter.DeliveryRepository) *ListWorkDaysUseCase {
	return &ListWorkDaysUseCase{
		deliveryRepo: deliveryRepo,
	}
}

// Execute returns the merchant's worked days in ascending date order.
func (uc *ListWorkDaysUseCase) Execute(ctx context.Context, input ListWorkDaysInput) (*ListWorkDaysOutput, error) {
	workDays, err := uc.deliveryRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list work days: %w", err)
	}

	return &ListWorkDaysOutput{
		WorkDays: workDays,
	}, nil
}
