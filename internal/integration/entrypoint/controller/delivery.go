// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pingoou/backend/internal/application/usecase/delivery"
	domainerror "github.com/pingoou/backend/internal/domain/error"
	"github.com/pingoou/backend/internal/integration/entrypoint/dto"
	"github.com/pingoou/backend/internal/integration/entrypoint/middleware"
)

// DeliveryController handles worked-day calendar endpoints.
type DeliveryController struct {
	listUseCase   *delivery.ListWorkDaysUseCase
	toggleUseCase *delivery.ToggleWorkDayUseCase
}

// NewDeliveryController creates a new delivery controller instance.
func NewDeliveryController(
	listUseCase *delivery.ListWorkDaysUseCase,
	toggleUseCase *delivery.ToggleWorkDayUseCase,
) *DeliveryController {
	return &DeliveryController{
		listUseCase:   listUseCase,
		toggleUseCase: toggleUseCase,
	}
}

// List handles GET /delivery/work-days requests.
func (c *DeliveryController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), delivery.ListWorkDaysInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWorkDayListResponse(output.WorkDays))
}

// Toggle handles POST /delivery/work-days/toggle requests.
func (c *DeliveryController) Toggle(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ToggleWorkDayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidWorkDate),
		})
		return
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), delivery.ToggleWorkDayInput{
		UserID:   userID,
		WorkDate: req.WorkDate,
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrInvalidWorkDate) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Work date must be a valid YYYY-MM-DD value",
				Code:  string(domainerror.ErrCodeInvalidWorkDate),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToggleWorkDayResponse{
		WorkDate: output.WorkDate,
		Worked:   output.Worked,
	})
}
