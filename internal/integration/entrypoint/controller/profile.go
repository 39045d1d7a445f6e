// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pingoou/backend/internal/application/usecase/profile"
	domainerror "github.com/pingoou/backend/internal/domain/error"
	"github.com/pingoou/backend/internal/integration/entrypoint/dto"
	"github.com/pingoou/backend/internal/integration/entrypoint/middleware"
)

// ProfileController handles merchant profile endpoints.
type ProfileController struct {
	getUseCase    *profile.GetProfileUseCase
	updateUseCase *profile.UpdateProfileUseCase
	resetUseCase  *profile.ResetDataUseCase
}

// NewProfileController creates a new profile controller instance.
func NewProfileController(
	getUseCase *profile.GetProfileUseCase,
	updateUseCase *profile.UpdateProfileUseCase,
	resetUseCase *profile.ResetDataUseCase,
) *ProfileController {
	return &ProfileController{
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		resetUseCase:  resetUseCase,
	}
}

// Get handles GET /profile requests.
func (c *ProfileController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), profile.GetProfileInput{UserID: userID})
	if err != nil {
		c.handleProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output.Profile))
}

// Update handles PUT /profile requests.
func (c *ProfileController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeProfileNotFound),
		})
		return
	}

	input := profile.UpdateProfileInput{
		UserID:                userID,
		FullName:              req.FullName,
		StoreName:             req.StoreName,
		HapticsEnabled:        req.HapticsEnabled,
		MascotSleepSeconds:    req.MascotSleepSeconds,
		MonthlyRevenueGoalBRL: req.MonthlyRevenueGoalBRL,
		DeliveryFeeBRL:        req.DeliveryFeeBRL,
		DeliveryDailyCostBRL:  req.DeliveryDailyCostBRL,
		CardRateCredit:        req.CardRateCredit,
		CardRateDebit:         req.CardRateDebit,
		AvatarURL:             req.AvatarURL,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output.Profile))
}

// ResetData handles POST /profile/reset-data requests.
func (c *ProfileController) ResetData(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ResetDataRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Password confirmation is required",
			Code:  string(domainerror.ErrCodeInvalidCredentials),
		})
		return
	}

	input := profile.ResetDataInput{
		UserID:   userID,
		Password: req.Password,
	}

	if _, err := c.resetUseCase.Execute(ctx.Request.Context(), input); err != nil {
		var authErr *domainerror.AuthError
		if errors.As(err, &authErr) {
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: authErr.Message,
				Code:  string(authErr.Code),
			})
			return
		}
		c.handleProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "All operational data has been erased"})
}

// handleProfileError handles profile errors and returns appropriate HTTP responses.
func (c *ProfileController) handleProfileError(ctx *gin.Context, err error) {
	var profileErr *domainerror.ProfileError
	if errors.As(err, &profileErr) {
		statusCode := c.getStatusCodeForProfileError(profileErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: profileErr.Message,
			Code:  string(profileErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForProfileError maps profile error codes to HTTP status codes.
func (c *ProfileController) getStatusCodeForProfileError(code domainerror.ProfileErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidMascotSleepSeconds,
		domainerror.ErrCodeNegativeRate:
		return http.StatusBadRequest
	case domainerror.ErrCodeProfileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
