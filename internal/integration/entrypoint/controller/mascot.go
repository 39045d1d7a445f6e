// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pingoou/backend/internal/application/usecase/mascot"
	"github.com/pingoou/backend/internal/integration/entrypoint/dto"
	"github.com/pingoou/backend/internal/integration/entrypoint/middleware"
)

// MascotController handles the mascot mood endpoint.
type MascotController struct {
	moodUseCase *mascot.GetMascotMoodUseCase
}

// NewMascotController creates a new mascot controller instance.
func NewMascotController(moodUseCase *mascot.GetMascotMoodUseCase) *MascotController {
	return &MascotController{
		moodUseCase: moodUseCase,
	}
}

// GetMood handles GET /mascot/mood requests.
func (c *MascotController) GetMood(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	output, err := c.moodUseCase.Execute(ctx.Request.Context(), mascot.GetMascotMoodInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.MascotResponse{
		Mood:         string(output.Mood),
		LastSaleAt:   output.LastSaleAt,
		SleepSeconds: output.SleepSeconds,
	})
}
