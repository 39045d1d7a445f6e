// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pingoou/backend/internal/application/usecase/stats"
	"github.com/pingoou/backend/internal/domain/entity"
	domainerror "github.com/pingoou/backend/internal/domain/error"
	"github.com/pingoou/backend/internal/integration/entrypoint/dto"
	"github.com/pingoou/backend/internal/integration/entrypoint/middleware"
)

// StatsController handles financial aggregation endpoints.
type StatsController struct {
	filteredUseCase  *stats.GetFilteredStatsUseCase
	dashboardUseCase *stats.GetDashboardStatsUseCase
}

// NewStatsController creates a new stats controller instance.
func NewStatsController(
	filteredUseCase *stats.GetFilteredStatsUseCase,
	dashboardUseCase *stats.GetDashboardStatsUseCase,
) *StatsController {
	return &StatsController{
		filteredUseCase:  filteredUseCase,
		dashboardUseCase: dashboardUseCase,
	}
}

// GetFiltered handles GET /stats requests.
// The period selector comes from the query string; the custom period reads
// from and to dates in YYYY-MM-DD form. Missing or inverted custom bounds are
// not an error, the engine falls back to the month interval.
func (c *StatsController) GetFiltered(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	period := stats.Period(ctx.DefaultQuery("period", string(stats.PeriodMonth)))

	input := stats.GetFilteredStatsInput{
		UserID: userID,
		Period: period,
	}

	if period == stats.PeriodCustom {
		custom, err := parseCustomRange(ctx.Query("from"), ctx.Query("to"))
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Custom period dates must be in YYYY-MM-DD form",
				Code:  string(domainerror.ErrCodeInvalidPeriod),
			})
			return
		}
		input.Custom = custom
	}

	output, err := c.filteredUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleStatsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StatsResponse{
		Period:  string(period),
		From:    output.Period.Start,
		To:      output.Period.End,
		Summary: output.Summary,
	})
}

// GetDashboard handles GET /stats/dashboard requests.
func (c *StatsController) GetDashboard(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	output, err := c.dashboardUseCase.Execute(ctx.Request.Context(), stats.GetDashboardStatsInput{UserID: userID})
	if err != nil {
		c.handleStatsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// parseCustomRange parses explicit from/to query parameters. Absent parameters
// yield zero times, which the period resolver treats as "fall back to month".
// Only a present but malformed date is an error.
func parseCustomRange(from, to string) (*stats.CustomRange, error) {
	custom := &stats.CustomRange{}
	if from != "" {
		fromDate, err := time.Parse(entity.WorkDateLayout, from)
		if err != nil {
			return nil, err
		}
		custom.From = fromDate
	}
	if to != "" {
		toDate, err := time.Parse(entity.WorkDateLayout, to)
		if err != nil {
			return nil, err
		}
		custom.To = toDate
	}
	return custom, nil
}

// handleStatsError handles stats errors and returns appropriate HTTP responses.
func (c *StatsController) handleStatsError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrInvalidPeriod):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Unknown period selector",
			Code:  string(domainerror.ErrCodeInvalidPeriod),
		})
	case errors.Is(err, domainerror.ErrStatsUnavailable):
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "Stats are temporarily unavailable",
			Code:  string(domainerror.ErrCodeStatsUnavailable),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}
