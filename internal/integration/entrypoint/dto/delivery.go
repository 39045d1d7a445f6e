// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/pingoou/backend/internal/domain/entity"

// ToggleWorkDayRequest represents the request body for flipping a worked-day flag.
type ToggleWorkDayRequest struct {
	WorkDate string `json:"work_date" binding:"required"`
}

// WorkDayResponse represents one worked day in API responses.
type WorkDayResponse struct {
	WorkDate string `json:"work_date"`
}

// WorkDayListResponse represents the response for worked-day listing.
type WorkDayListResponse struct {
	WorkDays []WorkDayResponse `json:"work_days"`
}

// ToggleWorkDayResponse represents the response after flipping a worked-day flag.
type ToggleWorkDayResponse struct {
	WorkDate string `json:"work_date"`
	Worked   bool   `json:"worked"`
}

// ToWorkDayListResponse converts domain DeliveryWorkDay entities to a list DTO.
func ToWorkDayListResponse(days []*entity.DeliveryWorkDay) WorkDayListResponse {
	resp := WorkDayListResponse{WorkDays: make([]WorkDayResponse, 0, len(days))}
	for _, day := range days {
		resp.WorkDays = append(resp.WorkDays, WorkDayResponse{WorkDate: day.WorkDate})
	}
	return resp
}
