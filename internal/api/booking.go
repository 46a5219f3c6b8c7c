package api

import (
	"time"

	"trainease/internal/model"
)

// swagger:model api.CreateBookingRequest
type CreateBookingRequest struct {
	TrainID       int        `json:"trainId" validate:"required,gt=0" example:"1"`
	RouteID       int        `json:"routeId" validate:"required,gt=0" example:"1"`
	DepartureTime *time.Time `json:"departureTime" example:"2026-11-01T09:00:00Z"`
	Seats         *int       `json:"seats" validate:"omitempty,min=1,max=10" example:"2"`
}

// UpdateBookingRequest carries a partial update. Status changes only through
// the cancel endpoint.
// swagger:model api.UpdateBookingRequest
type UpdateBookingRequest struct {
	TrainID       *int       `json:"trainId" validate:"omitempty,gt=0"`
	RouteID       *int       `json:"routeId" validate:"omitempty,gt=0"`
	DepartureTime *time.Time `json:"departureTime"`
	JourneyDate   *time.Time `json:"journeyDate"`
	Seats         *int       `json:"seats" validate:"omitempty,min=1,max=10"`
}

// swagger:model api.CancelBookingResponse
type CancelBookingResponse struct {
	Message string        `json:"message" example:"Booking canceled successfully"`
	Booking model.Booking `json:"booking"`
}
