package model

import "time"

// Patch types carry partial updates. A nil field keeps the stored value.

type TrainPatch struct {
	Name     *string
	Capacity *int
	Type     *string
}

type RoutePatch struct {
	Origin        *string
	Destination   *string
	Duration      *int
	DepartureTime *string
	ArrivalTime   *string
	Price         *float64
}

type BookingPatch struct {
	TrainID       *int
	RouteID       *int
	DepartureTime *time.Time
	JourneyDate   *time.Time
	Seats         *int
}
