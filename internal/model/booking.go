package model

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID            int           `db:"id" json:"id"`
	UserID        int           `db:"user_id" json:"userId"`
	TrainID       int           `db:"train_id" json:"trainId"`
	RouteID       int           `db:"route_id" json:"routeId"`
	DepartureTime time.Time     `db:"departure_time" json:"departureTime"`
	BookingDate   time.Time     `db:"booking_date" json:"bookingDate"`
	JourneyDate   time.Time     `db:"journey_date" json:"journeyDate"`
	Seats         int           `db:"seats" json:"seats"`
	Status        BookingStatus `db:"status" json:"status"`
}

// CanTransitionTo reports whether the status machine allows moving from s to
// next. The only edge is confirmed -> cancelled.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	return s == BookingConfirmed && next == BookingCancelled
}
