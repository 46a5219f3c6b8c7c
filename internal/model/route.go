package model

const (
	DefaultDepartureLabel = "09:00 AM"
	DefaultArrivalLabel   = "11:00 AM"
)

type Route struct {
	ID            int     `db:"id" json:"id"`
	Origin        string  `db:"origin" json:"origin"`
	Destination   string  `db:"destination" json:"destination"`
	Duration      int     `db:"duration" json:"duration"` // minutes
	DepartureTime string  `db:"departure_time" json:"departureTime"`
	ArrivalTime   string  `db:"arrival_time" json:"arrivalTime"`
	Price         float64 `db:"price" json:"price"`
}
