package store

import (
	"context"

	"trainease/internal/database"
	"trainease/internal/model"

	"github.com/jackc/pgx/v5"
)

const bookingColumns = `id, user_id, train_id, route_id, departure_time, booking_date, journey_date, seats, status`

func scanBooking(row pgx.Row) (*model.Booking, error) {
	b := &model.Booking{}
	var status string
	if err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.TrainID,
		&b.RouteID,
		&b.DepartureTime,
		&b.BookingDate,
		&b.JourneyDate,
		&b.Seats,
		&status,
	); err != nil {
		return nil, err
	}
	b.Status = model.BookingStatus(status)
	return b, nil
}

func collectBookings(op string, rows pgx.Rows, err error) ([]model.Booking, error) {
	if err != nil {
		return nil, wrap(op, err)
	}
	defer rows.Close()

	bookings := []model.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, wrap(op, err)
		}
		bookings = append(bookings, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(op, err)
	}
	return bookings, nil
}

func ListBookings(ctx context.Context, db database.DB) ([]model.Booking, error) {
	rows, err := db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY id`)
	return collectBookings("ListBookings", rows, err)
}

func ListBookingsByUser(ctx context.Context, db database.DB, userID int) ([]model.Booking, error) {
	rows, err := db.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE user_id = $1 ORDER BY id`,
		userID,
	)
	return collectBookings("ListBookingsByUser", rows, err)
}

func GetBooking(ctx context.Context, db database.DB, id int) (*model.Booking, error) {
	b, err := scanBooking(db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id))
	if err != nil {
		return nil, wrap("GetBooking", err)
	}
	return b, nil
}

// CreateBooking inserts b. booking_date comes from the database clock.
func CreateBooking(ctx context.Context, db database.DB, b *model.Booking) (*model.Booking, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO bookings (user_id, train_id, route_id, departure_time, journey_date, seats, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, booking_date`,
		b.UserID, b.TrainID, b.RouteID, b.DepartureTime, b.JourneyDate, b.Seats, string(b.Status),
	)
	if err := row.Scan(&b.ID, &b.BookingDate); err != nil {
		return nil, wrap("CreateBooking", err)
	}
	return b, nil
}

// UpdateBooking applies p. Ownership, status and booking_date are not
// writable here.
func UpdateBooking(ctx context.Context, db database.DB, id int, p model.BookingPatch) (*model.Booking, error) {
	b, err := scanBooking(db.QueryRow(ctx,
		`UPDATE bookings SET
		     train_id       = COALESCE($1, train_id),
		     route_id       = COALESCE($2, route_id),
		     departure_time = COALESCE($3, departure_time),
		     journey_date   = COALESCE($4, journey_date),
		     seats          = COALESCE($5, seats)
		 WHERE id = $6
		 RETURNING `+bookingColumns,
		p.TrainID, p.RouteID, p.DepartureTime, p.JourneyDate, p.Seats, id,
	))
	if err != nil {
		return nil, wrap("UpdateBooking", err)
	}
	return b, nil
}

// CancelBooking moves a confirmed booking to cancelled. ErrNotFound means no
// confirmed booking with that id existed at write time.
func CancelBooking(ctx context.Context, db database.DB, id int) (*model.Booking, error) {
	b, err := scanBooking(db.QueryRow(ctx,
		`UPDATE bookings SET status = $1
		 WHERE id = $2 AND status = $3
		 RETURNING `+bookingColumns,
		string(model.BookingCancelled), id, string(model.BookingConfirmed),
	))
	if err != nil {
		return nil, wrap("CancelBooking", err)
	}
	return b, nil
}
