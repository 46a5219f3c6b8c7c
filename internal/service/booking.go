// File: internal/service/booking.go
package service

import (
	"context"
	"errors"
	"time"

	"trainease/internal/api"
	"trainease/internal/apperr"
	"trainease/internal/authz"
	"trainease/internal/database"
	"trainease/internal/model"
	"trainease/internal/store"
)

var (
	listBookings       = store.ListBookings
	listBookingsByUser = store.ListBookingsByUser
	getBooking         = store.GetBooking
	createBooking      = store.CreateBooking
	updateBooking      = store.UpdateBooking
	cancelBooking      = store.CancelBooking
	getTrain           = store.GetTrain
	getRoute           = store.GetRoute
	now                = time.Now
)

const defaultSeats = 1

// Bookings 套用訂票的擁有權與狀態規則
type Bookings struct {
	db    database.DB
	guard authz.Guard
}

func NewBookings(db database.DB, guard authz.Guard) *Bookings {
	return &Bookings{db: db, guard: guard}
}

func subjectOf(u *model.User) authz.Subject {
	return authz.Subject{ID: u.ID, IsAdmin: u.IsAdmin}
}

// List 一般使用者只看到自己的訂票，管理員看到全部
func (s *Bookings) List(ctx context.Context, requester *model.User) ([]model.Booking, error) {
	var (
		bookings []model.Booking
		err      error
	)
	if requester.IsAdmin {
		bookings, err = listBookings(ctx, s.db)
	} else {
		bookings, err = listBookingsByUser(ctx, s.db, requester.ID)
	}
	if err != nil {
		return nil, apperr.Internal("failed to list bookings", err)
	}
	return bookings, nil
}

// Get 依序檢查：存在 (404) → 擁有者或管理員 (403)
func (s *Bookings) Get(ctx context.Context, requester *model.User, id int) (*model.Booking, error) {
	b, err := getBooking(ctx, s.db, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("booking")
	}
	if err != nil {
		return nil, apperr.Internal("failed to load booking", err)
	}
	allowed, err := s.guard.Allow(ctx, subjectOf(requester), b.UserID)
	if err != nil {
		return nil, apperr.Internal("failed to authorize", err)
	}
	if !allowed {
		return nil, apperr.Forbidden("you do not have access to this booking")
	}
	return b, nil
}

// Create 擁有者一律為呼叫者，journeyDate 與 departureTime 相同
func (s *Bookings) Create(ctx context.Context, requester *model.User, req api.CreateBookingRequest) (*model.Booking, error) {
	if err := s.checkRefs(ctx, &req.TrainID, &req.RouteID); err != nil {
		return nil, err
	}
	departure := now().UTC()
	if req.DepartureTime != nil {
		departure = *req.DepartureTime
	}
	seats := defaultSeats
	if req.Seats != nil {
		seats = *req.Seats
	}
	b, err := createBooking(ctx, s.db, &model.Booking{
		UserID:        requester.ID,
		TrainID:       req.TrainID,
		RouteID:       req.RouteID,
		DepartureTime: departure,
		JourneyDate:   departure,
		Seats:         seats,
		Status:        model.BookingConfirmed,
	})
	if err != nil {
		return nil, apperr.Internal("failed to create booking", err)
	}
	return b, nil
}

// Update 只修改行程欄位；狀態只能透過 Cancel 變更
func (s *Bookings) Update(ctx context.Context, requester *model.User, id int, req api.UpdateBookingRequest) (*model.Booking, error) {
	if _, err := s.Get(ctx, requester, id); err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, req.TrainID, req.RouteID); err != nil {
		return nil, err
	}
	b, err := updateBooking(ctx, s.db, id, model.BookingPatch{
		TrainID:       req.TrainID,
		RouteID:       req.RouteID,
		DepartureTime: req.DepartureTime,
		JourneyDate:   req.JourneyDate,
		Seats:         req.Seats,
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("booking")
	}
	if err != nil {
		return nil, apperr.Internal("failed to update booking", err)
	}
	return b, nil
}

// Cancel 依序檢查：存在 (404) → 權限 (403) → 狀態為 confirmed (409)
func (s *Bookings) Cancel(ctx context.Context, requester *model.User, id int) (*model.Booking, error) {
	b, err := s.Get(ctx, requester, id)
	if err != nil {
		return nil, err
	}
	if !b.Status.CanTransitionTo(model.BookingCancelled) {
		return nil, apperr.Conflict("booking is already cancelled")
	}
	cancelled, err := cancelBooking(ctx, s.db, id)
	if errors.Is(err, store.ErrNotFound) {
		// 另一個請求搶先取消
		return nil, apperr.Conflict("booking is already cancelled")
	}
	if err != nil {
		return nil, apperr.Internal("failed to cancel booking", err)
	}
	return cancelled, nil
}

// checkRefs 確認指定的車次與路線存在；nil 代表未指定
func (s *Bookings) checkRefs(ctx context.Context, trainID, routeID *int) error {
	details := map[string]any{}
	if trainID != nil {
		if _, err := getTrain(ctx, s.db, *trainID); errors.Is(err, store.ErrNotFound) {
			details["trainId"] = "exists"
		} else if err != nil {
			return apperr.Internal("failed to load train", err)
		}
	}
	if routeID != nil {
		if _, err := getRoute(ctx, s.db, *routeID); errors.Is(err, store.ErrNotFound) {
			details["routeId"] = "exists"
		} else if err != nil {
			return apperr.Internal("failed to load route", err)
		}
	}
	if len(details) > 0 {
		return apperr.Validation("invalid request", details)
	}
	return nil
}
