package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"trainease/internal/api"
	"trainease/internal/apperr"
	"trainease/internal/authz"
	"trainease/internal/database"
	"trainease/internal/model"
	"trainease/internal/store"

	"github.com/stretchr/testify/require"
)

/* ---------- in-memory booking table ---------- */

type memBookings struct {
	rows   map[int]*model.Booking
	nextID int
}

func stubBookings(t *testing.T) *memBookings {
	t.Helper()
	origList, origListByUser, origGet := listBookings, listBookingsByUser, getBooking
	origCreate, origUpdate, origCancel := createBooking, updateBooking, cancelBooking
	origTrain, origRoute, origNow := getTrain, getRoute, now
	t.Cleanup(func() {
		listBookings, listBookingsByUser, getBooking = origList, origListByUser, origGet
		createBooking, updateBooking, cancelBooking = origCreate, origUpdate, origCancel
		getTrain, getRoute, now = origTrain, origRoute, origNow
	})

	m := &memBookings{rows: map[int]*model.Booking{}, nextID: 1}
	notFound := func(op string) error { return fmt.Errorf("%s: %w", op, store.ErrNotFound) }

	listBookings = func(context.Context, database.DB) ([]model.Booking, error) {
		out := []model.Booking{}
		for id := 1; id < m.nextID; id++ {
			if b, ok := m.rows[id]; ok {
				out = append(out, *b)
			}
		}
		return out, nil
	}
	listBookingsByUser = func(ctx context.Context, db database.DB, userID int) ([]model.Booking, error) {
		all, _ := listBookings(ctx, db)
		out := []model.Booking{}
		for _, b := range all {
			if b.UserID == userID {
				out = append(out, b)
			}
		}
		return out, nil
	}
	getBooking = func(_ context.Context, _ database.DB, id int) (*model.Booking, error) {
		b, ok := m.rows[id]
		if !ok {
			return nil, notFound("GetBooking")
		}
		cp := *b
		return &cp, nil
	}
	createBooking = func(_ context.Context, _ database.DB, b *model.Booking) (*model.Booking, error) {
		b.ID = m.nextID
		b.BookingDate = time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)
		m.nextID++
		cp := *b
		m.rows[b.ID] = &cp
		return b, nil
	}
	updateBooking = func(_ context.Context, _ database.DB, id int, p model.BookingPatch) (*model.Booking, error) {
		b, ok := m.rows[id]
		if !ok {
			return nil, notFound("UpdateBooking")
		}
		if p.Seats != nil {
			b.Seats = *p.Seats
		}
		if p.TrainID != nil {
			b.TrainID = *p.TrainID
		}
		cp := *b
		return &cp, nil
	}
	cancelBooking = func(_ context.Context, _ database.DB, id int) (*model.Booking, error) {
		b, ok := m.rows[id]
		if !ok || b.Status != model.BookingConfirmed {
			return nil, notFound("CancelBooking")
		}
		b.Status = model.BookingCancelled
		cp := *b
		return &cp, nil
	}
	getTrain = func(_ context.Context, _ database.DB, id int) (*model.Train, error) {
		if id > 3 {
			return nil, notFound("GetTrain")
		}
		return &model.Train{ID: id}, nil
	}
	getRoute = func(_ context.Context, _ database.DB, id int) (*model.Route, error) {
		if id > 5 {
			return nil, notFound("GetRoute")
		}
		return &model.Route{ID: id}, nil
	}
	now = func() time.Time { return time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC) }
	return m
}

type errGuard struct{}

func (errGuard) Allow(context.Context, authz.Subject, int) (bool, error) {
	return false, errors.New("policy unavailable")
}

var (
	admin = &model.User{ID: 1, Username: "admin", IsAdmin: true}
	alice = &model.User{ID: 2, Username: "alice"}
	bob   = &model.User{ID: 3, Username: "bob"}
)

func intPtr(v int) *int { return &v }

/* ---------- tests ---------- */

func TestBookingCreateDefaults(t *testing.T) {
	stubBookings(t)
	svc := NewBookings(&database.FakeDB{}, authz.NewBuiltinGuard())

	b, err := svc.Create(context.Background(), alice, api.CreateBookingRequest{TrainID: 1, RouteID: 1})
	require.NoError(t, err)
	require.Equal(t, alice.ID, b.UserID)
	require.Equal(t, 1, b.Seats)
	require.Equal(t, model.BookingConfirmed, b.Status)
	require.Equal(t, now(), b.DepartureTime)
	require.Equal(t, b.DepartureTime, b.JourneyDate)

	dep := time.Date(2026, 12, 24, 18, 30, 0, 0, time.UTC)
	b, err = svc.Create(context.Background(), alice, api.CreateBookingRequest{TrainID: 2, RouteID: 3, DepartureTime: &dep, Seats: intPtr(4)})
	require.NoError(t, err)
	require.Equal(t, dep, b.DepartureTime)
	require.Equal(t, dep, b.JourneyDate)
	require.Equal(t, 4, b.Seats)
}

func TestBookingCreateUnknownRefs(t *testing.T) {
	stubBookings(t)
	svc := NewBookings(&database.FakeDB{}, authz.NewBuiltinGuard())

	_, err := svc.Create(context.Background(), alice, api.CreateBookingRequest{TrainID: 9, RouteID: 9})
	appErr := apperr.As(err)
	require.Equal(t, apperr.CodeValidation, appErr.Code)
	require.Equal(t, "exists", appErr.Details["trainId"])
	require.Equal(t, "exists", appErr.Details["routeId"])
}

func TestBookingListScopes(t *testing.T) {
	stubBookings(t)
	svc := NewBookings(&database.FakeDB{}, authz.NewBuiltinGuard())
	ctx := context.Background()

	_, err := svc.Create(ctx, alice, api.CreateBookingRequest{TrainID: 1, RouteID: 1})
	require.NoError(t, err)
	_, err = svc.Create(ctx, bob, api.CreateBookingRequest{TrainID: 1, RouteID: 2})
	require.NoError(t, err)

	mine, err := svc.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, alice.ID, mine[0].UserID)

	all, err := svc.List(ctx, admin)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestBookingListError(t *testing.T) {
	stubBookings(t)
	listBookingsByUser = func(context.Context, database.DB, int) ([]model.Booking, error) {
		return nil, errors.New("db down")
	}
	_, err := NewBookings(&database.FakeDB{}, authz.NewBuiltinGuard()).List(context.Background(), alice)
	require.True(t, apperr.Is(err, apperr.CodeInternal))
}

func TestBookingOwnership(t *testing.T) {
	stubBookings(t)
	svc := NewBookings(&database.FakeDB{}, authz.NewBuiltinGuard())
	ctx := context.Background()

	b, err := svc.Create(ctx, alice, api.CreateBookingRequest{TrainID: 1, RouteID: 1})
	require.NoError(t, err)

	_, err = svc.Get(ctx, bob, b.ID)
	require.True(t, apperr.Is(err, apperr.CodeForbidden))
	_, err = svc.Update(ctx, bob, b.ID, api.UpdateBookingRequest{Seats: intPtr(2)})
	require.True(t, apperr.Is(err, apperr.CodeForbidden))
	_, err = svc.Cancel(ctx, bob, b.ID)
	require.True(t, apperr.Is(err, apperr.CodeForbidden))

	got, err := svc.Get(ctx, alice, b.ID)
	require.NoError(t, err)
	require.Equal(t, b.ID, got.ID)

	got, err = svc.Get(ctx, admin, b.ID)
	require.NoError(t, err)
	require.Equal(t, alice.ID, got.UserID)

	_, err = svc.Get(ctx, alice, 999)
	require.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestBookingGuardFailure(t *testing.T) {
	stubBookings(t)
	ctx := context.Background()
	b, err := NewBookings(&database.FakeDB{}, authz.NewBuiltinGuard()).
		Create(ctx, alice, api.CreateBookingRequest{TrainID: 1, RouteID: 1})
	require.NoError(t, err)

	_, err = NewBookings(&database.FakeDB{}, errGuard{}).Get(ctx, alice, b.ID)
	require.True(t, apperr.Is(err, apperr.CodeInternal))
}

func TestBookingUpdate(t *testing.T) {
	stubBookings(t)
	svc := NewBookings(&database.FakeDB{}, authz.NewBuiltinGuard())
	ctx := context.Background()

	b, err := svc.Create(ctx, alice, api.CreateBookingRequest{TrainID: 1, RouteID: 1})
	require.NoError(t, err)

	got, err := svc.Update(ctx, admin, b.ID, api.UpdateBookingRequest{Seats: intPtr(3), TrainID: intPtr(2)})
	require.NoError(t, err)
	require.Equal(t, 3, got.Seats)
	require.Equal(t, 2, got.TrainID)
	require.Equal(t, alice.ID, got.UserID)
	require.Equal(t, model.BookingConfirmed, got.Status)

	_, err = svc.Update(ctx, alice, b.ID, api.UpdateBookingRequest{TrainID: intPtr(42)})
	require.True(t, apperr.Is(err, apperr.CodeValidation))

	_, err = svc.Update(ctx, alice, 404, api.UpdateBookingRequest{})
	require.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestBookingCancelLifecycle(t *testing.T) {
	m := stubBookings(t)
	svc := NewBookings(&database.FakeDB{}, authz.NewBuiltinGuard())
	ctx := context.Background()

	b, err := svc.Create(ctx, alice, api.CreateBookingRequest{TrainID: 1, RouteID: 1})
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, alice, 77)
	require.True(t, apperr.Is(err, apperr.CodeNotFound))

	cancelled, err := svc.Cancel(ctx, alice, b.ID)
	require.NoError(t, err)
	require.Equal(t, model.BookingCancelled, cancelled.Status)

	_, err = svc.Cancel(ctx, alice, b.ID)
	require.True(t, apperr.Is(err, apperr.CodeConflict))
	_, err = svc.Cancel(ctx, admin, b.ID)
	require.True(t, apperr.Is(err, apperr.CodeConflict))
	require.Equal(t, model.BookingCancelled, m.rows[b.ID].Status)
}

func TestBookingCancelLostRace(t *testing.T) {
	stubBookings(t)
	svc := NewBookings(&database.FakeDB{}, authz.NewBuiltinGuard())
	ctx := context.Background()

	b, err := svc.Create(ctx, alice, api.CreateBookingRequest{TrainID: 1, RouteID: 1})
	require.NoError(t, err)

	cancelBooking = func(context.Context, database.DB, int) (*model.Booking, error) {
		return nil, fmt.Errorf("CancelBooking: %w", store.ErrNotFound)
	}
	_, err = svc.Cancel(ctx, alice, b.ID)
	require.True(t, apperr.Is(err, apperr.CodeConflict))

	cancelBooking = func(context.Context, database.DB, int) (*model.Booking, error) {
		return nil, errors.New("db down")
	}
	_, err = svc.Cancel(ctx, alice, b.ID)
	require.True(t, apperr.Is(err, apperr.CodeInternal))
}
