//go:build integration
// +build integration

package router

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trainease/internal/api"
	"trainease/internal/apperr"
	"trainease/internal/authz"
	"trainease/internal/backend"
	"trainease/internal/client"
	"trainease/internal/database"
	"trainease/internal/handler"
	"trainease/internal/model"
	"trainease/internal/seed"
	"trainease/internal/service"
	"trainease/internal/session"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("trainease"),
		postgres.WithUsername("trainease"),
		postgres.WithPassword("trainease"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(dsn))
	db, err := database.NewPgxPool(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, seed.Run(ctx, db, slog.New(slog.NewTextHandler(io.Discard, nil))))

	guard, err := authz.NewRegoGuard(ctx)
	require.NoError(t, err)

	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = apperr.HTTPErrorHandler
	require.NoError(t, Setup(e, Deps{
		DB:       db,
		Sessions: session.NewManager(session.NewPostgresStore(db), []byte("secret"), time.Hour),
		Bookings: service.NewBookings(db, guard),
	}))

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	var apiErr *client.Error
	require.True(t, errors.As(err, &apiErr), "expected API error, got %v", err)
	require.Equal(t, status, apiErr.Status)
}

func TestBookingScenario(t *testing.T) {
	srv := startServer(t)
	ctx := context.Background()

	alice, err := client.New(srv.URL, backend.Primary)
	require.NoError(t, err)

	_, err = alice.CurrentUser(ctx)
	requireStatus(t, err, http.StatusUnauthorized)

	u, err := alice.Register(ctx, api.RegisterRequest{Username: "alice", Password: "wonderland", FullName: "Alice"})
	require.NoError(t, err)
	require.False(t, u.IsAdmin)

	_, err = alice.Login(ctx, "alice", "wrong")
	requireStatus(t, err, http.StatusUnauthorized)
	_, err = alice.Login(ctx, "alice", "wonderland")
	require.NoError(t, err)

	trains, err := alice.ListTrains(ctx)
	require.NoError(t, err)
	require.Len(t, trains, 3)

	b, err := alice.CreateBooking(ctx, api.CreateBookingRequest{TrainID: trains[0].ID, RouteID: 1})
	require.NoError(t, err)
	require.Equal(t, u.ID, b.UserID)
	require.Equal(t, 1, b.Seats)
	require.Equal(t, model.BookingConfirmed, b.Status)

	list, err := alice.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	canceled, err := alice.CancelBooking(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, "Booking canceled successfully", canceled.Message)
	require.Equal(t, model.BookingCancelled, canceled.Booking.Status)

	_, err = alice.CancelBooking(ctx, b.ID)
	requireStatus(t, err, http.StatusConflict)

	// a second user cannot see alice's booking
	bob, err := client.New(srv.URL, backend.Primary)
	require.NoError(t, err)
	_, err = bob.Register(ctx, api.RegisterRequest{Username: "bob", Password: "builder", FullName: "Bob"})
	require.NoError(t, err)
	_, err = bob.CancelBooking(ctx, b.ID)
	requireStatus(t, err, http.StatusForbidden)

	err = alice.DeleteTrain(ctx, 1)
	requireStatus(t, err, http.StatusForbidden)

	admin, err := client.New(srv.URL, backend.Primary)
	require.NoError(t, err)
	_, err = admin.Login(ctx, "admin", "admin")
	require.NoError(t, err)
	require.NoError(t, admin.DeleteTrain(ctx, 1))

	trains, err = admin.ListTrains(ctx)
	require.NoError(t, err)
	require.Len(t, trains, 2)

	all, err := admin.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	_, err = admin.SetUserRole(ctx, model.AdminUserID, false)
	requireStatus(t, err, http.StatusForbidden)

	require.NoError(t, alice.Logout(ctx))
	_, err = alice.CurrentUser(ctx)
	requireStatus(t, err, http.StatusUnauthorized)
}
