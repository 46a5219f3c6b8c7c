package seed

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"trainease/internal/database"
	"trainease/internal/model"
	"trainease/internal/service"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	adminHash string
	txs       int
	trains    []model.Train
	routes    []model.Route
}

func stubStore(t *testing.T, trainCount, routeCount int) *recorder {
	t.Helper()
	origTx, origEnsure, origCT, origCR := withTx, ensureAdmin, countTrains, countRoutes
	origTrain, origRoute, origHash := createTrain, createRoute, hashPassword
	t.Cleanup(func() {
		withTx, ensureAdmin, countTrains, countRoutes = origTx, origEnsure, origCT, origCR
		createTrain, createRoute, hashPassword = origTrain, origRoute, origHash
	})

	rec := &recorder{}
	withTx = func(_ context.Context, db database.DB, fn func(database.Querier) error) error {
		rec.txs++
		return fn(db)
	}
	ensureAdmin = func(_ context.Context, _ database.Querier, username, _, hash string) (bool, error) {
		require.Equal(t, "admin", username)
		rec.adminHash = hash
		return true, nil
	}
	countTrains = func(context.Context, database.DB) (int, error) { return trainCount, nil }
	countRoutes = func(context.Context, database.DB) (int, error) { return routeCount, nil }
	createTrain = func(_ context.Context, _ database.DB, tr *model.Train) (*model.Train, error) {
		rec.trains = append(rec.trains, *tr)
		return tr, nil
	}
	createRoute = func(_ context.Context, _ database.DB, r *model.Route) (*model.Route, error) {
		rec.routes = append(rec.routes, *r)
		return r, nil
	}
	return rec
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestRunSeedsEmptyDatabase(t *testing.T) {
	rec := stubStore(t, 0, 0)
	require.NoError(t, Run(context.Background(), &database.FakeDB{}, quietLogger()))

	require.True(t, service.VerifyPassword(rec.adminHash, "admin"))
	require.Equal(t, 1, rec.txs)
	require.Len(t, rec.trains, 3)
	require.Equal(t, "Express 101", rec.trains[0].Name)
	require.Len(t, rec.routes, 5)
	require.Equal(t, "Boston", rec.routes[0].Destination)
	require.Equal(t, 2160, rec.routes[3].Duration)
}

func TestRunSkipsPopulatedTables(t *testing.T) {
	rec := stubStore(t, 4, 1)
	require.NoError(t, Run(context.Background(), &database.FakeDB{}, quietLogger()))
	require.Empty(t, rec.trains)
	require.Empty(t, rec.routes)
}

func TestRunErrors(t *testing.T) {
	boom := errors.New("boom")
	ctx := context.Background()

	stubStore(t, 0, 0)
	hashPassword = func(string) (string, error) { return "", boom }
	require.ErrorIs(t, Run(ctx, &database.FakeDB{}, quietLogger()), boom)

	stubStore(t, 0, 0)
	ensureAdmin = func(context.Context, database.Querier, string, string, string) (bool, error) { return false, boom }
	require.ErrorIs(t, Run(ctx, &database.FakeDB{}, quietLogger()), boom)

	stubStore(t, 0, 0)
	countTrains = func(context.Context, database.DB) (int, error) { return 0, boom }
	require.ErrorIs(t, Run(ctx, &database.FakeDB{}, quietLogger()), boom)

	stubStore(t, 0, 0)
	createRoute = func(context.Context, database.DB, *model.Route) (*model.Route, error) { return nil, boom }
	require.ErrorIs(t, Run(ctx, &database.FakeDB{}, quietLogger()), boom)
}
