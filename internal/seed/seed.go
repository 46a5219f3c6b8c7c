// Package seed loads the administrator account and the sample catalogue.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"trainease/internal/database"
	"trainease/internal/model"
	"trainease/internal/service"
	"trainease/internal/store"
)

const (
	adminUsername = "admin"
	adminPassword = "admin"
	adminFullName = "Admin User"
)

var (
	withTx       = database.WithTx
	ensureAdmin  = store.EnsureAdmin
	countTrains  = store.CountTrains
	countRoutes  = store.CountRoutes
	createTrain  = store.CreateTrain
	createRoute  = store.CreateRoute
	hashPassword = service.HashPassword
)

var sampleTrains = []model.Train{
	{Name: "Express 101", Capacity: 200, Type: "Express"},
	{Name: "Local 202", Capacity: 150, Type: "Local"},
	{Name: "Bullet 303", Capacity: 300, Type: "Bullet"},
}

var sampleRoutes = []model.Route{
	{Origin: "New York", Destination: "Boston", Duration: 240, DepartureTime: "09:00 AM", ArrivalTime: "01:00 PM", Price: 45.99},
	{Origin: "Boston", Destination: "Washington DC", Duration: 360, DepartureTime: "10:30 AM", ArrivalTime: "04:30 PM", Price: 65.50},
	{Origin: "Washington DC", Destination: "Chicago", Duration: 720, DepartureTime: "08:15 AM", ArrivalTime: "08:15 PM", Price: 120.75},
	{Origin: "Chicago", Destination: "Los Angeles", Duration: 2160, DepartureTime: "07:00 AM", ArrivalTime: "07:00 AM", Price: 250.00},
	{Origin: "Los Angeles", Destination: "San Francisco", Duration: 380, DepartureTime: "02:00 PM", ArrivalTime: "08:20 PM", Price: 89.99},
}

// Run is idempotent: the admin row is only inserted when id 1 is free and
// the samples only when their table is empty.
func Run(ctx context.Context, db database.DB, logger *slog.Logger) error {
	hash, err := hashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	var created bool
	err = withTx(ctx, db, func(q database.Querier) error {
		var err error
		created, err = ensureAdmin(ctx, q, adminUsername, adminFullName, hash)
		return err
	})
	if err != nil {
		return err
	}
	if created {
		logger.Info("seeded administrator", "username", adminUsername)
	}

	n, err := countTrains(ctx, db)
	if err != nil {
		return err
	}
	if n == 0 {
		for i := range sampleTrains {
			t := sampleTrains[i]
			if _, err := createTrain(ctx, db, &t); err != nil {
				return err
			}
		}
		logger.Info("seeded trains", "count", len(sampleTrains))
	}

	n, err = countRoutes(ctx, db)
	if err != nil {
		return err
	}
	if n == 0 {
		for i := range sampleRoutes {
			r := sampleRoutes[i]
			if _, err := createRoute(ctx, db, &r); err != nil {
				return err
			}
		}
		logger.Info("seeded routes", "count", len(sampleRoutes))
	}
	return nil
}
