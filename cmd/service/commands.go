package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"trainease/internal/logger"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "service",
		Short:         "TrainEase booking API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve,
	}
	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Migrate, seed and start the HTTP API",
		RunE:  serve,
	})
	root.AddCommand(newMigrateCmd())
	return root
}

func serve(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "trainease",
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return run(ctx, cfg, log)
}

func newMigrateCmd() *cobra.Command {
	var dbURL string
	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the embedded schema migrations",
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if dbURL == "" {
				dbURL = os.Getenv("DATABASE_URL")
			}
			if dbURL == "" {
				return fmt.Errorf("DATABASE_URL is not set")
			}
			return nil
		},
	}
	migrate.PersistentFlags().StringVar(&dbURL, "db", "", "database URL (defaults to $DATABASE_URL)")

	migrate.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := runMigrationsFn(dbURL); err != nil {
					return fmt.Errorf("migration failed: %w", err)
				}
				cmd.Println("migrations applied")
				return nil
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back every migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := rollbackAllFn(dbURL); err != nil {
					return fmt.Errorf("rollback failed: %w", err)
				}
				cmd.Println("migrations rolled back")
				return nil
			},
		},
	)
	return migrate
}
