package cmd

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"github.com/templui/fittrack/internal/config"
	"github.com/templui/fittrack/internal/db"
	"github.com/templui/fittrack/internal/logger"
	"github.com/templui/fittrack/internal/repository"
	"github.com/templui/fittrack/internal/seed"
)

func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
	}

	cmd.AddCommand(
		migrateSubcommand("up", "Apply all pending migrations", db.RunMigrations),
		migrateSubcommand("down", "Roll back the latest migration", db.MigrateDown),
		migrateSubcommand("status", "Show applied and pending migrations", db.MigrationStatus),
	)
	return cmd
}

func migrateSubcommand(use, short string, run func(*sql.DB, string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, database, err := openDB()
			if err != nil {
				return err
			}
			defer database.Close()

			return run(database.DB, cfg.DBDriver)
		},
	}
}

func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the demo goals and activities into empty tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, database, err := openDB()
			if err != nil {
				return err
			}
			defer database.Close()

			err = db.RunMigrations(database.DB, cfg.DBDriver)
			if err != nil {
				return err
			}

			return seed.Seed(cmd.Context(),
				repository.NewGoalRepository(database),
				repository.NewActivityRepository(database),
				time.Now(),
			)
		},
	}
}

func openDB() (*config.Config, *sqlx.DB, error) {
	cfg := config.Load()
	logger.Init(true, "", cfg.AppEnv)

	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	return cfg, database, nil
}
