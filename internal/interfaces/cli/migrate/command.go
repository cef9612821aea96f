package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/seralkhatem3210/urway/internal/infrastructure/config"
	"github.com/seralkhatem3210/urway/internal/infrastructure/database"
	"github.com/seralkhatem3210/urway/internal/infrastructure/migration"
	"github.com/seralkhatem3210/urway/internal/shared/logger"
)

var (
	env         string
	scriptsPath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations: apply pending migrations, roll back, and check status.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVar(&scriptsPath, "scripts", "./internal/infrastructure/migration/scripts", "Path to migration scripts")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(path string) error {
				if err := migration.Up(database.Get(), path); err != nil {
					return fmt.Errorf("migration up failed: %w", err)
				}
				logger.Info("migrations applied")
				return nil
			})
		},
	}
}

func newDownCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Rollback the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(path string) error {
				if err := migration.Down(database.Get(), path); err != nil {
					return fmt.Errorf("migration down failed: %w", err)
				}
				logger.Info("migration rolled back")
				return nil
			})
		},
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current migration version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(path string) error {
				version, err := migration.Version(database.Get())
				if err != nil {
					return fmt.Errorf("failed to get migration version: %w", err)
				}
				logger.Info("current migration version", "version", version)
				return nil
			})
		},
	}
}

func withDatabase(fn func(scriptsPath string) error) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	path, err := filepath.Abs(scriptsPath)
	if err != nil {
		return fmt.Errorf("failed to resolve scripts path: %w", err)
	}

	return fn(path)
}
