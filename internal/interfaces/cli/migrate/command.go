package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/config"
	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/database"
	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/migration"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply the portal schema to the configured sql backend.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newUpCommand())

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply the schema",
		Long:  `Create or update the portal tables on the configured sqlite or mysql backend.`,
		RunE:  runUp,
	}
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	backend := cfg.Storage.Backend
	if backend != "sqlite" && backend != "mysql" {
		return fmt.Errorf("storage backend %q has no schema to migrate", backend)
	}

	if err := database.Init(backend, &cfg.Database); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := migration.Run(database.Get()); err != nil {
		return fmt.Errorf("failed to run migration: %w", err)
	}

	logger.Info("schema migration complete", "backend", backend)
	return nil
}
