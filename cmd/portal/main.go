package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/officeless-platform/officeless-self-service-portal/internal/interfaces/cli/admin"
	"github.com/officeless-platform/officeless-self-service-portal/internal/interfaces/cli/migrate"
	"github.com/officeless-platform/officeless-self-service-portal/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "portal",
		Short: "Officeless self-service subscription portal",
		Long:  `The Officeless portal serves the customer onboarding flow and the administrative review API.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		admin.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
