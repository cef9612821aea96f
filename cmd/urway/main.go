package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/seralkhatem3210/urway/internal/interfaces/cli/migrate"
	"github.com/seralkhatem3210/urway/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "urway",
		Short: "URWAY payment gateway integration service",
		Long:  `Payment integration service for the URWAY gateway: hosted payment page initiation, notification verification, and transaction state tracking.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
