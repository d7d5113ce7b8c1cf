package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mnsternik/issue-manager/internal/interfaces/cli/migrate"
	"github.com/mnsternik/issue-manager/internal/interfaces/cli/server"
)

// @title Issue Manager API
// @version 1.0
// @description Request tracking service with team-based assignment, responses and file attachments.
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "issue-manager",
		Short: "Issue Manager - request tracking service",
		Long:  `Issue Manager is a request tracking service with team-based assignment, discussion threads, file attachments and notifications.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
