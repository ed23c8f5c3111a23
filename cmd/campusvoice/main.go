package main

import (
	"os"

	"github.com/spf13/cobra"

	"campusvoice/internal/interfaces/cli/admin"
	"campusvoice/internal/interfaces/cli/migrate"
	"campusvoice/internal/interfaces/cli/server"
)

// @title CampusVoice API
// @version 1.0
// @description Campus issue reporting with community support, contests and revalidation.
// @BasePath /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "campusvoice",
		Short: "CampusVoice - campus issue lifecycle service",
		Long:  `CampusVoice tracks campus issues from submission through resolution, contests and community revalidation.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		admin.NewUserCommand(),
		admin.NewDepartmentCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
