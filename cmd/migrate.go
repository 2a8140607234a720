package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Aquilabot/KreaPC-Builder/internal/app"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the catalog database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Migrate(cmd.Context())
	},
}
