package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/picking-scanner-api/internal/infrastructure/postgres"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica las migraciones pendientes del esquema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := postgres.Migrate(a.cfg.DB)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "esquema en versión %d\n", version)
			return nil
		},
	}
}
