package main

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/picking-scanner-api/pkg/config"
	"github.com/jhoicas/picking-scanner-api/pkg/logger"
)

// app estado compartido por los subcomandos; se completa en PersistentPreRunE.
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	verbose bool
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "scanctl",
		Short:         "Herramientas del servicio de escaneo de pickings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			level := "warn"
			if a.verbose {
				level = "debug"
			}
			a.log = logger.New(logger.Config{Env: "development", Level: level, Service: "scanctl"})
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log en nivel debug")

	root.AddCommand(
		newMigrateCmd(a),
		newGS1Cmd(),
		newScanCmd(a),
		newTokenCmd(a),
	)
	return root
}
