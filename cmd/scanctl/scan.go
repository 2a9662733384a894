package main

import (
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/picking-scanner-api/internal/application/dto"
	"github.com/jhoicas/picking-scanner-api/internal/application/picking"
	"github.com/jhoicas/picking-scanner-api/internal/domain/gs1"
	"github.com/jhoicas/picking-scanner-api/internal/infrastructure/postgres"
)

// newScanCmd procesa un escaneo real contra la base de datos, como lo haría la pantalla del escáner.
func newScanCmd(a *app) *cobra.Command {
	var companyID, pickingID string
	cmd := &cobra.Command{
		Use:   "scan <barcode>",
		Short: "Procesa un código sobre un picking y muestra la notificación resultante",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := contextWithTimeout(cmd, 30*time.Second)
			defer cancel()

			pool, err := postgres.NewPool(ctx, a.cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()

			settings := postgres.NewSettingsRepository(pool, postgres.SettingsDefaults(a.cfg.Scanner))
			uc := picking.NewScanUseCase(
				postgres.NewTxRunner(pool),
				picking.NewProductLookupService(postgres.NewProductRepository(pool)),
				settings,
				gs1.NewParser(),
				a.log,
			)
			res, err := uc.ProcessBarcodeScan(ctx, companyID, pickingID, expandGS(args[0]))
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(dto.ToScanResponse(res))
		},
	}
	cmd.Flags().StringVar(&companyID, "company", "", "ID de la empresa")
	cmd.Flags().StringVar(&pickingID, "picking", "", "ID del picking")
	_ = cmd.MarkFlagRequired("company")
	_ = cmd.MarkFlagRequired("picking")
	return cmd
}
