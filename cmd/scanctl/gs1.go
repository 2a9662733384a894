package main

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/picking-scanner-api/internal/application/picking"
	"github.com/jhoicas/picking-scanner-api/internal/domain/gs1"
)

type gs1Output struct {
	GTIN   string `json:"gtin,omitempty"`
	Lot    string `json:"lot,omitempty"`
	Serial string `json:"serial,omitempty"`
	Expiry string `json:"expiry,omitempty"`
}

// newGS1Cmd decodifica un código GS1-128 sin tocar la base de datos. "\x1d" o "<GS>" representan FNC1.
func newGS1Cmd() *cobra.Command {
	return &cobra.Command{
		Use:     "gs1 <barcode>",
		Short:   "Decodifica un código GS1-128 y muestra GTIN, lote, serie y caducidad",
		Example: `  scanctl gs1 '(01)09501101530003(17)261231(10)LOT42'` + "\n" + `  scanctl gs1 '010950110153000310LOT42<GS>17261231'`,
		Args:    cobra.ExactArgs(1),
		// Sin configuración ni logger: no depende del entorno
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			barcode := picking.NormalizeBarcode(expandGS(args[0]))
			res, err := gs1.NewParser().Decode(barcode)
			if err != nil {
				return err
			}
			out := gs1Output{GTIN: res.GTIN, Lot: res.Lot, Serial: res.Serial}
			if res.Expiry != nil {
				out.Expiry = res.Expiry.Format("2006-01-02")
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}

var gsPlaceholders = strings.NewReplacer("<GS>", string(gs1.GroupSeparator), `\x1d`, string(gs1.GroupSeparator))

func expandGS(s string) string { return gsPlaceholders.Replace(s) }
