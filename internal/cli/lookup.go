package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/fitjournal-engine/internal/app"
	"github.com/comitanigiacomo/fitjournal-engine/internal/core/services"
)

func newLookupCommand(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "lookup <barcode>",
		Short: "Resolve a barcode into a food prefill via Open Food Facts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			rdb := app.ConnectRedis(cmd.Context(), cfg)
			if rdb != nil {
				defer rdb.Close()
			}
			svc := services.NewLookupService(app.NewProductLookup(cfg, rdb), cfg.LookupTimeout)

			prefill, found, err := svc.ResolveFoodPrefillFromBarcode(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if asJSON {
				b, err := json.MarshalIndent(map[string]any{"found": found, "prefill": prefill}, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal lookup json: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}

			out := cmd.OutOrStdout()
			if !found {
				fmt.Fprintf(out, "Barcode %s: no product found\n", prefill.Barcode)
				return nil
			}
			name := "(unnamed)"
			if prefill.Name != nil {
				name = *prefill.Name
			}
			fmt.Fprintf(out, "Barcode: %s\nFood: %s\n", prefill.Barcode, name)
			fmt.Fprintf(out, "Per 100g: %.1f kcal\nProtein: %.1fg\nCarbs: %.1fg\nFat: %.1fg\n", prefill.Calories, prefill.ProteinG, prefill.CarbsG, prefill.FatG)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}
