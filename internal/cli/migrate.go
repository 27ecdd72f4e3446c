package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/fitjournal-engine/internal/adapters/repository"
	"github.com/comitanigiacomo/fitjournal-engine/internal/app"
	"github.com/comitanigiacomo/fitjournal-engine/internal/config"
)

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the store schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if cfg.DBDriver == config.DriverMemory {
				return fmt.Errorf("migrate: the memory driver has no persistent schema")
			}

			_, db, err := app.OpenStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "Schema at version %d (%s)\n", repository.SchemaVersion(), cfg.DBDriver)
			return nil
		},
	}
}
