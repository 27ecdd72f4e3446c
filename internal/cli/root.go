package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/fitjournal-engine/internal/app"
	"github.com/comitanigiacomo/fitjournal-engine/internal/config"
)

type rootOptions struct {
	driver     string
	sqlitePath string
}

// NewRootCommand builds a fresh command tree; tests call it once per run.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "fitjournal",
		Short:         "fitjournal inspects a workout and nutrition journal from the terminal",
		Long:          "fitjournal reads the same store as the API server: weekly summaries, barcode lookups and schema migrations.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.driver, "driver", "", "Store driver override: pgx, postgres, sqlite or memory")
	root.PersistentFlags().StringVar(&opts.sqlitePath, "sqlite", "", "SQLite database path (implies --driver sqlite)")

	root.AddCommand(
		newWeeklyCommand(opts),
		newLookupCommand(opts),
		newMigrateCommand(opts),
	)
	return root
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if o.sqlitePath != "" {
		cfg.DBDriver = config.DriverSQLite
		cfg.SQLitePath = o.sqlitePath
	}
	if o.driver != "" {
		cfg.DBDriver = o.driver
	}
	return cfg, nil
}

func (o *rootOptions) withApp(ctx context.Context, run func(*app.App) error) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()
	return run(a)
}
