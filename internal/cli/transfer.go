package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BartekS5/osmeac/internal/config"
	"github.com/BartekS5/osmeac/internal/store"
	"github.com/BartekS5/osmeac/internal/transfer"
)

// TransferOptions holds the target store and batching flags of the
// transfer command.
type TransferOptions struct {
	Target         config.StoreConfig
	BatchSize      int
	DryRun         bool
	IncludeCurrent bool
}

func newTransferCmd(a *app) *cobra.Command {
	opts := &TransferOptions{}

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Copy every saved order from the configured store to another one",
		Long: `Copy every saved order from the configured store to a target store,
keeping ids and timestamps. Orders already present in the target are
replaced, so the command can be re-run.`,
		Example: `  osmeac transfer --to-driver sqlite --to-dsn backup.db
  osmeac transfer --to-driver mongo --to-dsn mongodb://localhost:27017 --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransfer(cmd, a, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Target.Driver, "to-driver", "", "Target store driver: file, sqlite, sqlserver or mongo")
	cmd.Flags().StringVar(&opts.Target.DSN, "to-dsn", "", "Target connection string")
	cmd.Flags().StringVar(&opts.Target.Dir, "to-dir", "", "Target directory for the file driver")
	cmd.Flags().StringVar(&opts.Target.Database, "to-database", "osmeac", "Target MongoDB database")
	cmd.Flags().IntVarP(&opts.BatchSize, "batch-size", "b", transfer.DefaultBatchSize, "Batch size")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Report what would be copied without writing")
	cmd.Flags().BoolVar(&opts.IncludeCurrent, "include-current", false, "Also copy the current working order")
	cmd.MarkFlagRequired("to-driver")

	return cmd
}

func runTransfer(cmd *cobra.Command, a *app, opts *TransferOptions) error {
	target := opts.Target
	switch target.Driver {
	case config.DriverFile:
		if target.Dir == "" {
			return fmt.Errorf("--to-dir is required for the file driver")
		}
	case config.DriverSQLite, config.DriverSQLServer, config.DriverMongo:
		if target.DSN == "" {
			return fmt.Errorf("--to-dsn is required for the %s driver", target.Driver)
		}
	default:
		return fmt.Errorf("unknown target driver %q", target.Driver)
	}
	if target == a.cfg.Store {
		return fmt.Errorf("target store is the configured store")
	}

	return a.withStore(cmd, func(ctx context.Context, src store.Store) error {
		dst, err := store.Open(ctx, target)
		if err != nil {
			return fmt.Errorf("open target %s store: %w", target.Driver, err)
		}
		defer dst.Close()

		stats, err := transfer.Copy(ctx, src, dst, opts.BatchSize, opts.DryRun, opts.IncludeCurrent)
		if err != nil {
			return err
		}

		if opts.DryRun {
			fmt.Fprintf(cmd.OutOrStdout(), "Dry run: %d saved orders would be copied to %s.\n", stats.Read, target.Driver)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Copied %d saved orders to %s.\n", stats.Written, target.Driver)
		}
		return nil
	})
}
