// Package cli wires the osmeac commands together with Cobra.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BartekS5/osmeac/internal/config"
	"github.com/BartekS5/osmeac/internal/fields"
	"github.com/BartekS5/osmeac/internal/store"
	"github.com/BartekS5/osmeac/pkg/logger"
	"github.com/BartekS5/osmeac/pkg/models"
)

// RootOptions are the flags shared by every command.
type RootOptions struct {
	ConfigFile  string
	MappingFile string
	Verbose     bool
}

// app is what the persistent pre-run prepares for the commands.
type app struct {
	opts   *RootOptions
	cfg    *config.Config
	table  models.FieldTable
	mapper *fields.Mapper
}

func (a *app) openStore(ctx context.Context) (store.Store, error) {
	st, err := store.Open(ctx, a.cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", a.cfg.Store.Driver, err)
	}
	return st, nil
}

// withStore opens the store, runs fn and closes the store again.
func (a *app) withStore(cmd *cobra.Command, fn func(ctx context.Context, st store.Store) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Warnf("Failed to close store: %v", err)
		}
	}()
	return fn(ctx, st)
}

// NewRootCmd creates the "osmeac" root command with every sub-command
// attached. Configuration, logging and the field table are set up in its
// persistent pre-run.
func NewRootCmd() *cobra.Command {
	opts := &RootOptions{}
	a := &app{opts: opts}

	rootCmd := &cobra.Command{
		Use:   "osmeac",
		Short: "OSMEAC - five-paragraph order builder",
		Long: `osmeac collects tactical five-paragraph order data, renders it as a
plain-text or HTML document and shares it offline as a compressed link
and QR code.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.ConfigFile, "config", "c", "", "Path to a config file (default: ./osmeac.yaml)")
	rootCmd.PersistentFlags().StringVarP(&opts.MappingFile, "mapping", "m", "", "Path to a custom field mapping file")
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newEditCmd(a),
		newNewCmd(a),
		newExampleCmd(a),
		newFieldsCmd(a),
		newGetCmd(a),
		newSetCmd(a),
		newMissionCmd(a),
		newRenderCmd(a),
		newExportCmd(a),
		newShareCmd(a),
		newImportCmd(a),
		newOrdersCmd(a),
		newTransferCmd(a),
		newTasksCmd(),
	)

	return rootCmd
}

// Execute runs cmd and flushes the logger afterwards, whether or not the
// command failed. Failures are logged before the flush.
func Execute(ctx context.Context, cmd *cobra.Command) error {
	defer logger.Close()

	if err := cmd.ExecuteContext(ctx); err != nil {
		logger.Errorf("Command failed: %v", err)
		return err
	}
	return nil
}

func (a *app) init() error {
	cfg, err := config.Load(a.opts.ConfigFile)
	if err != nil {
		return err
	}
	if a.opts.Verbose {
		cfg.Log.Level = "debug"
	}
	if err := logger.InitLogger(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: cfg.Log.Output}); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	table, err := config.LoadMapping(a.opts.MappingFile)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %d field mappings, store driver %s", len(table), cfg.Store.Driver)

	a.cfg = cfg
	a.table = table
	a.mapper = fields.NewMapper(table)
	return nil
}
