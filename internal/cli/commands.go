package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BartekS5/osmeac/internal/debounce"
	"github.com/BartekS5/osmeac/internal/render"
	"github.com/BartekS5/osmeac/internal/store"
	"github.com/BartekS5/osmeac/internal/tui"
	"github.com/BartekS5/osmeac/pkg/logger"
	"github.com/BartekS5/osmeac/pkg/models"
)

func newEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the current order interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Log lines would tear the full-screen editor, so they go to a file.
			if out := strings.ToLower(a.cfg.Log.Output); out == "stderr" || out == "stdout" {
				if err := os.MkdirAll(a.cfg.Store.Dir, 0o755); err != nil {
					return err
				}
				logPath := filepath.Join(a.cfg.Store.Dir, "osmeac.log")
				if err := logger.InitLogger(logger.Config{Level: a.cfg.Log.Level, Format: a.cfg.Log.Format, Output: logPath}); err != nil {
					return fmt.Errorf("init logger: %w", err)
				}
			}

			return a.withStore(cmd, func(ctx context.Context, st store.Store) error {
				_, err := tui.Run(ctx, st, a.table, debounce.New(a.cfg.Preview.Debounce))
				return err
			})
		},
	}
}

func newNewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Discard the current order and start an empty one",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, st store.Store) error {
				if err := st.ClearCurrent(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Started a new order.")
				return nil
			})
		},
	}
}

func newExampleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Replace the current order with a complete example",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, st store.Store) error {
				if err := st.SaveCurrent(ctx, models.ExampleOrder()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Loaded the example order.")
				return nil
			})
		},
	}
}

func newFieldsCmd(a *app) *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List form fields, their record paths and current values",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, st store.Store) error {
				o := st.LoadCurrent(ctx)
				form := a.mapper.Fields(&o)
				out := cmd.OutOrStdout()
				for _, fp := range a.table {
					if section != "" && !strings.HasPrefix(fp.Path, section+".") {
						continue
					}
					fmt.Fprintf(out, "%-26s %-42s %s\n", fp.Field, fp.Path, form[fp.Field])
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&section, "section", "s", "", "Only list fields of one section (orientation, situation, mission, execution, admin, command)")
	return cmd
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <field>",
		Short: "Print one field of the current order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, st store.Store) error {
				o := st.LoadCurrent(ctx)
				v, err := a.mapper.Get(&o, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			})
		},
	}
}

func newSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <field> <value>...",
		Short: "Set one field of the current order",
		Long:  "Set one field of the current order. Remaining arguments are joined with spaces; an empty value clears the field.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, st store.Store) error {
				o := st.LoadCurrent(ctx)
				if err := a.mapper.Set(&o, args[0], strings.Join(args[1:], " ")); err != nil {
					return err
				}
				return st.SaveCurrent(ctx, o)
			})
		},
	}
}

func newMissionCmd(a *app) *cobra.Command {
	var inline bool

	cmd := &cobra.Command{
		Use:   "mission",
		Short: "Print the mission statement derived from the current order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, st store.Store) error {
				m := st.LoadCurrent(ctx).Mission
				if inline {
					fmt.Fprintln(cmd.OutOrStdout(), render.MissionInline(m))
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), render.MissionStatement(m, render.Blank))
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&inline, "inline", false, "Show the editor's bracketed fill-in form")
	return cmd
}

func newTasksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List tactical tasks for the mission 'what' field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, g := range models.TacticalTasks() {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, g.Name)
				for _, task := range g.Tasks {
					fmt.Fprintf(out, "  %s\n", task)
				}
			}
			return nil
		},
	}
}
