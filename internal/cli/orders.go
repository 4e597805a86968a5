package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/BartekS5/osmeac/internal/store"
)

func newOrdersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Manage the library of saved orders",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List saved orders, most recently updated first",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return a.withStore(c, func(ctx context.Context, st store.Store) error {
				out := c.OutOrStdout()
				orders := st.ListSaved(ctx)
				if len(orders) == 0 {
					fmt.Fprintln(out, "No saved orders.")
					return nil
				}
				for _, o := range orders {
					fmt.Fprintf(out, "%-36s  %-17s  %s\n", o.ID, o.UpdatedAt.Local().Format("2006-01-02 15:04"), o.Name)
				}
				return nil
			})
		},
	}

	save := &cobra.Command{
		Use:   "save <name>...",
		Short: "Save the current order under a name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return a.withStore(c, func(ctx context.Context, st store.Store) error {
				saved, err := st.SaveNamed(ctx, strings.Join(args, " "), st.LoadCurrent(ctx))
				if err != nil {
					return err
				}
				fmt.Fprintf(c.OutOrStdout(), "Saved %q as %s\n", saved.Name, saved.ID)
				return nil
			})
		},
	}

	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Overwrite a saved order with the current order",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return a.withStore(c, func(ctx context.Context, st store.Store) error {
				if err := st.UpdateNamed(ctx, args[0], st.LoadCurrent(ctx)); err != nil {
					if errors.Is(err, store.ErrNotFound) {
						return fmt.Errorf("no saved order with id %s", args[0])
					}
					return err
				}
				fmt.Fprintf(c.OutOrStdout(), "Updated %s\n", args[0])
				return nil
			})
		},
	}

	load := &cobra.Command{
		Use:   "load <id>",
		Short: "Make a saved order the current order",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return a.withStore(c, func(ctx context.Context, st store.Store) error {
				saved, ok := st.LoadNamed(ctx, args[0])
				if !ok {
					return fmt.Errorf("no saved order with id %s", args[0])
				}
				if err := st.SaveCurrent(ctx, saved.Data); err != nil {
					return err
				}
				fmt.Fprintf(c.OutOrStdout(), "Loaded %q (saved %s)\n", saved.Name, saved.UpdatedAt.Local().Format(time.RFC1123))
				return nil
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved order",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return a.withStore(c, func(ctx context.Context, st store.Store) error {
				if err := st.DeleteNamed(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(c.OutOrStdout(), "Deleted %s\n", args[0])
				return nil
			})
		},
	}

	cmd.AddCommand(list, save, update, load, del)
	return cmd
}
