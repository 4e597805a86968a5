package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/BartekS5/osmeac/internal/render"
	"github.com/BartekS5/osmeac/internal/share"
	"github.com/BartekS5/osmeac/internal/store"
	"github.com/BartekS5/osmeac/pkg/logger"
	"github.com/BartekS5/osmeac/pkg/models"
)

// now dates default export filenames.
var now = time.Now

// RenderOptions holds the flags of the render command.
type RenderOptions struct {
	Format string
	Out    string
	Title  string
}

func newRenderCmd(a *app) *cobra.Command {
	opts := &RenderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the current order as text, an HTML fragment or a printable page",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, st store.Store) error {
				return runRender(cmd, st.LoadCurrent(ctx), opts)
			})
		},
	}
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "text", "Output format: text, html or page")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "Write to a file instead of stdout")
	cmd.Flags().StringVar(&opts.Title, "title", "5-Paragraph Order", "Page title for --format page")
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the current order to a dated text file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := out
			if path == "" {
				path = render.ExportFilename(now())
			}
			return a.withStore(cmd, func(ctx context.Context, st store.Store) error {
				if err := runRender(cmd, st.LoadCurrent(ctx), &RenderOptions{Format: "text", Out: path}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default osmeac-order-YYYY-MM-DD.txt)")
	return cmd
}

func runRender(cmd *cobra.Command, o models.Order, opts *RenderOptions) error {
	var (
		doc string
		err error
	)
	switch opts.Format {
	case "text", "txt":
		doc = render.Text(o)
	case "html":
		doc, err = render.HTML(o)
	case "page":
		doc, err = render.Page(o, opts.Title)
	default:
		return fmt.Errorf("unknown format %q (want text, html or page)", opts.Format)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", opts.Format, err)
	}
	return writeOutput(cmd, opts.Out, []byte(doc))
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write '%s': %w", path, err)
	}
	logger.Debugf("Wrote %d bytes to %s", len(data), path)
	return nil
}

// ShareOptions holds the flags of the share command.
type ShareOptions struct {
	BaseURL  string
	PNG      string
	SVG      string
	Size     int
	LinkOnly bool
}

func newShareCmd(a *app) *cobra.Command {
	opts := &ShareOptions{}

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Print a share link and QR code for the current order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, st store.Store) error {
				base := opts.BaseURL
				if base == "" {
					base = a.cfg.Share.BaseURL
				}
				return runShare(cmd, st.LoadCurrent(ctx), base, a.cfg.Share.MaxVersion, opts)
			})
		},
	}
	cmd.Flags().StringVar(&opts.BaseURL, "base", "", "Base URL of the link (default from config)")
	cmd.Flags().StringVar(&opts.PNG, "png", "", "Also write the QR code as a PNG file")
	cmd.Flags().StringVar(&opts.SVG, "svg", "", "Also write the QR code as an SVG file")
	cmd.Flags().IntVar(&opts.Size, "size", 256, "PNG width in pixels")
	cmd.Flags().BoolVar(&opts.LinkOnly, "link-only", false, "Print only the link")
	return cmd
}

func runShare(cmd *cobra.Command, o models.Order, base string, maxVersion int, opts *ShareOptions) error {
	out := cmd.OutOrStdout()

	link, err := share.Link(base, o)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, link)
	if opts.LinkOnly {
		return nil
	}

	code, err := share.NewEncoder(maxVersion).QR(link)
	if err != nil {
		var capErr *share.CapacityError
		if errors.As(err, &capErr) {
			return fmt.Errorf("order too large to share as a QR code: %w; shorten some fields or send the link instead", err)
		}
		return err
	}
	logger.Debugf("Share link is %d characters, QR version %d", code.Size, code.Version)

	fmt.Fprint(out, code.Terminal())

	if opts.PNG != "" {
		png, err := code.PNG(opts.Size)
		if err != nil {
			return fmt.Errorf("render png: %w", err)
		}
		if err := writeOutput(cmd, opts.PNG, png); err != nil {
			return err
		}
	}
	if opts.SVG != "" {
		if err := writeOutput(cmd, opts.SVG, []byte(code.SVG(0))); err != nil {
			return err
		}
	}
	return nil
}

func newImportCmd(a *app) *cobra.Command {
	var saveAs string

	cmd := &cobra.Command{
		Use:   "import <link|token>",
		Short: "Load an order from a share link into the current order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, ok := share.FromLink(args[0])
			if !ok {
				return errors.New("invalid or corrupted share link")
			}
			return a.withStore(cmd, func(ctx context.Context, st store.Store) error {
				if err := st.SaveCurrent(ctx, o); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Order loaded from shared link.")
				if saveAs == "" {
					return nil
				}
				saved, err := st.SaveNamed(ctx, saveAs, o)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved as %q (%s)\n", saved.Name, saved.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&saveAs, "save", "", "Also save the imported order under this name")
	return cmd
}
