package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/panels/pkg/core/gesture"
	"github.com/matzehuels/panels/pkg/core/layout"
	pio "github.com/matzehuels/panels/pkg/io"
)

// resolveCommand creates the resolve command for printing declared layouts.
func (c *CLI) resolveCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "resolve FILE...",
		Short: "Resolve panel declarations into layouts",
		Long: `Resolve one or more panel declaration files into layouts.

Panels without a declared size share whatever the declared sizes leave of 100
evenly. Sizes outside a panel's bounds are reported as warnings and kept.

Files are read and resolved concurrently; output follows argument order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runResolve(cmd.Context(), cmd.OutOrStdout(), args, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print each layout as a JSON declaration")

	return cmd
}

type resolvedFile struct {
	path      string
	direction gesture.Direction
	layout    layout.Layout
}

// runResolve resolves every path and prints the layouts in argument order.
func (c *CLI) runResolve(ctx context.Context, w io.Writer, paths []string, asJSON bool) error {
	def, err := c.config.direction()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	prog := newProgress(c.Logger)
	results := make([]resolvedFile, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := pio.ReadFile(path)
			if err != nil {
				return err
			}
			results[i] = resolvedFile{
				path:      path,
				direction: d.DirectionOr(def),
				layout:    layout.Resolve(d.Specs(), c.Logger.With("file", path)),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, r := range results {
		if asJSON {
			if err := pio.WriteLayout(w, r.direction, r.layout); err != nil {
				return fmt.Errorf("write %s: %w", r.path, err)
			}
			continue
		}
		printLayout(w, r.path, r.direction, r.layout)
	}

	prog.done(fmt.Sprintf("Resolved %d file(s)", len(paths)))
	return nil
}
