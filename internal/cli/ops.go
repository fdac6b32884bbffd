package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/panels/pkg/core/gesture"
	"github.com/matzehuels/panels/pkg/errors"
	"github.com/matzehuels/panels/pkg/group"
	pio "github.com/matzehuels/panels/pkg/io"
)

// =============================================================================
// Shared Output
// =============================================================================

// outputFlags control how a command reports the layout it produced.
type outputFlags struct {
	json   bool
	output string
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.json, "json", false, "print the layout as a JSON declaration")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "write the layout as a declaration file (.toml, .yaml or .json)")
}

// emit prints the group's layout and writes it to o.output when set.
func emit(w io.Writer, title string, g *group.Group, o outputFlags) error {
	l := g.Panels()
	if o.output != "" {
		if err := pio.WriteFile(o.output, pio.FromLayout(g.Direction(), l)); err != nil {
			return fmt.Errorf("write output %s: %w", o.output, err)
		}
	}

	if o.json {
		return pio.WriteLayout(w, g.Direction(), l)
	}
	printLayout(w, title, g.Direction(), l)
	if o.output != "" {
		printSuccess(w, "Layout written")
		printFile(w, o.output)
	}
	return nil
}

// requirePanel reports an UNKNOWN_PANEL error when id is not in g.
func requirePanel(g *group.Group, path, id string) error {
	if _, ok := g.Size(id); !ok {
		return errors.New(errors.ErrCodeUnknownPanel, "no panel %q in %s", id, path)
	}
	return nil
}

// axisPoint places offset on the main axis of d.
func axisPoint(d gesture.Direction, offset float64) gesture.Point {
	if d.IsHorizontal() {
		return gesture.Point{X: offset}
	}
	return gesture.Point{Y: offset}
}

// =============================================================================
// drag
// =============================================================================

func (c *CLI) dragCommand() *cobra.Command {
	var (
		handle string
		delta  float64
		steps  int
		out    outputFlags
	)

	cmd := &cobra.Command{
		Use:   "drag FILE",
		Short: "Replay a drag of the handle after a panel",
		Long: `Replay a drag of the handle after a panel.

The pointer travels --delta percent of the group along its main axis in
--steps equal moves. Every move is measured from where the drag started, so
the result does not depend on the number of steps. Positive values move
right (or down); in reverse directions that shrinks the panel before the
handle. The configured zoom and scale correct the pointer travel.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDrag(cmd.OutOrStdout(), args[0], handle, delta, steps, out)
		},
	}

	cmd.Flags().StringVar(&handle, "handle", "", "id of the panel before the handle")
	cmd.Flags().Float64Var(&delta, "delta", 0, "pointer travel in percent of the group")
	cmd.Flags().IntVar(&steps, "steps", 1, "number of pointer moves")
	_ = cmd.MarkFlagRequired("handle")
	out.register(cmd)

	return cmd
}

func (c *CLI) runDrag(w io.Writer, path, handle string, delta float64, steps int, out outputFlags) error {
	if steps < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "--steps must be at least 1, got %d", steps)
	}
	g, _, err := c.openGroup(path)
	if err != nil {
		return err
	}
	if err := requirePanel(g, path, handle); err != nil {
		return err
	}

	r := g.BeginResize(handle, gesture.Point{})
	for i := 1; i <= steps; i++ {
		r.Move(axisPoint(g.Direction(), delta*float64(i)/float64(steps)))
	}
	r.End()

	return emit(w, path, g, out)
}

// =============================================================================
// collapse / expand
// =============================================================================

func (c *CLI) collapseCommand() *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "collapse FILE ID",
		Short: "Collapse a panel",
		Long: `Collapse a panel to zero, or shrink it to its minimum if it is not
collapsible. The freed space goes to its neighbour.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCollapse(cmd.OutOrStdout(), args[0], args[1], out)
		},
	}
	out.register(cmd)

	return cmd
}

func (c *CLI) runCollapse(w io.Writer, path, id string, out outputFlags) error {
	g, _, err := c.openGroup(path)
	if err != nil {
		return err
	}
	if err := requirePanel(g, path, id); err != nil {
		return err
	}

	before, _ := g.Size(id)
	g.Collapse(id)
	if after, _ := g.Size(id); after == before && !out.json {
		printWarning(w, "panel %q did not shrink", id)
	}
	return emit(w, path, g, out)
}

func (c *CLI) expandCommand() *cobra.Command {
	var (
		size float64
		out  outputFlags
	)

	cmd := &cobra.Command{
		Use:   "expand FILE ID",
		Short: "Expand a collapsed panel",
		Long: `Expand a collapsed panel to its maximum, or to --size clamped to its
bounds. Neighbours shrink toward their minimums but are never collapsed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := -1.0
			if cmd.Flags().Changed("size") {
				target = size
			}
			return c.runExpand(cmd.OutOrStdout(), args[0], args[1], target, out)
		},
	}

	cmd.Flags().Float64Var(&size, "size", 0, "target size in percent (default: the panel's maximum)")
	out.register(cmd)

	return cmd
}

// runExpand expands id; a negative target expands to the panel's maximum.
func (c *CLI) runExpand(w io.Writer, path, id string, target float64, out outputFlags) error {
	g, _, err := c.openGroup(path)
	if err != nil {
		return err
	}
	if err := requirePanel(g, path, id); err != nil {
		return err
	}

	p := g.Panels()[g.Panels().Index(id)]
	if !p.Collapsed() {
		if !out.json {
			printWarning(w, "panel %q is not collapsed", id)
		}
		return emit(w, path, g, out)
	}

	if target < 0 {
		g.Expand(id)
	} else {
		g.ExpandTo(id, target)
	}
	if after, _ := g.Size(id); after == 0 && !out.json {
		printWarning(w, "panel %q could not expand", id)
	}
	return emit(w, path, g, out)
}

// =============================================================================
// set
// =============================================================================

func (c *CLI) setCommand() *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "set FILE SIZES",
		Short: "Replace every panel size at once",
		Long: `Replace every panel size at once.

SIZES is a comma-separated list with one entry per panel, for example
"25,0,75". The list must add up to 100 and respect every panel's bounds;
a collapsible panel may be set to exactly 0.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSet(cmd.OutOrStdout(), args[0], args[1], out)
		},
	}
	out.register(cmd)

	return cmd
}

func (c *CLI) runSet(w io.Writer, path, list string, out outputFlags) error {
	sizes, err := parseSizes(list)
	if err != nil {
		return err
	}
	g, _, err := c.openGroup(path)
	if err != nil {
		return err
	}
	if err := g.SetLayout(sizes); err != nil {
		return fmt.Errorf("set layout: %w", err)
	}
	return emit(w, path, g, out)
}

// parseSizes parses a comma-separated list of sizes.
func parseSizes(list string) ([]float64, error) {
	fields := strings.Split(list, ",")
	sizes := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "size %d (%q)", i+1, f)
		}
		sizes[i] = v
	}
	return sizes, nil
}
