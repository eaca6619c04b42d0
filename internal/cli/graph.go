package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stacker/pkg/errors"
	"github.com/matzehuels/stacker/pkg/render"
	"github.com/matzehuels/stacker/pkg/scene"
	"github.com/matzehuels/stacker/pkg/stack"
)

// Support graph output formats.
const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	axis        string
	padding     float64
	output      string
	format      string
	detailed    bool
	selectNames string
}

// graphCommand creates the graph command, which renders the drop-down
// support relations as a directed graph.
func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph <scene.json>",
		Short: "Render which object rests on which after a drop",
		Long: `Render the support graph of a drop-down pass.

The scene is settled exactly as "stacker drop" would settle it, then
each object is drawn as a node with an edge to the object it rests on.
Objects on the floor point at a shared floor node.

Examples:
  stacker graph scene.json                 # scene.svg
  stacker graph scene.json -f dot -o -     # DOT on stdout
  stacker graph scene.json -f png --detailed`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateGraphFormat(opts.format); err != nil {
				return err
			}
			return c.runGraph(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.axis, "axis", "a", "z", "stacking axis: x, y or z")
	cmd.Flags().Float64VarP(&opts.padding, "padding", "p", 0, "gap inserted above non-floor supports")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output file (default <scene>.<format>, "-" for stdout)`)
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatSVG, "output format: svg, png or dot")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include translation deltas in node labels")
	cmd.Flags().StringVar(&opts.selectNames, "select", "", "comma-separated object names to include (default all)")

	return cmd
}

// validateGraphFormat checks that the format is one of dot, svg or png.
func validateGraphFormat(f string) error {
	switch f {
	case formatDOT, formatSVG, formatPNG:
		return nil
	}
	return errors.New(errors.ErrCodeUnsupported, "invalid format: %s (must be 'svg', 'png' or 'dot')", f)
}

// runGraph settles the scene and renders the support graph in the
// requested format.
func (c *CLI) runGraph(cmd *cobra.Command, input string, opts *graphOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	axis, padding, err := resolveGeometry(cmd, cfg, opts.axis, opts.padding)
	if err != nil {
		return err
	}

	sc, err := scene.ReadFile(input)
	if err != nil {
		return err
	}

	objs, err := selectObjects(sc, opts.selectNames, false)
	if err != nil {
		return err
	}
	if len(objs) < minSelection {
		printWarning("At least two objects must be selected.")
		return nil
	}

	logger.Infof("Settling %d objects along %s", len(objs), axis)
	result := stack.DropDownPlan(objectBoxes(objs), axis, padding)
	plan := scene.DropPlan(objectNames(objs), axis, padding, result)

	dot := render.SupportDOT(plan, render.Options{Detailed: opts.detailed})

	data, err := renderGraphFormat(ctx, dot, opts.format)
	if err != nil {
		return err
	}

	path := derivedPath(opts.output, input, "."+opts.format)
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}

	logger.Infof("Generated %s", path)
	if !c.quiet && path != "-" {
		printFile(path)
	}
	return nil
}

// renderGraphFormat turns DOT text into the requested format. Graphviz
// rendering runs under a spinner since the embedded engine takes a
// moment to boot.
func renderGraphFormat(ctx context.Context, dot string, format string) ([]byte, error) {
	if format == formatDOT {
		return []byte(dot), nil
	}

	spinner := newSpinner(ctx, fmt.Sprintf("Rendering %s...", format))
	spinner.Start()

	var (
		data []byte
		err  error
	)
	switch format {
	case formatSVG:
		data, err = render.SupportSVG(ctx, dot)
	case formatPNG:
		data, err = render.SupportPNG(ctx, dot)
	}
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
	}
	spinner.Stop()
	return data, nil
}
