package cli

import (
	"github.com/spf13/cobra"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/matzehuels/stacker/pkg/errors"
	"github.com/matzehuels/stacker/pkg/render"
	"github.com/matzehuels/stacker/pkg/scene"
	"github.com/matzehuels/stacker/pkg/stack"
)

// Elevation operations.
const (
	opDrop  = "drop"
	opStack = "stack"
	opNone  = "none"
)

// viewOpts holds the command-line flags for the view command.
type viewOpts struct {
	axis        string
	padding     float64
	output      string
	op          string
	width       float64
	selectNames string
}

// viewCommand creates the view command, which draws a 2D elevation of
// the scene before and after an operation.
func (c *CLI) viewCommand() *cobra.Command {
	var opts viewOpts

	cmd := &cobra.Command{
		Use:   "view <scene.json>",
		Short: "Draw a side view of the scene before and after settling",
		Long: `Draw a 2D elevation of the scene as SVG.

The scene is projected onto the plane of the stacking axis and one
horizontal axis. With --op drop or --op stack the settled positions are
drawn in color over muted silhouettes of the originals; --op none draws
the scene as it is.

Examples:
  stacker view scene.json                  # drop-down elevation
  stacker view scene.json --op stack
  stacker view scene.json --op none -o -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOp(opts.op); err != nil {
				return err
			}
			return c.runView(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.axis, "axis", "a", "z", "stacking axis: x, y or z")
	cmd.Flags().Float64VarP(&opts.padding, "padding", "p", 0, "gap between stacked objects")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output file (default <scene>.svg, "-" for stdout)`)
	cmd.Flags().StringVar(&opts.op, "op", opDrop, "operation to preview: drop, stack or none")
	cmd.Flags().Float64Var(&opts.width, "width", 640, "output width in pixels")
	cmd.Flags().StringVar(&opts.selectNames, "select", "", "comma-separated object names to include (default all)")

	return cmd
}

// validateOp checks that the operation is drop, stack or none.
func validateOp(op string) error {
	switch op {
	case opDrop, opStack, opNone:
		return nil
	}
	return errors.New(errors.ErrCodeUnsupported, "invalid op: %s (must be 'drop', 'stack' or 'none')", op)
}

// runView projects the scene to an elevation SVG and writes it.
func (c *CLI) runView(cmd *cobra.Command, input string, opts *viewOpts) error {
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
	if opts.op != opNone && len(objs) < minSelection {
		printWarning("At least two objects must be selected.")
		return nil
	}

	boxes := objectBoxes(objs)
	names := objectNames(objs)

	var deltas []mgl64.Vec3
	switch opts.op {
	case opDrop:
		deltas = stack.DropDown(boxes, axis, padding)
	case opStack:
		deltas = stack.Column(boxes, axis, stack.ColumnOptions{
			Padding: padding,
			Center:  cfg.Centering,
			Sort:    cfg.Sorting,
		})
	}

	logger.Infof("Drawing %d objects (%s elevation)", len(objs), opts.op)
	svg := render.ElevationSVG(boxes, axis, deltas,
		render.WithNames(names),
		render.WithWidth(opts.width),
	)

	path := derivedPath(opts.output, input, ".svg")
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(svg); err != nil {
		return err
	}

	logger.Infof("Generated %s", path)
	if !c.quiet && path != "-" {
		printFile(path)
	}
	return nil
}
