package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stacker/pkg/errors"
	"github.com/matzehuels/stacker/pkg/scene"
	"github.com/matzehuels/stacker/pkg/stack"
)

// stackOpts holds the command-line flags for the stack command.
type stackOpts struct {
	axis        string
	padding     float64
	output      string
	apply       bool
	selectNames string
	interactive bool

	centering   bool
	noCentering bool
	sorting     bool
	noSorting   bool
	anchor      string
}

// stackCommand creates the stack command, which piles the selected
// objects into a single column.
func (c *CLI) stackCommand() *cobra.Command {
	var opts stackOpts

	cmd := &cobra.Command{
		Use:   "stack <scene.json>",
		Short: "Pile objects into a single column",
		Long: `Pile the selected objects into one column along the stacking axis.

With sorting (the default) objects are reordered widest-first, and the
column rises from the position of the lowest object in that order. With
--no-sorting the anchor object stays in place and the rest pile on top
in selection order.

Centering aligns each object's horizontal center with the one below it;
--no-centering keeps horizontal positions untouched.

Examples:
  stacker stack scene.json                         # widest-first column
  stacker stack scene.json --no-sorting --anchor crate
  stacker stack scene.json -p 0.5 --no-centering`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStack(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.axis, "axis", "a", "z", "stacking axis: x, y or z")
	cmd.Flags().Float64VarP(&opts.padding, "padding", "p", 0, "gap inserted between stacked objects")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output file (default <scene>.plan.json, "-" for stdout)`)
	cmd.Flags().BoolVar(&opts.apply, "apply", false, "write the translated scene (to --output, or back to the scene file)")
	cmd.Flags().StringVar(&opts.selectNames, "select", "", "comma-separated object names to include (default all)")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "pick objects in a terminal UI")
	cmd.Flags().BoolVar(&opts.centering, "centering", true, "align horizontal centers")
	cmd.Flags().BoolVar(&opts.noCentering, "no-centering", false, "keep horizontal positions untouched")
	cmd.Flags().BoolVar(&opts.sorting, "sorting", true, "reorder the column widest-first")
	cmd.Flags().BoolVar(&opts.noSorting, "no-sorting", false, "keep the selection order")
	cmd.Flags().StringVar(&opts.anchor, "anchor", "", "object that stays in place with --no-sorting (default first selected)")

	return cmd
}

// runStack loads the scene, computes column translations for the
// selected objects, and writes either the plan or the translated scene.
func (c *CLI) runStack(cmd *cobra.Command, input string, opts *stackOpts) error {
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

	objs, err := selectObjects(sc, opts.selectNames, opts.interactive)
	if err != nil {
		return err
	}
	if len(objs) < minSelection {
		printWarning("At least two objects must be selected.")
		return nil
	}
	names := objectNames(objs)

	colOpts := stack.ColumnOptions{
		Padding: padding,
		Center:  mergeToggle(cmd, "centering", opts.centering, opts.noCentering, cfg.Centering),
		Sort:    mergeToggle(cmd, "sorting", opts.sorting, opts.noSorting, cfg.Sorting),
	}
	if opts.anchor != "" {
		idx, err := indexOfName(names, opts.anchor)
		if err != nil {
			return err
		}
		colOpts.Anchor = idx
	}

	logger.Infof("Stacking %d of %d objects along %s", len(objs), len(sc.Objects), axis)

	prog := newProgress(logger)
	deltas := stack.Column(objectBoxes(objs), axis, colOpts)
	plan := scene.ColumnPlan(names, axis, padding, deltas)
	prog.done(fmt.Sprintf("Stacked %d objects", len(objs)))

	path, err := c.writePlanOrScene(sc, &plan, input, opts.output, opts.apply)
	if err != nil {
		return err
	}

	if !c.quiet && path != "-" {
		printNewline()
		printPlan(&plan)
		printNewline()
		printFile(path)
	}
	return nil
}

// indexOfName finds the anchor's position within the selection.
func indexOfName(names []string, name string) (int, error) {
	for i, n := range names {
		if n == name {
			return i, nil
		}
	}
	return 0, errors.New(errors.ErrCodeObjectNotFound, "anchor %q not in selection", name)
}
