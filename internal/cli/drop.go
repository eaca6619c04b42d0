package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stacker/pkg/aabb"
	"github.com/matzehuels/stacker/pkg/scene"
	"github.com/matzehuels/stacker/pkg/stack"
)

// minSelection is the smallest selection either operation accepts.
const minSelection = 2

// dropOpts holds the command-line flags for the drop command.
type dropOpts struct {
	axis        string  // stacking axis name
	padding     float64 // gap above non-floor supports
	output      string  // output file path ("-" for stdout)
	apply       bool    // write the translated scene instead of a plan
	selectNames string  // comma-separated object names
	interactive bool    // pick objects in a TUI
}

// dropCommand creates the drop command, which settles each selected
// object downward onto whatever lies in its shadow.
func (c *CLI) dropCommand() *cobra.Command {
	var opts dropOpts

	cmd := &cobra.Command{
		Use:   "drop <scene.json>",
		Short: "Settle objects downward onto whatever lies below them",
		Long: `Settle objects downward along the stacking axis.

Objects fall in ascending order of their bottom face. Each lands on the
highest object whose footprint overlaps its own, or on the floor level
set by the lowest object. Padding lifts objects resting on other objects,
never those resting on the floor.

The result is a plan file listing one translation per object; nothing
moves until the plan is applied.

Examples:
  stacker drop scene.json                      # plan next to the scene
  stacker drop scene.json -o - --quiet         # plan on stdout
  stacker drop scene.json --select crate,lamp  # only two objects
  stacker drop scene.json --apply              # translate the scene file`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDrop(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.axis, "axis", "a", "z", "stacking axis: x, y or z")
	cmd.Flags().Float64VarP(&opts.padding, "padding", "p", 0, "gap inserted above non-floor supports")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output file (default <scene>.plan.json, "-" for stdout)`)
	cmd.Flags().BoolVar(&opts.apply, "apply", false, "write the translated scene (to --output, or back to the scene file)")
	cmd.Flags().StringVar(&opts.selectNames, "select", "", "comma-separated object names to include (default all)")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "pick objects in a terminal UI")

	return cmd
}

// runDrop loads the scene, computes the drop-down plan for the selected
// objects, and writes either the plan or the translated scene.
func (c *CLI) runDrop(cmd *cobra.Command, input string, opts *dropOpts) error {
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

	logger.Infof("Dropping %d of %d objects along %s", len(objs), len(sc.Objects), axis)

	prog := newProgress(logger)
	result := stack.DropDownPlan(objectBoxes(objs), axis, padding)
	plan := scene.DropPlan(objectNames(objs), axis, padding, result)
	prog.done(fmt.Sprintf("Settled %d objects", len(objs)))

	path, err := c.writePlanOrScene(sc, &plan, input, opts.output, opts.apply)
	if err != nil {
		return err
	}

	if !c.quiet && path != "-" {
		printNewline()
		printPlan(&plan)
		printNewline()
		printFile(path)
		printNextStep("Inspect supports", fmt.Sprintf("%s graph %s", appName, input))
	}
	return nil
}

// writePlanOrScene writes the plan file, or the translated scene when
// apply is set. It returns the path written to ("-" for stdout).
func (c *CLI) writePlanOrScene(sc *scene.Scene, plan *scene.Plan, input, output string, apply bool) (string, error) {
	if apply {
		path := output
		if path == "" {
			path = input
		}
		moved := sc.Apply(plan.Deltas())
		out, err := openOutput(path)
		if err != nil {
			return path, err
		}
		defer out.Close()
		return path, scene.Write(out, &moved)
	}

	path := planPath(output, input)
	out, err := openOutput(path)
	if err != nil {
		return path, err
	}
	defer out.Close()

	return path, scene.WritePlan(out, plan)
}

// selectObjects resolves the --select and --interactive choices to
// concrete scene objects, defaulting to every object in scene order.
func selectObjects(sc *scene.Scene, selectCSV string, interactive bool) ([]scene.Object, error) {
	if interactive {
		return runObjectPicker(sc.Objects)
	}
	return sc.Select(splitNames(selectCSV))
}

// objectBoxes flattens objects to their bounding boxes, in order.
func objectBoxes(objs []scene.Object) []aabb.Box {
	boxes := make([]aabb.Box, len(objs))
	for i, o := range objs {
		boxes[i] = o.Bounds()
	}
	return boxes
}

// objectNames lists object names, in order.
func objectNames(objs []scene.Object) []string {
	names := make([]string, len(objs))
	for i, o := range objs {
		names[i] = o.Name
	}
	return names
}
