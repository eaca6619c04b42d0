package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stacker/pkg/aabb"
	"github.com/matzehuels/stacker/pkg/errors"
)

// configFile is the config file name inside the config directory.
const configFile = "config.toml"

// Options holds the file-configurable defaults shared by drop and stack.
// Flags override any value set here.
type Options struct {
	// Axis is the stacking axis name: "x", "y" or "z".
	Axis string `toml:"axis"`

	// Padding is the gap inserted between stacked boxes.
	Padding float64 `toml:"padding"`

	// Centering aligns horizontal centers when stacking columns.
	Centering bool `toml:"centering"`

	// Sorting reorders columns widest-first when stacking.
	Sorting bool `toml:"sorting"`
}

// Defaults returns the built-in option values used when no config file
// exists.
func Defaults() Options {
	return Options{
		Axis:      "z",
		Padding:   0,
		Centering: true,
		Sorting:   true,
	}
}

// Validate checks the axis name and padding range.
func (o Options) Validate() error {
	if _, err := aabb.ParseAxis(o.Axis); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidAxis, err, "config axis")
	}
	return errors.ValidatePadding(o.Padding)
}

// LoadOptions reads a TOML config file and overlays its values onto the
// defaults. A missing file is not an error; unknown keys and invalid
// values are.
func LoadOptions(path string) (Options, error) {
	opts := Defaults()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return opts, nil
	}
	if err != nil {
		return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config %s", path)
	}

	meta, err := toml.Decode(string(data), &opts)
	if err != nil {
		return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return opts, errors.New(errors.ErrCodeInvalidInput,
			"unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

// loadConfig loads options from the default config path
// (~/.config/stacker/config.toml). When the home directory cannot be
// resolved, the built-in defaults apply.
func loadConfig() (Options, error) {
	dir, err := configDir()
	if err != nil {
		return Defaults(), nil
	}
	return LoadOptions(filepath.Join(dir, configFile))
}

// resolveGeometry resolves the effective axis and padding from the
// loaded config and the command's flags. Explicitly set flags win.
func resolveGeometry(cmd *cobra.Command, cfg Options, flagAxis string, flagPadding float64) (aabb.Axis, float64, error) {
	axisName := cfg.Axis
	if cmd.Flags().Changed("axis") {
		axisName = flagAxis
	}
	padding := cfg.Padding
	if cmd.Flags().Changed("padding") {
		padding = flagPadding
	}

	axis, err := aabb.ParseAxis(axisName)
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidAxis, err, "parse axis")
	}
	if err := errors.ValidatePadding(padding); err != nil {
		return 0, 0, err
	}
	return axis, padding, nil
}

// mergeToggle resolves a boolean stack option from the config value and
// an explicit flag pair (--name / --no-name). The negative flag wins,
// then the positive flag if set, then the config file.
func mergeToggle(cmd *cobra.Command, name string, flagValue, negated, cfgValue bool) bool {
	if negated {
		return false
	}
	if cmd.Flags().Changed(name) {
		return flagValue
	}
	return cfgValue
}
