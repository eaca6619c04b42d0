package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stacker/pkg/aabb"
	"github.com/matzehuels/stacker/pkg/errors"
)

// writeConfig writes a config file into a fresh temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFile)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	opts := Defaults()

	if opts.Axis != "z" {
		t.Errorf("Axis = %q, want %q", opts.Axis, "z")
	}
	if opts.Padding != 0 {
		t.Errorf("Padding = %v, want 0", opts.Padding)
	}
	if !opts.Centering {
		t.Error("Centering should default to true")
	}
	if !opts.Sorting {
		t.Error("Sorting should default to true")
	}
}

func TestLoadOptionsMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.toml")

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions() on missing file: %v", err)
	}
	if opts != Defaults() {
		t.Errorf("missing file should yield defaults, got %+v", opts)
	}
}

func TestLoadOptionsOverlay(t *testing.T) {
	path := writeConfig(t, "axis = \"y\"\npadding = 0.5\n")

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions() error: %v", err)
	}

	if opts.Axis != "y" {
		t.Errorf("Axis = %q, want %q", opts.Axis, "y")
	}
	if opts.Padding != 0.5 {
		t.Errorf("Padding = %v, want 0.5", opts.Padding)
	}
	// Unset keys keep their defaults.
	if !opts.Centering || !opts.Sorting {
		t.Errorf("unset toggles should stay true, got centering=%v sorting=%v", opts.Centering, opts.Sorting)
	}
}

func TestLoadOptionsToggles(t *testing.T) {
	path := writeConfig(t, "centering = false\nsorting = false\n")

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions() error: %v", err)
	}

	if opts.Centering || opts.Sorting {
		t.Errorf("toggles should be false, got centering=%v sorting=%v", opts.Centering, opts.Sorting)
	}
	if opts.Axis != "z" {
		t.Errorf("Axis should keep default, got %q", opts.Axis)
	}
}

func TestLoadOptionsUnknownKey(t *testing.T) {
	path := writeConfig(t, "axis = \"z\"\ngravity = 9.8\n")

	_, err := LoadOptions(path)
	if err == nil {
		t.Fatal("LoadOptions() should reject unknown keys")
	}
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
	if !strings.Contains(err.Error(), "gravity") {
		t.Errorf("error should name the unknown key, got %v", err)
	}
}

func TestLoadOptionsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCode errors.Code
	}{
		{
			name:     "malformed toml",
			content:  "axis = [",
			wantCode: errors.ErrCodeInvalidInput,
		},
		{
			name:     "bad axis",
			content:  "axis = \"w\"\n",
			wantCode: errors.ErrCodeInvalidAxis,
		},
		{
			name:     "negative padding",
			content:  "padding = -1.0\n",
			wantCode: errors.ErrCodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)

			_, err := LoadOptions(path)
			if err == nil {
				t.Fatal("LoadOptions() should fail")
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.wantCode)
			}
		})
	}
}

// geometryCommand builds a throwaway command carrying the axis and padding
// flags the way drop and stack register them.
func geometryCommand() (*cobra.Command, *string, *float64) {
	var axis string
	var padding float64
	cmd := &cobra.Command{Use: "test", Run: func(*cobra.Command, []string) {}}
	cmd.Flags().StringVar(&axis, "axis", "z", "")
	cmd.Flags().Float64Var(&padding, "padding", 0, "")
	return cmd, &axis, &padding
}

func TestResolveGeometryFromConfig(t *testing.T) {
	cmd, axis, padding := geometryCommand()
	cfg := Options{Axis: "y", Padding: 0.25, Centering: true, Sorting: true}

	gotAxis, gotPadding, err := resolveGeometry(cmd, cfg, *axis, *padding)
	if err != nil {
		t.Fatalf("resolveGeometry() error: %v", err)
	}
	if gotAxis != aabb.AxisY {
		t.Errorf("axis = %v, want %v", gotAxis, aabb.AxisY)
	}
	if gotPadding != 0.25 {
		t.Errorf("padding = %v, want 0.25", gotPadding)
	}
}

func TestResolveGeometryFlagWins(t *testing.T) {
	cmd, axis, padding := geometryCommand()
	if err := cmd.Flags().Set("axis", "x"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("padding", "1.5"); err != nil {
		t.Fatal(err)
	}
	cfg := Options{Axis: "y", Padding: 0.25}

	gotAxis, gotPadding, err := resolveGeometry(cmd, cfg, *axis, *padding)
	if err != nil {
		t.Fatalf("resolveGeometry() error: %v", err)
	}
	if gotAxis != aabb.AxisX {
		t.Errorf("axis = %v, want %v", gotAxis, aabb.AxisX)
	}
	if gotPadding != 1.5 {
		t.Errorf("padding = %v, want 1.5", gotPadding)
	}
}

func TestResolveGeometryBadAxis(t *testing.T) {
	cmd, axis, padding := geometryCommand()
	cfg := Options{Axis: "w"}

	_, _, err := resolveGeometry(cmd, cfg, *axis, *padding)
	if !errors.Is(err, errors.ErrCodeInvalidAxis) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidAxis)
	}
}

func TestMergeToggle(t *testing.T) {
	tests := []struct {
		name     string
		setFlag  bool
		flagVal  string
		negated  bool
		cfgValue bool
		want     bool
	}{
		{name: "config value by default", cfgValue: true, want: true},
		{name: "config false by default", cfgValue: false, want: false},
		{name: "flag overrides config", setFlag: true, flagVal: "true", cfgValue: false, want: true},
		{name: "explicit false flag overrides config", setFlag: true, flagVal: "false", cfgValue: true, want: false},
		{name: "negative flag wins", setFlag: true, flagVal: "true", negated: true, cfgValue: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var val bool
			cmd := &cobra.Command{Use: "test", Run: func(*cobra.Command, []string) {}}
			cmd.Flags().BoolVar(&val, "centering", true, "")
			if tt.setFlag {
				if err := cmd.Flags().Set("centering", tt.flagVal); err != nil {
					t.Fatal(err)
				}
			}

			got := mergeToggle(cmd, "centering", val, tt.negated, tt.cfgValue)
			if got != tt.want {
				t.Errorf("mergeToggle() = %v, want %v", got, tt.want)
			}
		})
	}
}
