package aabb

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAxis is returned by [ParseAxis] for any string other than
// "x", "y" or "z" (case-insensitive).
var ErrInvalidAxis = errors.New(`axis must be "x", "y" or "z"`)

// Axis selects one of the three spatial dimensions. It doubles as the
// index into [Box] corners and translation vectors, so AxisX == 0,
// AxisY == 1 and AxisZ == 2 by construction.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// ParseAxis converts a user-supplied axis name into an Axis. It accepts
// "x", "y" and "z" in any case, with surrounding whitespace ignored.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrInvalidAxis)
}

// String returns the lowercase axis name, or "axis(n)" for out-of-range
// values.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("axis(%d)", int(a))
}

// Others returns the two axes orthogonal to a, in ascending order. For
// stacking these are the horizontal axes used by overlap tests and
// center alignment.
func (a Axis) Others() [2]Axis {
	switch a {
	case AxisX:
		return [2]Axis{AxisY, AxisZ}
	case AxisY:
		return [2]Axis{AxisX, AxisZ}
	default:
		return [2]Axis{AxisX, AxisY}
	}
}

// MarshalText implements encoding.TextMarshaler so an Axis serializes as
// its name in JSON and TOML documents.
func (a Axis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using [ParseAxis].
func (a *Axis) UnmarshalText(text []byte) error {
	parsed, err := ParseAxis(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
