package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/stacker/pkg/errors"
)

// Read decodes a JSON scene from r.
//
// The input must be a JSON object with an "objects" array:
//
//	{
//	  "objects": [
//	    {"name": "pallet", "min": [0, 0, 0], "max": [4, 4, 1]},
//	    {"name": "crate", "min": [1, 1, 5], "max": [3, 3, 6]}
//	  ]
//	}
//
// Corners are world-space [x, y, z] triples. Objects may carry a
// "children" array of the same shape; child bounds are unioned into the
// parent when stacking, and children move with their parent when a plan
// is applied.
//
// Read validates the decoded scene via [Scene.Validate]: boxes must be
// well-formed, names unique. Unnamed objects are given generated names so
// every object can be addressed by plans, selections and graphs. Read
// does not close r.
func Read(r io.Reader) (*Scene, error) {
	var s Scene
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ReadFile reads a JSON scene file at path.
//
// ReadFile opens the file, decodes it using [Read], and closes the file.
// Errors wrap the underlying cause with the file path for context.
func ReadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene file %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	s, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return s, nil
}

// Write encodes the scene as indented JSON to w, matching the format
// accepted by [Read].
func Write(w io.Writer, s *Scene) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteFile writes the scene to a JSON file at path, creating or
// truncating it. This is a convenience wrapper around [Write] for
// file-based output.
func WriteFile(path string, s *Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(f, s)
}
