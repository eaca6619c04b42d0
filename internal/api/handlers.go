package api

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/stacker/pkg/aabb"
	"github.com/matzehuels/stacker/pkg/errors"
	"github.com/matzehuels/stacker/pkg/scene"
	"github.com/matzehuels/stacker/pkg/stack"
)

// minBatch is the smallest object count either operation accepts.
const minBatch = 2

type dropRequest struct {
	Axis    string         `json:"axis"`
	Padding float64        `json:"padding"`
	Objects []scene.Object `json:"objects"`
}

type stackRequest struct {
	Axis    string         `json:"axis"`
	Padding float64        `json:"padding"`
	Objects []scene.Object `json:"objects"`

	// Centering and Sorting default to true when omitted.
	Centering *bool  `json:"centering"`
	Sorting   *bool  `json:"sorting"`
	Anchor    string `json:"anchor"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDrop(w http.ResponseWriter, r *http.Request) {
	var req dropRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	axis, boxes, names, err := prepare(req.Axis, req.Padding, req.Objects)
	if err != nil {
		s.writeError(w, err)
		return
	}

	plan := stack.DropDownPlan(boxes, axis, req.Padding)
	out := scene.DropPlan(names, axis, req.Padding, plan)
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleStack(w http.ResponseWriter, r *http.Request) {
	var req stackRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	axis, boxes, names, err := prepare(req.Axis, req.Padding, req.Objects)
	if err != nil {
		s.writeError(w, err)
		return
	}

	opts := stack.ColumnOptions{
		Padding: req.Padding,
		Center:  req.Centering == nil || *req.Centering,
		Sort:    req.Sorting == nil || *req.Sorting,
	}
	if req.Anchor != "" {
		idx, err := indexOf(names, req.Anchor)
		if err != nil {
			s.writeError(w, err)
			return
		}
		opts.Anchor = idx
	}

	deltas := stack.Column(boxes, axis, opts)
	out := scene.ColumnPlan(names, axis, req.Padding, deltas)
	s.writeJSON(w, http.StatusOK, out)
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request")
	}
	return nil
}

// prepare validates the shared request fields and flattens the objects
// into kernel inputs. Object names are generated where missing, so the
// returned names always line up with boxes by index.
func prepare(axisName string, padding float64, objects []scene.Object) (aabb.Axis, []aabb.Box, []string, error) {
	if axisName == "" {
		axisName = "z"
	}
	axis, err := aabb.ParseAxis(axisName)
	if err != nil {
		return 0, nil, nil, errors.Wrap(errors.ErrCodeInvalidAxis, err, "parse axis")
	}

	if err := errors.ValidatePadding(padding); err != nil {
		return 0, nil, nil, err
	}

	sc := &scene.Scene{Objects: objects}
	if err := sc.Validate(); err != nil {
		return 0, nil, nil, err
	}
	if len(sc.Objects) < minBatch {
		return 0, nil, nil, errors.New(errors.ErrCodeTooFewObjects,
			"at least %d objects are required, got %d", minBatch, len(sc.Objects))
	}

	return axis, sc.Bounds(), sc.Names(), nil
}

func indexOf(names []string, name string) (int, error) {
	for i, n := range names {
		if n == name {
			return i, nil
		}
	}
	return 0, errors.New(errors.ErrCodeObjectNotFound, "anchor %q not in objects", name)
}
