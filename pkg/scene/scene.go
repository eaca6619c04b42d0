package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/matzehuels/stacker/pkg/aabb"
	"github.com/matzehuels/stacker/pkg/errors"
)

// Object is a named thing in a scene with a world-space bounding box and
// optional child objects. Children model grouped geometry: an object's
// effective bounds are the union of its own box and every descendant's,
// and translating an object moves its whole subtree.
type Object struct {
	Name     string     `json:"name,omitempty"`
	Min      mgl64.Vec3 `json:"min"`
	Max      mgl64.Vec3 `json:"max"`
	Children []Object   `json:"children,omitempty"`
}

// Box returns the object's own bounding box, ignoring children.
func (o Object) Box() aabb.Box {
	return aabb.Box{Min: o.Min, Max: o.Max}
}

// Bounds returns the union of the object's box and the bounds of all its
// descendants, recursively.
func (o Object) Bounds() aabb.Box {
	b := o.Box()
	for _, child := range o.Children {
		b = b.Union(child.Bounds())
	}
	return b
}

// Translate returns a copy of the object with itself and every descendant
// shifted by delta.
func (o Object) Translate(delta mgl64.Vec3) Object {
	moved := o
	moved.Min = o.Min.Add(delta)
	moved.Max = o.Max.Add(delta)
	if len(o.Children) > 0 {
		moved.Children = make([]Object, len(o.Children))
		for i, child := range o.Children {
			moved.Children[i] = child.Translate(delta)
		}
	}
	return moved
}

// Scene is an ordered collection of top-level objects. Order is the
// caller's input order and is preserved through every operation.
type Scene struct {
	Objects []Object `json:"objects"`
}

// Bounds returns one world-space box per top-level object, in scene
// order, each including the object's descendants.
func (s *Scene) Bounds() []aabb.Box {
	boxes := make([]aabb.Box, len(s.Objects))
	for i, o := range s.Objects {
		boxes[i] = o.Bounds()
	}
	return boxes
}

// Names returns the top-level object names in scene order.
func (s *Scene) Names() []string {
	names := make([]string, len(s.Objects))
	for i, o := range s.Objects {
		names[i] = o.Name
	}
	return names
}

// Select returns the objects with the given names, in the order the names
// are given. This is how a CLI selection maps onto the scene: the name
// order stands in for the host editor's selection order. With no names,
// Select returns all objects in scene order.
//
// Unknown and repeated names are errors.
func (s *Scene) Select(names []string) ([]Object, error) {
	if len(names) == 0 {
		return append([]Object(nil), s.Objects...), nil
	}

	byName := make(map[string]Object, len(s.Objects))
	for _, o := range s.Objects {
		byName[o.Name] = o
	}

	picked := make([]Object, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		o, ok := byName[name]
		if !ok {
			return nil, errors.New(errors.ErrCodeObjectNotFound, "no object named %q in scene", name)
		}
		if seen[name] {
			return nil, errors.New(errors.ErrCodeInvalidInput, "object %q selected twice", name)
		}
		seen[name] = true
		picked = append(picked, o)
	}
	return picked, nil
}

// Apply returns a copy of the scene with the named top-level objects
// translated by their deltas. Objects without an entry stay where they
// are.
func (s *Scene) Apply(deltas map[string]mgl64.Vec3) Scene {
	out := Scene{Objects: make([]Object, len(s.Objects))}
	for i, o := range s.Objects {
		if delta, ok := deltas[o.Name]; ok {
			out.Objects[i] = o.Translate(delta)
		} else {
			out.Objects[i] = o
		}
	}
	return out
}

// Validate checks the scene and fills in generated names for unnamed
// objects. It enforces:
//   - every box well-formed (min <= max per axis), children included
//   - names valid per [errors.ValidateObjectName]
//   - names unique across the whole scene, children included
//
// Validate mutates the scene in place (name generation) and is called by
// [Read]; standalone construction should call it before handing the scene
// to anything else.
func (s *Scene) Validate() error {
	seen := make(map[string]bool)
	for i := range s.Objects {
		if err := validateObject(&s.Objects[i], seen); err != nil {
			return err
		}
	}
	return nil
}

func validateObject(o *Object, seen map[string]bool) error {
	if o.Name == "" {
		o.Name = "object-" + uuid.NewString()
	}
	if err := errors.ValidateObjectName(o.Name); err != nil {
		return err
	}
	if seen[o.Name] {
		return errors.New(errors.ErrCodeInvalidScene, "duplicate object name %q", o.Name)
	}
	seen[o.Name] = true

	if !o.Box().WellFormed() {
		return errors.New(errors.ErrCodeInvalidScene, "object %q: min > max", o.Name)
	}

	for i := range o.Children {
		if err := validateObject(&o.Children[i], seen); err != nil {
			return err
		}
	}
	return nil
}
