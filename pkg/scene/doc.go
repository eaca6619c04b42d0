// Package scene provides the file-based stand-in for a 3D editor's object
// model: named objects with world-space bounding boxes, JSON import and
// export, and the serializable plans produced by stacking operations.
//
// # Overview
//
// The stacking kernel in [github.com/matzehuels/stacker/pkg/stack] works
// on bare boxes and returns bare translation vectors. This package is the
// boundary around it. It loads scenes, turns objects into boxes (unioning
// each object's children into its bounds), keeps track of names so
// results stay addressable, and serializes outcomes as plans.
//
// # Scene Format
//
// A scene is a JSON object with a single "objects" array:
//
//	{
//	  "objects": [
//	    {"name": "pallet", "min": [0, 0, 0], "max": [4, 4, 1]},
//	    {
//	      "name": "crate",
//	      "min": [1, 1, 5],
//	      "max": [3, 3, 6],
//	      "children": [
//	        {"name": "lid", "min": [1, 1, 6], "max": [3, 3, 6.2]}
//	      ]
//	    }
//	  ]
//	}
//
// Corners are world-space [x, y, z] triples with min <= max per axis.
// Children nest arbitrarily deep; a parent's effective bounds are the
// union of its own box and every descendant's, and translating a parent
// moves the whole subtree. Unnamed objects get generated names on load,
// duplicate names are rejected.
//
// # Plans
//
// Operations do not modify scenes. They produce a [Plan]: per selected
// object, the translation to apply and (for drop-down) the name of the
// object it came to rest on. [Scene.Apply] turns a plan back into a
// translated scene when the host asks for that.
package scene
