// Package kinetic implements the deterministic core of a 2D animation
// engine: a command-driven state reducer over a keyed element store,
// with fixed-point geometry, keyframe interpolation, and a quadtree
// spatial index.
//
// # Overview
//
// The engine ingests one Action at a time, applies it to an EngineState,
// rebuilds the spatial index, and exposes a computed EngineState — a
// read-only projection with keyframe animation baked in for the
// current time. It does not render anything; rendering, transport, and
// UI are external collaborators.
//
// # Quick Start
//
//	eng := kinetic.New()
//	eng.DispatchAction(kinetic.AddElementAction{
//	    ID:    "box1",
//	    Shape: kinetic.NewRectShape(0, 0, 100, 100),
//	    Fill:  "#ff0000",
//	})
//	eng.DispatchAction(kinetic.MoveElementAction{ID: "box1", DX: 10.5, DY: 20.7})
//	view := eng.GetState()
//
// # Determinism
//
// All stored geometry uses Scalar, a 48.16 fixed-point number. Given an
// identical initial state and an identical, totally-ordered action
// sequence, two engine instances produce byte-identical serialized
// output on any platform — see SerializeState.
//
// # Architecture
//
// The package is organized into:
//   - Geometry: Scalar, Point, Rect, Circle
//   - Shape: Rect, Circle, Group, Image, Path variants with uniform ops
//   - Animation: Keyframe, easing functions, interpolate
//   - State: Element, EngineState, Action, the reducer
//   - Quadtree: spatial index mirroring the element store
//   - Serialization: JSON, the canonical wire format
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right, Y increases down
//   - Angles in radians where used, 0 is right, increasing clockwise
package kinetic
