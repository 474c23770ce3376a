package kinetic

import "sort"

// Engine owns a single document's EngineState together with the
// spatial index mirroring it. It is the boundary every embedding
// layer talks to: actions and documents cross in and out as encoded
// values, never as native Go types.
type Engine struct {
	state    EngineState
	quadtree *Quadtree
	opts     engineOptions
}

// New creates an Engine with an empty document and a quadtree over
// the configured universe (default: a 10000x10000 rect centered on
// the origin, node capacity 4).
func New(opts ...EngineOption) *Engine {
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{
		state:    NewEngineState(),
		quadtree: NewQuadtree(o.bounds, o.capacity),
		opts:     o,
	}
}

// Dispatch decodes a tagged action document, applies the reducer,
// rebuilds the spatial index, and returns the resulting computed
// view. A decode failure leaves the engine's state untouched.
func (e *Engine) Dispatch(actionData []byte) (EngineState, error) {
	action, err := DecodeAction(actionData)
	if err != nil {
		return EngineState{}, err
	}
	return e.DispatchAction(action), nil
}

// DispatchAction applies a pre-decoded Action, the in-process
// counterpart to Dispatch for callers that already hold a typed
// Action value.
func (e *Engine) DispatchAction(action Action) EngineState {
	Logger().Debug("dispatch", "action", action.Type())
	applyAction(&e.state, action)
	e.rebuildIndex()
	return e.state.GetComputedState()
}

// rebuildIndex discards and reconstructs the quadtree from the
// current state. This is the reference "rebuild on dispatch" policy;
// it keeps the index trivially consistent at the cost of O(n log n)
// work per mutation.
//
// Elements are inserted in sorted-id order rather than map iteration
// order: Go randomizes map iteration per run, and insertion order
// decides which node a spanning element lands in, so an unsorted walk
// would make QuerySpatial's result order nondeterministic across runs.
func (e *Engine) rebuildIndex() {
	e.quadtree = NewQuadtree(e.opts.bounds, e.opts.capacity)

	ids := make([]string, 0, len(e.state.Elements))
	for id := range e.state.Elements {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		el := e.state.Elements[id]
		if el.Shape == nil {
			continue
		}
		e.quadtree.Insert(id, el.Shape.BoundingBox())
	}
	Logger().Debug("quadtree rebuilt", "elements", len(ids))
}

// GetState returns the computed view: the current document with every
// animated property evaluated at CurrentTime.
func (e *Engine) GetState() EngineState {
	return e.state.GetComputedState()
}

// SerializeState encodes the raw (un-computed) state as JSON.
func (e *Engine) SerializeState() ([]byte, error) {
	return SerializeState(e.state)
}

// DeserializeState replaces the engine's state with the document
// decoded from data and rebuilds the spatial index. On failure the
// prior state is left untouched.
func (e *Engine) DeserializeState(data []byte) error {
	state, err := DeserializeState(data)
	if err != nil {
		return err
	}
	e.state = state
	e.rebuildIndex()
	Logger().Info("state replaced via deserialize", "elements", len(e.state.Elements))
	return nil
}

// QuerySpatial returns the ordered sequence of candidate element ids
// whose owning quadtree nodes intersect the given rect. Results are a
// superset of the true hit set — callers that need exact containment
// must refine against each candidate's own bounding box.
func (e *Engine) QuerySpatial(x, y, w, h float64) []string {
	return e.quadtree.Query(NewRect(x, y, w, h), nil)
}
