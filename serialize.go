package kinetic

import (
	"encoding/json"
	"errors"
)

// wireShape is the on-the-wire envelope for Shape: a "kind" tag plus
// the variant's own fields inlined. Scalars within nested values keep
// their bit-exact integer encoding (see Scalar.MarshalJSON).
type wireShape struct {
	Kind ShapeKind `json:"kind"`

	// rect / circle / image
	Origin Point  `json:"origin,omitempty"`
	Width  Scalar `json:"width,omitempty"`
	Height Scalar `json:"height,omitempty"`
	Center Point  `json:"center,omitempty"`
	Radius Scalar `json:"radius,omitempty"`
	Src    string `json:"src,omitempty"`

	// group
	Children []string `json:"children,omitempty"`

	// path
	Commands []wireCommand `json:"commands,omitempty"`
}

// marshalShape encodes s into its tagged wire representation.
func marshalShape(s Shape) ([]byte, error) {
	w := wireShape{Kind: s.Kind()}
	switch v := s.(type) {
	case *Rect:
		w.Origin, w.Width, w.Height = v.Origin, v.Width, v.Height
	case *Circle:
		w.Center, w.Radius = v.Center, v.Radius
	case *Image:
		w.Src, w.Origin, w.Width, w.Height = v.Src, v.Origin, v.Width, v.Height
	case *GroupShape:
		w.Children = v.Children
	case *PathShape:
		cmds := make([]wireCommand, len(v.Commands))
		for i, c := range v.Commands {
			cmds[i] = marshalCommand(c)
		}
		w.Commands = cmds
	}
	return json.Marshal(w)
}

// unmarshalShape decodes a tagged Shape from its wire representation.
func unmarshalShape(data []byte) (Shape, error) {
	var w wireShape
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, &DecodeError{Op: "unmarshal shape", Err: err}
	}
	switch w.Kind {
	case ShapeKindRect:
		if w.Width < 0 || w.Height < 0 {
			return nil, &InvariantViolationError{Reason: ErrNegativeDimension}
		}
		return &Rect{Origin: w.Origin, Width: w.Width, Height: w.Height}, nil
	case ShapeKindCircle:
		if w.Radius < 0 {
			return nil, &InvariantViolationError{Reason: ErrNegativeDimension}
		}
		return &Circle{Center: w.Center, Radius: w.Radius}, nil
	case ShapeKindImage:
		if w.Width < 0 || w.Height < 0 {
			return nil, &InvariantViolationError{Reason: ErrNegativeDimension}
		}
		return &Image{Src: w.Src, Origin: w.Origin, Width: w.Width, Height: w.Height}, nil
	case ShapeKindGroup:
		return NewGroupShape(w.Children...), nil
	case ShapeKindPath:
		cmds := make([]PathCommand, len(w.Commands))
		for i, c := range w.Commands {
			cmd, err := unmarshalCommand(c)
			if err != nil {
				return nil, err
			}
			cmds[i] = cmd
		}
		return &PathShape{Commands: cmds}, nil
	default:
		return nil, &DecodeError{Op: "unmarshal shape", Err: ErrUnknownShapeKind}
	}
}

// wireCommand is the tagged envelope for a single PathCommand.
type wireCommand struct {
	Kind     PathCommandKind `json:"kind"`
	Point    Point           `json:"point,omitempty"`
	Control1 Point           `json:"control1,omitempty"`
	Control2 Point           `json:"control2,omitempty"`
	End      Point           `json:"end,omitempty"`
}

func marshalCommand(c PathCommand) wireCommand {
	w := wireCommand{Kind: c.Kind()}
	switch v := c.(type) {
	case MoveTo:
		w.Point = v.Point
	case LineTo:
		w.Point = v.Point
	case CurveTo:
		w.Control1, w.Control2, w.End = v.Control1, v.Control2, v.End
	case Close:
	}
	return w
}

func unmarshalCommand(w wireCommand) (PathCommand, error) {
	switch w.Kind {
	case CmdMoveTo:
		return MoveTo{Point: w.Point}, nil
	case CmdLineTo:
		return LineTo{Point: w.Point}, nil
	case CmdCurveTo:
		return CurveTo{Control1: w.Control1, Control2: w.Control2, End: w.End}, nil
	case CmdClose:
		return Close{}, nil
	default:
		return nil, &DecodeError{Op: "unmarshal path command", Err: ErrUnknownShapeKind}
	}
}

// wireElement mirrors Element with Shape replaced by its tagged
// envelope, since the Shape interface cannot be unmarshaled directly.
type wireElement struct {
	ID         string                  `json:"id"`
	Name       string                  `json:"name"`
	Shape      json.RawMessage         `json:"shape"`
	Fill       string                  `json:"fill"`
	Opacity    float32                 `json:"opacity"`
	Visible    bool                    `json:"visible"`
	ParentID   *string                 `json:"parent_id,omitempty"`
	Animations map[string][]Keyframe   `json:"animations"`
}

func marshalElement(e Element) (wireElement, error) {
	shapeData, err := marshalShape(e.Shape)
	if err != nil {
		return wireElement{}, err
	}
	return wireElement{
		ID:         e.ID,
		Name:       e.Name,
		Shape:      shapeData,
		Fill:       e.Fill,
		Opacity:    e.Opacity,
		Visible:    e.Visible,
		ParentID:   e.ParentID,
		Animations: e.Animations,
	}, nil
}

func unmarshalElement(w wireElement) (Element, error) {
	shape, err := unmarshalShape(w.Shape)
	if err != nil {
		var iv *InvariantViolationError
		if errors.As(err, &iv) && iv.ElementID == "" {
			iv.ElementID = w.ID
		}
		return Element{}, err
	}
	animations := w.Animations
	if animations == nil {
		animations = make(map[string][]Keyframe)
	}
	return Element{
		ID:         w.ID,
		Name:       w.Name,
		Shape:      shape,
		Fill:       w.Fill,
		Opacity:    w.Opacity,
		Visible:    w.Visible,
		ParentID:   w.ParentID,
		Animations: animations,
	}, nil
}

// wireState is the serialized form of EngineState: elements become a
// JSON object keyed by id, same as the in-memory map, but each value
// goes through wireElement for its tagged Shape.
type wireState struct {
	Elements    map[string]wireElement `json:"elements"`
	Selection   []string               `json:"selection"`
	Transform   Transform              `json:"transform"`
	Presence    map[string]Presence    `json:"presence"`
	CurrentTime float32                `json:"current_time"`
	Duration    float32                `json:"duration"`
	IsPlaying   bool                   `json:"is_playing"`
}

// SerializeState encodes the raw (un-computed) state as JSON. Scalars
// inside shapes keep their exact integer bit pattern so that decoding
// the result reproduces the identical fixed-point values.
func SerializeState(s EngineState) ([]byte, error) {
	w := wireState{
		Elements:    make(map[string]wireElement, len(s.Elements)),
		Selection:   s.Selection,
		Transform:   s.Transform,
		Presence:    s.Presence,
		CurrentTime: s.CurrentTime,
		Duration:    s.Duration,
		IsPlaying:   s.IsPlaying,
	}
	for id, el := range s.Elements {
		we, err := marshalElement(el)
		if err != nil {
			return nil, err
		}
		w.Elements[id] = we
	}
	data, err := json.Marshal(w)
	if err != nil {
		return nil, &DecodeError{Op: "marshal state", Err: err}
	}
	return data, nil
}

// DeserializeState decodes data into a fresh EngineState, rejecting
// documents that violate invariants a writer cannot observe directly:
// an element keyed under one id but carrying another, and cyclic
// parent_id chains. Duplicate ids cannot occur by construction since
// elements are keyed by id in the wire object itself.
func DeserializeState(data []byte) (EngineState, error) {
	var w wireState
	if err := json.Unmarshal(data, &w); err != nil {
		return EngineState{}, &DecodeError{Op: "unmarshal state", Err: err}
	}

	state := EngineState{
		Elements:    make(map[string]Element, len(w.Elements)),
		Selection:   w.Selection,
		Transform:   w.Transform,
		Presence:    w.Presence,
		CurrentTime: w.CurrentTime,
		Duration:    w.Duration,
		IsPlaying:   w.IsPlaying,
	}
	if state.Presence == nil {
		state.Presence = make(map[string]Presence)
	}

	for id, we := range w.Elements {
		el, err := unmarshalElement(we)
		if err != nil {
			return EngineState{}, err
		}
		if el.ID == "" {
			el.ID = id
		} else if el.ID != id {
			return EngineState{}, &InvariantViolationError{Reason: ErrDuplicateID, ElementID: id}
		}
		state.Elements[id] = el
	}

	if err := validateParentChains(state.Elements); err != nil {
		return EngineState{}, err
	}

	return state, nil
}

// validateParentChains walks every element's parent_id chain and
// rejects the document if any chain revisits a node.
func validateParentChains(elements map[string]Element) error {
	for id := range elements {
		visited := map[string]bool{id: true}
		cur := elements[id].ParentID
		for cur != nil {
			if visited[*cur] {
				return &InvariantViolationError{Reason: ErrCyclicParent, ElementID: id}
			}
			visited[*cur] = true
			next, ok := elements[*cur]
			if !ok {
				break
			}
			cur = next.ParentID
		}
	}
	return nil
}

// wireAction is the tagged envelope used to decode an Action from the
// boundary: a "type" discriminant plus an opaque "payload".
type wireAction struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// DecodeAction decodes a single tagged action document, as accepted
// by Engine.Dispatch.
func DecodeAction(data []byte) (Action, error) {
	var w wireAction
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, &DecodeError{Op: "unmarshal action", Err: err}
	}

	switch w.Type {
	case "ADD_ELEMENT":
		var payload struct {
			ID    string          `json:"id"`
			Name  string          `json:"name"`
			Shape json.RawMessage `json:"shape"`
			Fill  string          `json:"fill"`
		}
		if err := json.Unmarshal(w.Payload, &payload); err != nil {
			return nil, &DecodeError{Op: "unmarshal AddElement", Err: err}
		}
		shape, err := unmarshalShape(payload.Shape)
		if err != nil {
			return nil, err
		}
		return AddElementAction{ID: payload.ID, Name: payload.Name, Shape: shape, Fill: payload.Fill}, nil

	case "REMOVE_ELEMENT":
		var payload struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(w.Payload, &payload); err != nil {
			return nil, &DecodeError{Op: "unmarshal RemoveElement", Err: err}
		}
		return RemoveElementAction{ID: payload.ID}, nil

	case "MOVE_ELEMENT":
		var payload struct {
			ID string  `json:"id"`
			DX float32 `json:"dx"`
			DY float32 `json:"dy"`
		}
		if err := json.Unmarshal(w.Payload, &payload); err != nil {
			return nil, &DecodeError{Op: "unmarshal MoveElement", Err: err}
		}
		return MoveElementAction{ID: payload.ID, DX: payload.DX, DY: payload.DY}, nil

	case "SET_FILL":
		var payload struct {
			ID   string `json:"id"`
			Fill string `json:"fill"`
		}
		if err := json.Unmarshal(w.Payload, &payload); err != nil {
			return nil, &DecodeError{Op: "unmarshal SetFill", Err: err}
		}
		return SetFillAction{ID: payload.ID, Fill: payload.Fill}, nil

	case "SET_TIME":
		var payload struct {
			Time float32 `json:"time"`
		}
		if err := json.Unmarshal(w.Payload, &payload); err != nil {
			return nil, &DecodeError{Op: "unmarshal SetTime", Err: err}
		}
		return SetTimeAction{Time: payload.Time}, nil

	case "TOGGLE_PLAYBACK":
		return TogglePlaybackAction{}, nil

	case "ADD_KEYFRAME":
		var payload struct {
			ElementID string   `json:"element_id"`
			Property  string   `json:"property"`
			Keyframe  Keyframe `json:"keyframe"`
		}
		if err := json.Unmarshal(w.Payload, &payload); err != nil {
			return nil, &DecodeError{Op: "unmarshal AddKeyframe", Err: err}
		}
		return AddKeyframeAction{ElementID: payload.ElementID, Property: payload.Property, Keyframe: payload.Keyframe}, nil

	case "SET_VIEW":
		var payload struct {
			Transform Transform `json:"transform"`
		}
		if err := json.Unmarshal(w.Payload, &payload); err != nil {
			return nil, &DecodeError{Op: "unmarshal SetView", Err: err}
		}
		return SetViewAction{Transform: payload.Transform}, nil

	case "UPDATE_PRESENCE":
		var payload struct {
			Presence Presence `json:"presence"`
		}
		if err := json.Unmarshal(w.Payload, &payload); err != nil {
			return nil, &DecodeError{Op: "unmarshal UpdatePresence", Err: err}
		}
		return UpdatePresenceAction{Presence: payload.Presence}, nil

	default:
		return nil, &DecodeError{Op: "unmarshal action", Err: ErrUnknownActionType}
	}
}
