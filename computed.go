package kinetic

// GetComputedState returns a deep copy of state in which, for every
// element and every animated property, the value interpolated at
// state.CurrentTime has been written back into the shape (or
// opacity). Supported property names are "x", "y", and "opacity";
// anything else — including Group and Path shapes for "x"/"y" — is
// left untouched. The computed view is the only representation meant
// for readers; the raw state round-trips through SerializeState /
// DeserializeState instead.
func (s EngineState) GetComputedState() EngineState {
	computed := s.Clone()
	for id, el := range computed.Elements {
		for property, keyframes := range el.Animations {
			value := Interpolate(keyframes, s.CurrentTime)
			applyComputedProperty(&el, property, value)
		}
		computed.Elements[id] = el
	}
	return computed
}

// applyComputedProperty writes an interpolated value back into el's
// shape or opacity, dispatching on property name and shape variant.
func applyComputedProperty(el *Element, property string, value float32) {
	switch property {
	case "x":
		switch shape := el.Shape.(type) {
		case *Rect:
			shape.Origin.X = NewScalar(float64(value))
		case *Circle:
			shape.Center.X = NewScalar(float64(value))
		case *Image:
			shape.Origin.X = NewScalar(float64(value))
		}
	case "y":
		switch shape := el.Shape.(type) {
		case *Rect:
			shape.Origin.Y = NewScalar(float64(value))
		case *Circle:
			shape.Center.Y = NewScalar(float64(value))
		case *Image:
			shape.Origin.Y = NewScalar(float64(value))
		}
	case "opacity":
		el.Opacity = value
	default:
		Logger().Warn("computed state: unknown animated property", "element_id", el.ID, "property", property)
	}
}
