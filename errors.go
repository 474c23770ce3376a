package kinetic

import "errors"

// Sentinel errors returned at the engine boundary. None of these are
// fatal to the engine instance: a failed dispatch or decode leaves the
// prior state untouched.
var (
	// ErrUnsupportedPathOp is returned by PathShape.Combine for any
	// BooleanOp other than Union. Subtract and Intersect require
	// polygon clipping that is not implemented.
	ErrUnsupportedPathOp = errors.New("kinetic: unsupported path boolean operation")

	// ErrDuplicateID is returned at decode time when a state document
	// keys an element under one id while the element carries another,
	// so that two ids would claim the same element.
	ErrDuplicateID = errors.New("kinetic: duplicate element id")

	// ErrCyclicParent is returned at decode time when following
	// parent_id references revisits an element.
	ErrCyclicParent = errors.New("kinetic: cyclic parent chain")

	// ErrNegativeDimension is returned at decode time for a Rect or
	// Circle with a negative width, height, or radius.
	ErrNegativeDimension = errors.New("kinetic: negative dimension")

	// ErrUnknownShapeKind is returned when a wire document names a
	// shape or path-command kind this engine does not recognize.
	ErrUnknownShapeKind = errors.New("kinetic: unknown shape kind")

	// ErrUnknownActionType is returned when a wire document names an
	// action type this engine does not recognize.
	ErrUnknownActionType = errors.New("kinetic: unknown action type")
)

// DecodeError wraps a failure to parse an action or state document at
// the engine boundary; SerializeState also reports a failure to encode
// the state as a DecodeError. The wrapped error carries the underlying
// cause.
type DecodeError struct {
	// Op names the operation that failed, e.g. "DeserializeState".
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return "kinetic: decode error in " + e.Op + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// InvariantViolationError is returned when a caller-constructed state
// fails a structural invariant at deserialize time.
type InvariantViolationError struct {
	// Reason is one of the sentinel errors above.
	Reason error
	// ElementID names the offending element, if applicable.
	ElementID string
}

func (e *InvariantViolationError) Error() string {
	if e.ElementID == "" {
		return e.Reason.Error()
	}
	return e.Reason.Error() + ": element " + e.ElementID
}

func (e *InvariantViolationError) Unwrap() error { return e.Reason }
