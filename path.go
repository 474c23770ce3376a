package kinetic

// PathCommandKind discriminates the variants of PathCommand. Adding a
// variant is a breaking change to the wire format (see SerializeState).
type PathCommandKind uint8

const (
	CmdMoveTo PathCommandKind = iota
	CmdLineTo
	CmdCurveTo
	CmdClose
)

func (k PathCommandKind) String() string {
	switch k {
	case CmdMoveTo:
		return "move_to"
	case CmdLineTo:
		return "line_to"
	case CmdCurveTo:
		return "curve_to"
	case CmdClose:
		return "close"
	default:
		return unknownStr
	}
}

const unknownStr = "unknown"

// PathCommand is a single element of a PathShape's command list.
type PathCommand interface {
	Kind() PathCommandKind
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

// Kind implements PathCommand.
func (MoveTo) Kind() PathCommandKind { return CmdMoveTo }

// LineTo draws a straight line to a point.
type LineTo struct {
	Point Point
}

// Kind implements PathCommand.
func (LineTo) Kind() PathCommandKind { return CmdLineTo }

// CurveTo draws a cubic Bezier curve via two control points to an
// end point.
type CurveTo struct {
	Control1 Point
	Control2 Point
	End      Point
}

// Kind implements PathCommand.
func (CurveTo) Kind() PathCommandKind { return CmdCurveTo }

// Close closes the current subpath.
type Close struct{}

// Kind implements PathCommand.
func (Close) Kind() PathCommandKind { return CmdClose }

// BooleanOp names a path-combining operation. Only Union is
// implemented — Subtract and Intersect require polygon clipping that
// this engine does not perform; Combine returns ErrUnsupportedPathOp
// for either.
type BooleanOp uint8

const (
	OpUnion BooleanOp = iota
	OpSubtract
	OpIntersect
)

// PathShape is an ordered sequence of cubic-Bezier path commands.
type PathShape struct {
	Commands []PathCommand
}

// NewPathShape creates an empty PathShape.
func NewPathShape() *PathShape {
	return &PathShape{Commands: make([]PathCommand, 0, 8)}
}

// MoveTo appends a MoveTo command.
func (p *PathShape) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, MoveTo{Point: NewPoint(x, y)})
}

// LineTo appends a LineTo command.
func (p *PathShape) LineTo(x, y float64) {
	p.Commands = append(p.Commands, LineTo{Point: NewPoint(x, y)})
}

// CubicTo appends a CurveTo command.
func (p *PathShape) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.Commands = append(p.Commands, CurveTo{
		Control1: NewPoint(c1x, c1y),
		Control2: NewPoint(c2x, c2y),
		End:      NewPoint(x, y),
	})
}

// ClosePath appends a Close command.
func (p *PathShape) ClosePath() {
	p.Commands = append(p.Commands, Close{})
}

// GetBounds returns the axis-aligned hull of every point mentioned by
// any command, including Bezier control points. This over-approximates
// the true curve bounds but is cheap and deterministic; tightening it
// with curve extrema is a valid optimization as long as it is not
// relied on by callers.
func (p *PathShape) GetBounds() Rect {
	first := true
	var minX, minY, maxX, maxY Scalar

	include := func(pt Point) {
		if first {
			minX, maxX = pt.X, pt.X
			minY, maxY = pt.Y, pt.Y
			first = false
			return
		}
		minX, maxX = minScalar(minX, pt.X), maxScalar(maxX, pt.X)
		minY, maxY = minScalar(minY, pt.Y), maxScalar(maxY, pt.Y)
	}

	for _, cmd := range p.Commands {
		switch c := cmd.(type) {
		case MoveTo:
			include(c.Point)
		case LineTo:
			include(c.Point)
		case CurveTo:
			include(c.Control1)
			include(c.Control2)
			include(c.End)
		case Close:
			// contributes no new point
		}
	}

	if first {
		return Rect{}
	}
	return Rect{Origin: Point{X: minX, Y: minY}, Width: maxX.Sub(minX), Height: maxY.Sub(minY)}
}

// Translate shifts every point in every command by (dx, dy).
func (p *PathShape) Translate(dx, dy float64) {
	d := NewPoint(dx, dy)
	for i, cmd := range p.Commands {
		switch c := cmd.(type) {
		case MoveTo:
			p.Commands[i] = MoveTo{Point: c.Point.Add(d)}
		case LineTo:
			p.Commands[i] = LineTo{Point: c.Point.Add(d)}
		case CurveTo:
			p.Commands[i] = CurveTo{
				Control1: c.Control1.Add(d),
				Control2: c.Control2.Add(d),
				End:      c.End.Add(d),
			}
		case Close:
			// no point to shift
		}
	}
}

// Combine appends other's commands to p under op. Only OpUnion is
// implemented, as a plain command-list concatenation; OpSubtract and
// OpIntersect report ErrUnsupportedPathOp instead of silently doing
// nothing, since true Boolean clipping (e.g. Weiler-Atherton) is not
// implemented here.
func (p *PathShape) Combine(other *PathShape, op BooleanOp) error {
	if op != OpUnion {
		return ErrUnsupportedPathOp
	}
	p.Commands = append(p.Commands, other.Commands...)
	return nil
}

// Clone returns a deep copy of the path.
func (p *PathShape) Clone() *PathShape {
	cmds := make([]PathCommand, len(p.Commands))
	copy(cmds, p.Commands)
	return &PathShape{Commands: cmds}
}
