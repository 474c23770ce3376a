package kinetic

// ShapeKind discriminates the variants of Shape. Adding a variant is a
// breaking change to the wire format (see SerializeState).
type ShapeKind uint8

const (
	ShapeKindRect ShapeKind = iota
	ShapeKindCircle
	ShapeKindGroup
	ShapeKindImage
	ShapeKindPath
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeKindRect:
		return "rect"
	case ShapeKindCircle:
		return "circle"
	case ShapeKindGroup:
		return "group"
	case ShapeKindImage:
		return "image"
	case ShapeKindPath:
		return "path"
	default:
		return unknownStr
	}
}

// Shape is the tagged variant over the five geometry primitives an
// Element can carry. All operations dispatch by variant; Group carries
// no geometry of its own (see GroupShape).
type Shape interface {
	Kind() ShapeKind
	// Translate shifts the shape's stored geometry by (dx, dy). A no-op
	// for GroupShape — the caller must translate each child element.
	Translate(dx, dy float64)
	// BoundingBox returns the shape's axis-aligned bounds. For
	// GroupShape this is the zero rect; a true group bound is the union
	// of the children's bounds, computed at the owning-element level.
	BoundingBox() Rect
	// ContainsPoint reports whether p lies within the shape. For
	// PathShape this is a coarse bounding-box test, not a winding-number
	// test. For GroupShape this always returns false — hit testing
	// recurses at the element/group level.
	ContainsPoint(p Point) bool
}

// NewRectShape creates a Shape wrapping a Rect.
func NewRectShape(x, y, width, height float64) Shape {
	r := NewRect(x, y, width, height)
	return &r
}

// NewCircleShape creates a Shape wrapping a Circle.
func NewCircleShape(x, y, radius float64) Shape {
	c := NewCircle(x, y, radius)
	return &c
}

// Kind implements Shape.
func (r *Rect) Kind() ShapeKind { return ShapeKindRect }

// BoundingBox implements Shape (and is useful standalone: a Rect is
// its own bounding box).
func (r Rect) BoundingBox() Rect { return r }

// ContainsPoint implements Shape by delegating to Contains.
func (r *Rect) ContainsPoint(p Point) bool { return r.Contains(p) }

// Kind implements Shape.
func (c *Circle) Kind() ShapeKind { return ShapeKindCircle }

// ContainsPoint implements Shape by delegating to Contains.
func (c *Circle) ContainsPoint(p Point) bool { return c.Contains(p) }

// Kind implements Shape.
func (p *PathShape) Kind() ShapeKind { return ShapeKindPath }

// BoundingBox implements Shape by delegating to GetBounds.
func (p *PathShape) BoundingBox() Rect { return p.GetBounds() }

// ContainsPoint implements Shape as a coarse bounding-box containment
// test. The source this engine was modeled on conflated a path with
// its own bounds here; true winding-number hit-testing is future work.
func (p *PathShape) ContainsPoint(pt Point) bool { return p.GetBounds().Contains(pt) }
