package kinetic

// GroupShape holds an ordered list of child element ids. A group
// carries no geometry of its own — its bounds are the union of its
// children's bounds, which must be computed at the owning Element
// level, not on the variant. Nothing in this package computes that
// union; GetComputedState leaves group shapes untouched.
type GroupShape struct {
	Children []string
}

// NewGroupShape creates a Shape wrapping a GroupShape.
func NewGroupShape(children ...string) Shape {
	g := GroupShape{Children: append([]string(nil), children...)}
	return &g
}

// Kind implements Shape.
func (g *GroupShape) Kind() ShapeKind { return ShapeKindGroup }

// Translate implements Shape as a no-op: the caller must translate
// each child element individually.
func (g *GroupShape) Translate(dx, dy float64) {}

// BoundingBox implements Shape, returning the zero rect. Callers that
// want a true group bound must union the children's bounds themselves.
func (g *GroupShape) BoundingBox() Rect { return Rect{} }

// ContainsPoint implements Shape, always returning false. Group hit
// testing recurses into children at a higher level.
func (g *GroupShape) ContainsPoint(p Point) bool { return false }
