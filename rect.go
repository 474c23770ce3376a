package kinetic

// Rect is an axis-aligned rectangle: an origin corner plus a
// non-negative width and height.
type Rect struct {
	Origin        Point
	Width, Height Scalar
}

// NewRect creates a Rect from binary-float coordinates. A negative
// width or height is clamped to 0 (resize with a negative factor is a
// caller error, not a fault — see Resize).
func NewRect(x, y, width, height float64) Rect {
	return NewRectScalar(NewPoint(x, y), NewScalar(width), NewScalar(height))
}

// NewRectScalar creates a Rect directly from Scalar components,
// clamping negative width/height to 0.
func NewRectScalar(origin Point, width, height Scalar) Rect {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Rect{Origin: origin, Width: width, Height: height}
}

// Translate shifts the rect's origin by (dx, dy).
func (r *Rect) Translate(dx, dy float64) {
	r.Origin = r.Origin.Translate(dx, dy)
}

// Resize scales width and height by factor. A negative factor clamps
// the resulting dimension to 0 rather than producing a negative size.
func (r *Rect) Resize(factor float64) {
	f := NewScalar(factor)
	r.Width = r.Width.Mul(f)
	r.Height = r.Height.Mul(f)
	if r.Width < 0 {
		r.Width = 0
	}
	if r.Height < 0 {
		r.Height = 0
	}
}

// MaxX returns the right edge: Origin.X + Width.
func (r Rect) MaxX() Scalar { return r.Origin.X.Add(r.Width) }

// MaxY returns the bottom edge: Origin.Y + Height.
func (r Rect) MaxY() Scalar { return r.Origin.Y.Add(r.Height) }

// Contains reports whether p lies within the rect, inclusive on all
// four edges.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Origin.X && p.X <= r.MaxX() &&
		p.Y >= r.Origin.Y && p.Y <= r.MaxY()
}

// Intersects reports whether r and other overlap, including the case
// where they only touch along a shared edge.
func (r Rect) Intersects(other Rect) bool {
	return !(other.Origin.X > r.MaxX() ||
		other.MaxX() < r.Origin.X ||
		other.Origin.Y > r.MaxY() ||
		other.MaxY() < r.Origin.Y)
}

// Union returns the smallest rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	minX := minScalar(r.Origin.X, other.Origin.X)
	minY := minScalar(r.Origin.Y, other.Origin.Y)
	maxX := maxScalar(r.MaxX(), other.MaxX())
	maxY := maxScalar(r.MaxY(), other.MaxY())
	return Rect{
		Origin: Point{X: minX, Y: minY},
		Width:  maxX.Sub(minX),
		Height: maxY.Sub(minY),
	}
}

// ResolveCollision pushes moving out of obstacle along whichever axis
// has the smaller overlap, and reports whether the two rects were
// intersecting at all. obstacle is left untouched; moving is mutated
// in place. The x axis is used only when its overlap is strictly
// smaller (min_x < min_y, as in the source); ties push along y.
func ResolveCollision(moving *Rect, obstacle Rect) bool {
	if !moving.Intersects(obstacle) {
		return false
	}

	overlapX1 := moving.MaxX().Sub(obstacle.Origin.X)
	overlapX2 := obstacle.MaxX().Sub(moving.Origin.X)
	overlapY1 := moving.MaxY().Sub(obstacle.Origin.Y)
	overlapY2 := obstacle.MaxY().Sub(moving.Origin.Y)

	minX := minScalar(overlapX1, overlapX2)
	minY := minScalar(overlapY1, overlapY2)

	if minX < minY {
		if overlapX1 < overlapX2 {
			moving.Origin.X = moving.Origin.X.Sub(overlapX1)
		} else {
			moving.Origin.X = moving.Origin.X.Add(overlapX2)
		}
	} else {
		if overlapY1 < overlapY2 {
			moving.Origin.Y = moving.Origin.Y.Sub(overlapY1)
		} else {
			moving.Origin.Y = moving.Origin.Y.Add(overlapY2)
		}
	}
	return true
}

func minScalar(a, b Scalar) Scalar {
	if a < b {
		return a
	}
	return b
}

func maxScalar(a, b Scalar) Scalar {
	if a > b {
		return a
	}
	return b
}
