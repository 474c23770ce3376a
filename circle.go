package kinetic

// Circle is a center point plus a radius.
type Circle struct {
	Center Point
	Radius Scalar
}

// NewCircle creates a Circle from binary-float coordinates.
func NewCircle(x, y, radius float64) Circle {
	return Circle{Center: NewPoint(x, y), Radius: NewScalar(radius)}
}

// Translate shifts the circle's center by (dx, dy).
func (c *Circle) Translate(dx, dy float64) {
	c.Center = c.Center.Translate(dx, dy)
}

// Contains reports whether p lies within or on the circle. Compares
// squared distance against squared radius so no square root — and no
// binary-float rounding — enters the deterministic path.
func (c Circle) Contains(p Point) bool {
	dx := p.X.Sub(c.Center.X)
	dy := p.Y.Sub(c.Center.Y)
	distSq := dx.Mul(dx).Add(dy.Mul(dy))
	return distSq <= c.Radius.Mul(c.Radius)
}

// CircleIntersectsCircle reports whether two circles overlap, compared
// via squared distance against the squared sum of radii so no square
// root enters the deterministic path.
func CircleIntersectsCircle(c1, c2 Circle) bool {
	dx := c1.Center.X.Sub(c2.Center.X)
	dy := c1.Center.Y.Sub(c2.Center.Y)
	distSq := dx.Mul(dx).Add(dy.Mul(dy))
	radiusSum := c1.Radius.Add(c2.Radius)
	return distSq <= radiusSum.Mul(radiusSum)
}

// CircleIntersectsRect reports whether a circle and a rect overlap, by
// clamping the circle's center onto the rect and comparing squared
// distance against the squared radius.
func CircleIntersectsRect(c Circle, r Rect) bool {
	closestX := c.Center.X
	if c.Center.X < r.Origin.X {
		closestX = r.Origin.X
	} else if c.Center.X > r.MaxX() {
		closestX = r.MaxX()
	}

	closestY := c.Center.Y
	if c.Center.Y < r.Origin.Y {
		closestY = r.Origin.Y
	} else if c.Center.Y > r.MaxY() {
		closestY = r.MaxY()
	}

	dx := c.Center.X.Sub(closestX)
	dy := c.Center.Y.Sub(closestY)
	return dx.Mul(dx).Add(dy.Mul(dy)) <= c.Radius.Mul(c.Radius)
}

// BoundingBox returns the axis-aligned square of side 2*Radius
// centered on the circle's center.
func (c Circle) BoundingBox() Rect {
	diameter := c.Radius.Add(c.Radius)
	return Rect{
		Origin: Point{
			X: c.Center.X.Sub(c.Radius),
			Y: c.Center.Y.Sub(c.Radius),
		},
		Width:  diameter,
		Height: diameter,
	}
}
