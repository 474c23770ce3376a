package kinetic

// Point is a 2D position in fixed-point space.
type Point struct {
	X, Y Scalar
}

// NewPoint creates a Point from binary-float coordinates, quantizing
// each component to a Scalar.
func NewPoint(x, y float64) Point {
	return Point{X: NewScalar(x), Y: NewScalar(y)}
}

// Add returns the sum of two points, treating other as a displacement.
func (p Point) Add(other Point) Point {
	return Point{X: p.X.Add(other.X), Y: p.Y.Add(other.Y)}
}

// Sub returns the difference of two points.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X.Sub(other.X), Y: p.Y.Sub(other.Y)}
}

// Translate returns p shifted by (dx, dy), quantized to Scalar.
func (p Point) Translate(dx, dy float64) Point {
	return Point{X: p.X.Add(NewScalar(dx)), Y: p.Y.Add(NewScalar(dy))}
}

// Vector has the same representation as Point but a distinct semantic
// type: it denotes a displacement or direction rather than a position.
// Exposed at API boundaries where the distinction matters (e.g. a
// presence cursor's velocity vs. its location).
type Vector struct {
	X, Y Scalar
}

// NewVector creates a Vector from binary-float components.
func NewVector(x, y float64) Vector {
	return Vector{X: NewScalar(x), Y: NewScalar(y)}
}

// AsVector reinterprets a Point as a Vector (position -> displacement
// from the origin).
func (p Point) AsVector() Vector { return Vector{X: p.X, Y: p.Y} }

// AsPoint reinterprets a Vector as a Point (displacement from the
// origin -> absolute position).
func (v Vector) AsPoint() Point { return Point{X: v.X, Y: v.Y} }
