package kinetic

// Image is a rectangular placeholder for an externally resolved
// asset. Src is an opaque identifier; this engine never decodes or
// touches pixel data.
type Image struct {
	Src           string
	Width, Height Scalar
	Origin        Point
}

// NewImageShape creates a Shape wrapping an Image.
func NewImageShape(src string, x, y, width, height float64) Shape {
	img := Image{
		Src:    src,
		Width:  NewScalar(width),
		Height: NewScalar(height),
		Origin: NewPoint(x, y),
	}
	return &img
}

// Kind implements Shape.
func (i *Image) Kind() ShapeKind { return ShapeKindImage }

// Translate implements Shape.
func (i *Image) Translate(dx, dy float64) {
	i.Origin = i.Origin.Translate(dx, dy)
}

// BoundingBox implements Shape.
func (i *Image) BoundingBox() Rect {
	return Rect{Origin: i.Origin, Width: i.Width, Height: i.Height}
}

// ContainsPoint implements Shape by delegating to the bounding box.
func (i *Image) ContainsPoint(p Point) bool {
	return i.BoundingBox().Contains(p)
}
