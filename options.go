package kinetic

// EngineOption configures an Engine during construction.
// Use functional options to customize the spatial index universe
// without changing New's signature.
//
// Example:
//
//	eng := kinetic.New(kinetic.WithBounds(kinetic.NewRect(0, 0, 2000, 2000)),
//	    kinetic.WithCapacity(8))
type EngineOption func(*engineOptions)

// engineOptions holds optional configuration for Engine construction.
type engineOptions struct {
	bounds   Rect
	capacity int
}

// defaultEngineOptions returns the reference configuration: a
// 10000x10000 universe centered on the origin, quadtree node capacity 4.
func defaultEngineOptions() engineOptions {
	return engineOptions{
		bounds:   NewRect(-5000, -5000, 10000, 10000),
		capacity: 4,
	}
}

// WithBounds sets the universe rect that the quadtree partitions.
// Elements outside these bounds are never indexed and so never appear
// in QuerySpatial results.
func WithBounds(bounds Rect) EngineOption {
	return func(o *engineOptions) {
		o.bounds = bounds
	}
}

// WithCapacity sets the maximum number of element ids a quadtree node
// holds before it subdivides. Non-positive values are ignored and the
// default of 4 is kept.
func WithCapacity(capacity int) EngineOption {
	return func(o *engineOptions) {
		if capacity > 0 {
			o.capacity = capacity
		}
	}
}
