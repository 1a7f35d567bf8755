package geometry

// Value types for the crop selection. Coordinates are float64 because page
// coordinates arrive pre-divided by an external display scale and are not
// generally integral.

// Point is a position in some pixel coordinate space.
type Point struct {
	X float64
	Y float64
}

// Sub returns the component-wise difference a - b.
func (a Point) Sub(b Point) Point { return Point{a.X - b.X, a.Y - b.Y} }

// Add returns the component-wise sum a + b.
func (a Point) Add(b Point) Point { return Point{a.X + b.X, a.Y + b.Y} }

// Size holds pixel dimensions. Displayed and native image sizes both use it.
type Size struct {
	Width  float64
	Height float64
}

// IsZero reports whether either dimension is non-positive.
func (s Size) IsZero() bool { return s.Width <= 0 || s.Height <= 0 }

// Rect is an axis-aligned rectangle with origin and extent.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Full returns a rectangle covering bounds entirely.
func Full(bounds Size) Rect { return Rect{0, 0, bounds.Width, bounds.Height} }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// IsZero reports whether the rectangle has no extent.
func (r Rect) IsZero() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether p lies inside r (right/bottom edges exclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X < r.Right() && p.Y < r.Bottom()
}

// Within reports whether r is fully contained in bounds and each dimension is
// at least min.
func (r Rect) Within(bounds Size, min float64) bool {
	return r.X >= 0 && r.Y >= 0 &&
		r.Right() <= bounds.Width && r.Bottom() <= bounds.Height &&
		r.Width >= min && r.Height >= min
}

// Clamp limits v into [lo, hi]. When hi < lo the lower bound wins, so a
// selection larger than its bounds collapses toward the origin instead of
// producing a negative range.
func Clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampRect constrains r into bounds keeping each dimension at least min.
// Size is clamped before position so the position range is computed from the
// final extent.
func ClampRect(r Rect, bounds Size, min float64) Rect {
	r.Width = Clamp(r.Width, min, bounds.Width)
	r.Height = Clamp(r.Height, min, bounds.Height)
	r.X = Clamp(r.X, 0, bounds.Width-r.Width)
	r.Y = Clamp(r.Y, 0, bounds.Height-r.Height)
	return r
}
