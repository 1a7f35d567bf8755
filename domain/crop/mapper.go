package crop

import (
	"github.com/quizforge/crop-tool-go/domain/geometry"
)

// ScaleFunc corrects one page coordinate for an external viewport scale. The
// embedding application injects it; the mapper never assumes a 1:1 page to
// display pixel ratio.
type ScaleFunc func(float64) float64

// BoundsFunc returns the crop container's bounding rectangle in page
// coordinates, or nil while the container is not laid out yet.
type BoundsFunc func() *geometry.Rect

// PointerMapper converts raw pointer and touch positions from page space into
// the container's local coordinate space.
type PointerMapper struct {
	scale  ScaleFunc
	bounds BoundsFunc
}

// NewPointerMapper builds a mapper from the injected collaborators. A nil
// scale means identity.
func NewPointerMapper(scale ScaleFunc, bounds BoundsFunc) *PointerMapper {
	if scale == nil {
		scale = func(v float64) float64 { return v }
	}
	return &PointerMapper{scale: scale, bounds: bounds}
}

// Map converts a single pointer position. Without container bounds it returns
// the origin rather than failing, matching the not-yet-mounted case.
func (m *PointerMapper) Map(page geometry.Point) geometry.Point {
	if m == nil || m.bounds == nil {
		return geometry.Point{}
	}
	box := m.bounds()
	if box == nil {
		return geometry.Point{}
	}
	return geometry.Point{
		X: m.scale(page.X) - box.X,
		Y: m.scale(page.Y) - box.Y,
	}
}

// MapTouch converts a multi-touch event using its first touch point. An empty
// slice maps to the origin.
func (m *PointerMapper) MapTouch(touches []geometry.Point) geometry.Point {
	if len(touches) == 0 {
		return geometry.Point{}
	}
	return m.Map(touches[0])
}
