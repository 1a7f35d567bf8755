package crop

import (
	"github.com/quizforge/crop-tool-go/domain/geometry"
)

// DefaultHandleTolerance is the half-width, in displayed pixels, of the hit
// zone around each edge and corner.
const DefaultHandleTolerance = 8.0

// HandleAt maps a local pointer position to the handle it falls on. Corners
// win over edges, edges over the move surface; a position outside the
// rectangle and all hit zones yields HandleNone.
func HandleAt(r geometry.Rect, p geometry.Point, tol float64) HandleMode {
	if tol <= 0 {
		tol = DefaultHandleTolerance
	}
	nearLeft := near(p.X, r.X, tol)
	nearRight := near(p.X, r.Right(), tol)
	nearTop := near(p.Y, r.Y, tol)
	nearBottom := near(p.Y, r.Bottom(), tol)
	withinX := p.X >= r.X-tol && p.X <= r.Right()+tol
	withinY := p.Y >= r.Y-tol && p.Y <= r.Bottom()+tol

	switch {
	case nearTop && nearLeft:
		return HandleNW
	case nearTop && nearRight:
		return HandleNE
	case nearBottom && nearLeft:
		return HandleSW
	case nearBottom && nearRight:
		return HandleSE
	case nearTop && withinX:
		return HandleN
	case nearBottom && withinX:
		return HandleS
	case nearLeft && withinY:
		return HandleW
	case nearRight && withinY:
		return HandleE
	case r.Contains(p):
		return HandleMove
	default:
		return HandleNone
	}
}

func near(v, target, tol float64) bool {
	d := v - target
	if d < 0 {
		d = -d
	}
	return d <= tol
}
