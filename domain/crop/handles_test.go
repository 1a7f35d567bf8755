package crop

import (
	"testing"

	"github.com/quizforge/crop-tool-go/domain/geometry"
)

func TestHandleAt_CornersEdgesAndMove(t *testing.T) {
	r := geometry.Rect{X: 100, Y: 100, Width: 200, Height: 100}
	cases := []struct {
		p    geometry.Point
		want HandleMode
	}{
		{geometry.Point{X: 100, Y: 100}, HandleNW},
		{geometry.Point{X: 300, Y: 100}, HandleNE},
		{geometry.Point{X: 100, Y: 200}, HandleSW},
		{geometry.Point{X: 303, Y: 203}, HandleSE},
		{geometry.Point{X: 200, Y: 100}, HandleN},
		{geometry.Point{X: 200, Y: 200}, HandleS},
		{geometry.Point{X: 100, Y: 150}, HandleW},
		{geometry.Point{X: 300, Y: 150}, HandleE},
		{geometry.Point{X: 200, Y: 150}, HandleMove},
		{geometry.Point{X: 10, Y: 10}, HandleNone},
	}
	for _, tc := range cases {
		if got := HandleAt(r, tc.p, DefaultHandleTolerance); got != tc.want {
			t.Fatalf("HandleAt(%+v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestHandleAt_CornerWinsOverEdge(t *testing.T) {
	r := geometry.Rect{X: 0, Y: 0, Width: 100, Height: 100}
	// Inside both the top-edge and left-edge zones.
	if got := HandleAt(r, geometry.Point{X: 5, Y: 5}, 8); got != HandleNW {
		t.Fatalf("expected nw at corner overlap, got %v", got)
	}
}

func TestHandleAt_OutsideToleranceIsNone(t *testing.T) {
	r := geometry.Rect{X: 100, Y: 100, Width: 50, Height: 50}
	if got := HandleAt(r, geometry.Point{X: 100, Y: 80}, 8); got != HandleNone {
		t.Fatalf("expected none above the rect, got %v", got)
	}
}
