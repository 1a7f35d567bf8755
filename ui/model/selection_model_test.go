package model

import (
	"testing"

	"github.com/quizforge/crop-tool-go/domain/crop"
	"github.com/quizforge/crop-tool-go/domain/geometry"
)

func TestSelectionModel_LoadSeedsFullImage(t *testing.T) {
	m := NewSelectionModel()
	m.Load(geometry.Size{Width: 400, Height: 300}, geometry.Size{Width: 1200, Height: 900})
	r := m.Rect()
	if r.X != 0 || r.Y != 0 || r.Width != 400 || r.Height != 300 {
		t.Fatalf("expected full-image seed, got %+v", r)
	}
	if !m.Loaded() {
		t.Fatalf("expected loaded after Load")
	}
}

func TestSelectionModel_SetRectReclamps(t *testing.T) {
	m := NewSelectionModel()
	bounds := geometry.Size{Width: 400, Height: 300}
	m.Load(bounds, bounds)
	m.SetRect(geometry.Rect{X: 390, Y: 290, Width: 100, Height: 100})
	if !m.Rect().Within(bounds, crop.MinSelectionSize) {
		t.Fatalf("stored rect violates invariants: %+v", m.Rect())
	}
}

func TestSelectionModel_InvalidUpdateKeepsLastGood(t *testing.T) {
	m := NewSelectionModel()
	m.Load(geometry.Size{Width: 400, Height: 300}, geometry.Size{Width: 400, Height: 300})
	good := geometry.Rect{X: 10, Y: 10, Width: 100, Height: 100}
	m.SetRect(good)
	m.SetRect(geometry.Rect{})
	if m.Rect() != good {
		t.Fatalf("zero rect replaced last known-good: %+v", m.Rect())
	}
}

func TestSelectionModel_ReseedReplacesRect(t *testing.T) {
	m := NewSelectionModel()
	m.Load(geometry.Size{Width: 200, Height: 200}, geometry.Size{Width: 200, Height: 200})
	m.SetRect(geometry.Rect{X: 50, Y: 50, Width: 60, Height: 60})
	m.Reseed()
	if m.Rect() != geometry.Full(geometry.Size{Width: 200, Height: 200}) {
		t.Fatalf("reseed did not restore full image: %+v", m.Rect())
	}
}

func TestSelectionModel_NilAndUnloadedSafe(t *testing.T) {
	var m *SelectionModel
	m.SetRect(geometry.Rect{X: 1, Y: 1, Width: 40, Height: 40})
	if m.Loaded() || !m.Rect().IsZero() {
		t.Fatalf("nil model should be inert")
	}
	m2 := NewSelectionModel()
	m2.SetRect(geometry.Rect{X: 1, Y: 1, Width: 40, Height: 40})
	if !m2.Rect().IsZero() {
		t.Fatalf("unloaded model accepted a rect")
	}
}
