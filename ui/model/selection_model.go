package model

import (
	"github.com/quizforge/crop-tool-go/domain/crop"
	"github.com/quizforge/crop-tool-go/domain/geometry"
)

// SelectionModel owns the mutable current-rectangle cell for the active crop
// session, plus the displayed and native sizes of the loaded image.
// No synchronization needed: updates occur on the UI thread.
type SelectionModel struct {
	displayed geometry.Size
	native    geometry.Size
	rect      geometry.Rect
	loaded    bool
}

func NewSelectionModel() *SelectionModel { return &SelectionModel{} }

// Load installs the sizes for a newly loaded image and seeds the selection to
// cover it fully.
func (m *SelectionModel) Load(displayed, native geometry.Size) {
	if m == nil || displayed.IsZero() || native.IsZero() {
		return
	}
	m.displayed = displayed
	m.native = native
	m.loaded = true
	m.Reseed()
}

// Reseed replaces the selection with the full displayed image. A recrop
// session starts here.
func (m *SelectionModel) Reseed() {
	if m == nil || !m.loaded {
		return
	}
	m.rect = geometry.Full(m.displayed)
}

// SetRect publishes a new selection. The rectangle is re-clamped before it is
// stored, so the containment invariant holds even against a misbehaving
// caller; an invalid update falls back to the last known-good rectangle.
func (m *SelectionModel) SetRect(r geometry.Rect) {
	if m == nil || !m.loaded {
		return
	}
	if r.IsZero() {
		return
	}
	m.rect = geometry.ClampRect(r, m.displayed, crop.MinSelectionSize)
}

// Rect returns the current selection rectangle.
func (m *SelectionModel) Rect() geometry.Rect {
	if m == nil {
		return geometry.Rect{}
	}
	return m.rect
}

// Displayed returns the displayed-image dimensions, the clamp domain.
func (m *SelectionModel) Displayed() geometry.Size {
	if m == nil {
		return geometry.Size{}
	}
	return m.displayed
}

// Native returns the source-resolution dimensions used at rasterization.
func (m *SelectionModel) Native() geometry.Size {
	if m == nil {
		return geometry.Size{}
	}
	return m.native
}

// Loaded reports whether an image is installed.
func (m *SelectionModel) Loaded() bool { return m != nil && m.loaded }
