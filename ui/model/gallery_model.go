package model

import (
	"github.com/quizforge/crop-tool-go/domain/raster"
)

// GalleryModel accumulates finished crops for the session. Results are
// immutable once added; the model only grows or is cleared wholesale.
// UI-thread only, like SelectionModel.
type GalleryModel struct {
	items []raster.CroppedResult
}

func NewGalleryModel() *GalleryModel { return &GalleryModel{} }

// Add appends a finished crop.
func (m *GalleryModel) Add(res raster.CroppedResult) {
	if m == nil || res.DataURL == "" {
		return
	}
	m.items = append(m.items, res)
}

// Items returns a copy of the collected results, oldest first.
func (m *GalleryModel) Items() []raster.CroppedResult {
	if m == nil {
		return nil
	}
	out := make([]raster.CroppedResult, len(m.items))
	copy(out, m.items)
	return out
}

// Len returns the number of collected crops.
func (m *GalleryModel) Len() int {
	if m == nil {
		return 0
	}
	return len(m.items)
}

// Latest returns the most recent crop and whether one exists.
func (m *GalleryModel) Latest() (raster.CroppedResult, bool) {
	if m == nil || len(m.items) == 0 {
		return raster.CroppedResult{}, false
	}
	return m.items[len(m.items)-1], true
}

// Clear drops all collected crops.
func (m *GalleryModel) Clear() {
	if m == nil {
		return
	}
	m.items = nil
}
