package source

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/vova616/screenshot"

	"github.com/quizforge/crop-tool-go/domain/geometry"
	"github.com/quizforge/crop-tool-go/domain/raster"
)

// Loaded is a decoded source image ready for cropping: the native-resolution
// pixels plus their dimensions and a short origin label.
type Loaded struct {
	Image  image.Image
	Native geometry.Size
	Label  string
}

func loaded(img image.Image, label string) Loaded {
	b := img.Bounds()
	return Loaded{
		Image:  img,
		Native: geometry.Size{Width: float64(b.Dx()), Height: float64(b.Dy())},
		Label:  label,
	}
}

// FromFile opens an image from disk, applying EXIF auto-orientation so the
// displayed geometry matches what the user sees.
func FromFile(path string) (Loaded, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return Loaded{}, fmt.Errorf("source: open %s: %w", path, err)
	}
	return loaded(img, filepath.Base(path)), nil
}

// FromImage wraps an already decoded image as a crop source.
func FromImage(img image.Image, label string) Loaded {
	return loaded(img, label)
}

// FromScreen captures the current screen as a crop source.
func FromScreen() (Loaded, error) {
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return Loaded{}, fmt.Errorf("source: screen capture: %w", err)
	}
	return loaded(img, "screen"), nil
}

// FromResult re-enters a finished crop as a new source image ("recrop").
func FromResult(res raster.CroppedResult) (Loaded, error) {
	img, err := raster.DecodeDataURL(res.DataURL)
	if err != nil {
		return Loaded{}, fmt.Errorf("source: recrop: %w", err)
	}
	return loaded(img, "recrop of "+res.Label), nil
}

// FitDisplayed computes the on-screen size for a native image inside the
// maxW x maxH viewing area, preserving aspect ratio and never upscaling.
func FitDisplayed(native geometry.Size, maxW, maxH float64) geometry.Size {
	if native.IsZero() || maxW < 1 || maxH < 1 {
		return geometry.Size{}
	}
	if native.Width <= maxW && native.Height <= maxH {
		return native
	}
	ratio := maxW / native.Width
	if r := maxH / native.Height; r < ratio {
		ratio = r
	}
	w := native.Width * ratio
	h := native.Height * ratio
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return geometry.Size{Width: w, Height: h}
}
