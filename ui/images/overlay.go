package images

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/quizforge/crop-tool-go/domain/geometry"
)

// Selection overlay compositor. Pure pixel work: the view pushes the result
// into a Tk photo label, nothing here touches widgets.

const (
	handleSize  = 8 // drawn half-extent of each square handle affordance
	borderShade = 0xFF
)

var (
	dimColor    = color.NRGBA{R: 0, G: 0, B: 0, A: 115}
	handleFill  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	borderColor = color.NRGBA{R: borderShade, G: borderShade, B: borderShade, A: 200}
)

// RenderOverlay composites the displayed image with darkened exclusion zones
// around sel, a selection border and the eight resize handles. A fresh RGBA
// is allocated each call; base is never modified.
func RenderOverlay(base image.Image, sel geometry.Rect) *image.RGBA {
	if base == nil {
		return nil
	}
	b := base.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), base, b.Min, draw.Src)

	r := rectToPixels(sel, out.Bounds())
	dim := image.NewUniform(dimColor)
	// Four exclusion bands: above, below, left, right of the selection.
	draw.Draw(out, image.Rect(0, 0, out.Bounds().Dx(), r.Min.Y), dim, image.Point{}, draw.Over)
	draw.Draw(out, image.Rect(0, r.Max.Y, out.Bounds().Dx(), out.Bounds().Dy()), dim, image.Point{}, draw.Over)
	draw.Draw(out, image.Rect(0, r.Min.Y, r.Min.X, r.Max.Y), dim, image.Point{}, draw.Over)
	draw.Draw(out, image.Rect(r.Max.X, r.Min.Y, out.Bounds().Dx(), r.Max.Y), dim, image.Point{}, draw.Over)

	drawBorder(out, r)
	for _, c := range handleCenters(r) {
		drawHandle(out, c)
	}
	return out
}

// rectToPixels converts the float selection into an integer pixel rectangle
// clipped to the frame.
func rectToPixels(sel geometry.Rect, frame image.Rectangle) image.Rectangle {
	r := image.Rect(
		int(math.Round(sel.X)),
		int(math.Round(sel.Y)),
		int(math.Round(sel.Right())),
		int(math.Round(sel.Bottom())),
	)
	return r.Intersect(frame)
}

func drawBorder(img *image.RGBA, r image.Rectangle) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.SetRGBA(x, r.Min.Y, rgba(borderColor))
		img.SetRGBA(x, r.Max.Y-1, rgba(borderColor))
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.SetRGBA(r.Min.X, y, rgba(borderColor))
		img.SetRGBA(r.Max.X-1, y, rgba(borderColor))
	}
}

// handleCenters returns the eight resize handle positions: corners first,
// then edge midpoints.
func handleCenters(r image.Rectangle) []image.Point {
	midX := (r.Min.X + r.Max.X) / 2
	midY := (r.Min.Y + r.Max.Y) / 2
	return []image.Point{
		{r.Min.X, r.Min.Y}, {r.Max.X, r.Min.Y}, {r.Min.X, r.Max.Y}, {r.Max.X, r.Max.Y},
		{midX, r.Min.Y}, {midX, r.Max.Y}, {r.Min.X, midY}, {r.Max.X, midY},
	}
}

func drawHandle(img *image.RGBA, c image.Point) {
	half := handleSize / 2
	box := image.Rect(c.X-half, c.Y-half, c.X+half, c.Y+half).Intersect(img.Bounds())
	draw.Draw(img, box, image.NewUniform(handleFill), image.Point{}, draw.Src)
}

func rgba(c color.NRGBA) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
