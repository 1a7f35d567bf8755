package view

import (
	"image"

	"github.com/quizforge/crop-tool-go/domain/geometry"
	"github.com/quizforge/crop-tool-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// PointerHandlers carries the callbacks a crop surface feeds with local
// pointer coordinates.
type PointerHandlers struct {
	Down func(geometry.Point)
	Move func(geometry.Point)
	Up   func()
}

// CropSurface displays the composited selection overlay and forwards pointer
// gestures.
type CropSurface interface {
	ShowFrame(displayed image.Image, sel geometry.Rect)
}

type cropSurface struct {
	label     *LabelWidget
	prevPhoto *Img // last Tk photo image instance, replaced per frame
}

// NewCropSurface creates the crop display label at the given grid row and
// binds the drag gesture to handlers.
func NewCropSurface(row int, h PointerHandlers) CropSurface {
	placeholder := image.NewRGBA(image.Rect(0, 0, 400, 260))
	photo := NewPhoto(Data(images.EncodePNG(placeholder)))
	label := Label(Image(photo), Borderwidth(1), Relief("sunken"))
	Grid(label, Row(row), Column(0), Columnspan(5), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	v := &cropSurface{label: label, prevPhoto: photo}

	Bind(label, "<ButtonPress-1>", Command(func(e *Event) {
		if h.Down != nil {
			h.Down(geometry.Point{X: float64(e.X), Y: float64(e.Y)})
		}
	}))
	Bind(label, "<B1-Motion>", Command(func(e *Event) {
		if h.Move != nil {
			h.Move(geometry.Point{X: float64(e.X), Y: float64(e.Y)})
		}
	}))
	Bind(label, "<ButtonRelease-1>", Command(func() {
		if h.Up != nil {
			h.Up()
		}
	}))
	return v
}

// ShowFrame composites the overlay for sel over displayed and swaps it into
// the label, disposing the previous photo to avoid accumulating pixel data.
func (v *cropSurface) ShowFrame(displayed image.Image, sel geometry.Rect) {
	if v == nil || v.label == nil || displayed == nil {
		return
	}
	frame := images.RenderOverlay(displayed, sel)
	if frame == nil {
		return
	}
	pngBytes := images.EncodePNG(frame)
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	photo := NewPhoto(Data(pngBytes))
	v.prevPhoto = photo
	v.label.Configure(Image(photo))
}
