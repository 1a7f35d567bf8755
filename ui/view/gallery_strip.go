package view

import (
	"fmt"
	"image"

	"github.com/quizforge/crop-tool-go/domain/raster"
	"github.com/quizforge/crop-tool-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

const (
	thumbW = 160
	thumbH = 120
)

// GalleryStrip shows the most recent crop as a thumbnail with a running
// count of collected results.
type GalleryStrip interface {
	AppendCrop(res raster.CroppedResult)
	Reset()
}

type galleryStrip struct {
	thumbLabel *LabelWidget
	countLabel *LabelWidget
	prevPhoto  *Img
	count      int
}

// NewGalleryStrip creates the thumbnail and counter labels at the given row.
func NewGalleryStrip(row int) GalleryStrip {
	count := Label(Txt("Gallery: empty"), Anchor("w"))
	Grid(count, Row(row), Column(0), Columnspan(2), Sticky("w"), Padx("0.4m"), Pady("0.2m"))
	thumb := Label(Borderwidth(1), Relief("groove"))
	Grid(thumb, Row(row), Column(2), Columnspan(3), Sticky("e"), Padx("0.4m"), Pady("0.2m"))
	return &galleryStrip{thumbLabel: thumb, countLabel: count}
}

// AppendCrop updates the counter and replaces the thumbnail with the new
// result. Decode failures leave the previous thumbnail in place.
func (v *galleryStrip) AppendCrop(res raster.CroppedResult) {
	if v == nil {
		return
	}
	v.count++
	if v.countLabel != nil {
		v.countLabel.Configure(Txt(fmt.Sprintf("Gallery: %d (%s)", v.count, res.Label)))
	}
	img, err := raster.DecodeDataURL(res.DataURL)
	if err != nil || v.thumbLabel == nil {
		return
	}
	scaled := images.ScaleToFit(img, thumbW, thumbH)
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(images.EncodePNG(scaled)))
	v.thumbLabel.Configure(Image(v.prevPhoto))
}

// Reset clears the counter and thumbnail.
func (v *galleryStrip) Reset() {
	if v == nil {
		return
	}
	v.count = 0
	if v.countLabel != nil {
		v.countLabel.Configure(Txt("Gallery: empty"))
	}
	if v.thumbLabel == nil {
		return
	}
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	blank := image.NewRGBA(image.Rect(0, 0, thumbW, thumbH))
	v.prevPhoto = NewPhoto(Data(images.EncodePNG(blank)))
	v.thumbLabel.Configure(Image(v.prevPhoto))
}
