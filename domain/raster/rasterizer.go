package raster

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math"

	"github.com/disintegration/imaging"

	"github.com/quizforge/crop-tool-go/domain/geometry"
)

// Rasterization errors. Both are recoverable: the caller keeps its current
// selection and may retry.
var (
	// ErrInputMissing signals a nil source image or an empty selection.
	ErrInputMissing = errors.New("raster: missing image or selection")
	// ErrSurfaceUnavailable signals that no valid output raster could be
	// allocated for the given sizes.
	ErrSurfaceUnavailable = errors.New("raster: output surface unavailable")
)

// CroppedResult is one finished crop: an encoded payload ready for embedding
// plus a label derived from the producing session.
type CroppedResult struct {
	DataURL string
	Label   string
}

// Rasterize maps rect from displayed-image coordinates into the source's
// native resolution and returns a new image holding exactly that region.
//
// The selection is scaled by nativeSize/displayedSize per axis. When the
// native-space rectangle lands on whole pixels the region is copied 1:1;
// otherwise the enclosing pixel rectangle is cropped and resampled with
// Lanczos to the rounded target size.
func Rasterize(rect geometry.Rect, displayed, native geometry.Size, src image.Image) (image.Image, error) {
	if src == nil || rect.IsZero() {
		return nil, ErrInputMissing
	}
	if displayed.IsZero() || native.IsZero() {
		return nil, ErrSurfaceUnavailable
	}
	scaleX := native.Width / displayed.Width
	scaleY := native.Height / displayed.Height

	nx := rect.X * scaleX
	ny := rect.Y * scaleY
	nw := rect.Width * scaleX
	nh := rect.Height * scaleY

	outW := int(math.Round(nw))
	outH := int(math.Round(nh))
	if outW < 1 || outH < 1 {
		return nil, ErrSurfaceUnavailable
	}
	natW := int(math.Round(native.Width))
	natH := int(math.Round(native.Height))
	if outW > natW {
		outW = natW
	}
	if outH > natH {
		outH = natH
	}

	if integral(nx) && integral(ny) && integral(nw) && integral(nh) {
		x0 := clampInt(int(math.Round(nx)), 0, natW-outW)
		y0 := clampInt(int(math.Round(ny)), 0, natH-outH)
		out := imaging.Crop(src, image.Rect(x0, y0, x0+outW, y0+outH))
		if out.Bounds().Dx() != outW || out.Bounds().Dy() != outH {
			return nil, fmt.Errorf("%w: crop produced %v for %dx%d target",
				ErrSurfaceUnavailable, out.Bounds(), outW, outH)
		}
		return out, nil
	}

	// Fractional native rect: crop the enclosing whole-pixel region and
	// resample it down to the rounded target.
	x0 := clampInt(int(math.Floor(nx)), 0, natW-1)
	y0 := clampInt(int(math.Floor(ny)), 0, natH-1)
	x1 := clampInt(int(math.Ceil(nx+nw)), x0+1, natW)
	y1 := clampInt(int(math.Ceil(ny+nh)), y0+1, natH)
	region := imaging.Crop(src, image.Rect(x0, y0, x1, y1))
	out := imaging.Resize(region, outW, outH, imaging.Lanczos)
	if out.Bounds().Dx() != outW || out.Bounds().Dy() != outH {
		return nil, fmt.Errorf("%w: resample produced %v for %dx%d target",
			ErrSurfaceUnavailable, out.Bounds(), outW, outH)
	}
	return out, nil
}

const integralEps = 1e-6

func integral(v float64) bool {
	return math.Abs(v-math.Round(v)) < integralEps
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Rasterizer wraps Rasterize with encoding and session labelling. Not
// concurrency-safe; it lives on the UI thread like the rest of the crop flow.
type Rasterizer struct {
	logger  *slog.Logger
	quality int
	seq     int
}

// NewRasterizer returns a rasterizer encoding JPEG at the given quality.
func NewRasterizer(quality int, logger *slog.Logger) *Rasterizer {
	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	return &Rasterizer{logger: logger, quality: quality}
}

// Crop rasterizes rect against src and encodes the result as a JPEG data URL.
// On failure no result is produced and the caller's selection stays intact.
func (rz *Rasterizer) Crop(rect geometry.Rect, displayed, native geometry.Size, src image.Image) (CroppedResult, error) {
	if rz == nil {
		return CroppedResult{}, ErrSurfaceUnavailable
	}
	out, err := Rasterize(rect, displayed, native, src)
	if err != nil {
		if rz.logger != nil {
			rz.logger.Error("rasterize failed", "error", err, "rect", fmt.Sprintf("%+v", rect))
		}
		return CroppedResult{}, err
	}
	url, err := EncodeDataURL(out, rz.quality)
	if err != nil {
		if rz.logger != nil {
			rz.logger.Error("encode failed", "error", err)
		}
		return CroppedResult{}, err
	}
	rz.seq++
	b := out.Bounds()
	label := fmt.Sprintf("crop %d (%dx%d)", rz.seq, b.Dx(), b.Dy())
	if rz.logger != nil {
		rz.logger.Info("crop produced", "label", label, "bytes", len(url))
	}
	return CroppedResult{DataURL: url, Label: label}, nil
}
