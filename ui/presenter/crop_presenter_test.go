package presenter

import (
	"image"
	"image/color"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/quizforge/crop-tool-go/config"
	"github.com/quizforge/crop-tool-go/domain/crop"
	"github.com/quizforge/crop-tool-go/domain/geometry"
	"github.com/quizforge/crop-tool-go/domain/raster"
	"github.com/quizforge/crop-tool-go/domain/source"
	"github.com/quizforge/crop-tool-go/ui/model"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

type mockSelectionView struct {
	frames   int
	lastW    int
	lastH    int
	rects    []geometry.Rect
	state    string
	editable []bool
}

func (v *mockSelectionView) ShowFrame(img image.Image, sel geometry.Rect) {
	v.frames++
	b := img.Bounds()
	v.lastW, v.lastH = b.Dx(), b.Dy()
	v.rects = append(v.rects, sel)
}
func (v *mockSelectionView) SetStateLabel(s string) { v.state = s }

func (v *mockSelectionView) SetConfigEditable(enabled bool) { v.editable = append(v.editable, enabled) }

type mockGalleryView struct{ appended []raster.CroppedResult }

func (v *mockGalleryView) AppendCrop(res raster.CroppedResult) { v.appended = append(v.appended, res) }

func testImage(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x % 255), G: uint8(y % 255), B: 7, A: 255})
		}
	}
	return img
}

func newTestPresenter(t *testing.T) (*CropPresenter, *mockSelectionView, *mockGalleryView, *model.GalleryModel) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.ViewWidth, cfg.ViewHeight = 400, 300
	cfgPath := filepath.Join(t.TempDir(), "crop.json")
	sel := model.NewSelectionModel()
	gallery := model.NewGalleryModel()
	engine := crop.NewDragEngine(geometry.Size{}, discardLogger)
	// container at page origin, identity scale
	box := geometry.Rect{X: 0, Y: 0, Width: 400, Height: 300}
	mapper := crop.NewPointerMapper(nil, func() *geometry.Rect { return &box })
	rz := raster.NewRasterizer(95, discardLogger)
	view := &mockSelectionView{}
	gview := &mockGalleryView{}
	p := NewCropPresenter(cfg, cfgPath, sel, gallery, engine, mapper, rz, view, gview, discardLogger)
	return p, view, gview, gallery
}

func load(t *testing.T, p *CropPresenter) {
	t.Helper()
	p.LoadSource(source.Loaded{
		Image:  testImage(1200, 900),
		Native: geometry.Size{Width: 1200, Height: 900},
		Label:  "page.png",
	})
}

func TestCropPresenter_LoadFitsAndSeeds(t *testing.T) {
	p, view, _, _ := newTestPresenter(t)
	load(t, p)
	if view.frames == 0 {
		t.Fatalf("load did not render a frame")
	}
	// 1200x900 into a 400x300 viewport -> 400x300 displayed.
	if view.lastW != 400 || view.lastH != 300 {
		t.Fatalf("unexpected displayed size %dx%d", view.lastW, view.lastH)
	}
	last := view.rects[len(view.rects)-1]
	if last != geometry.Full(geometry.Size{Width: 400, Height: 300}) {
		t.Fatalf("selection not seeded to full image: %+v", last)
	}
}

func TestCropPresenter_DragFlowPublishesClampedRects(t *testing.T) {
	p, view, _, _ := newTestPresenter(t)
	load(t, p)
	bounds := geometry.Size{Width: 400, Height: 300}

	// Grab the se corner of the full-image seed and drag inwards.
	p.PointerDown(geometry.Point{X: 400, Y: 300})
	p.PointerMove(geometry.Point{X: 250, Y: 200})
	p.PointerUp()

	last := view.rects[len(view.rects)-1]
	if last.Width != 250 || last.Height != 200 {
		t.Fatalf("unexpected selection after se drag: %+v", last)
	}
	if !last.Within(bounds, crop.MinSelectionSize) {
		t.Fatalf("published rect breaks invariants: %+v", last)
	}
	if view.state != "Selection ready" {
		t.Fatalf("unexpected state label: %q", view.state)
	}
}

func TestCropPresenter_MissHandleDoesNotDrag(t *testing.T) {
	p, view, _, _ := newTestPresenter(t)
	load(t, p)
	frames := view.frames
	// Selection covers the full image, so a point far outside is impossible;
	// shrink first, then press outside the selection.
	p.PointerDown(geometry.Point{X: 400, Y: 300})
	p.PointerMove(geometry.Point{X: 200, Y: 150})
	p.PointerUp()
	frames = view.frames
	p.PointerDown(geometry.Point{X: 380, Y: 280})
	p.PointerMove(geometry.Point{X: 100, Y: 100})
	if view.frames != frames {
		t.Fatalf("move without a handle press rendered %d extra frames", view.frames-frames)
	}
}

func TestCropPresenter_ConfirmProducesNativeCrop(t *testing.T) {
	p, _, gview, gallery := newTestPresenter(t)
	load(t, p)
	// Shrink to a quarter: displayed 400x300 -> native 1200x900 is 3x.
	p.PointerDown(geometry.Point{X: 400, Y: 300})
	p.PointerMove(geometry.Point{X: 100, Y: 100})
	p.PointerUp()
	p.Confirm()

	if gallery.Len() != 1 || len(gview.appended) != 1 {
		t.Fatalf("confirm did not land in gallery: len=%d appended=%d", gallery.Len(), len(gview.appended))
	}
	res, _ := gallery.Latest()
	// 100x100 displayed at 3x -> 300x300 native output.
	if res.Label != "crop 1 (300x300)" {
		t.Fatalf("unexpected label: %q", res.Label)
	}
}

func TestCropPresenter_ConfirmWithoutImageKeepsState(t *testing.T) {
	p, view, _, gallery := newTestPresenter(t)
	p.Confirm()
	if gallery.Len() != 0 {
		t.Fatalf("crop without source must not produce output")
	}
	if view.state == "" {
		// No source loaded: presenter stays inert, no label required.
		return
	}
}

func TestCropPresenter_RecropReentersLatestCrop(t *testing.T) {
	p, view, _, _ := newTestPresenter(t)
	load(t, p)
	p.PointerDown(geometry.Point{X: 400, Y: 300})
	p.PointerMove(geometry.Point{X: 100, Y: 100})
	p.PointerUp()
	p.Confirm()

	p.Recrop()
	// 300x300 native fits the 400x300 viewport without scaling.
	if view.lastW != 300 || view.lastH != 300 {
		t.Fatalf("recrop source not loaded: %dx%d", view.lastW, view.lastH)
	}
	last := view.rects[len(view.rects)-1]
	if last != geometry.Full(geometry.Size{Width: 300, Height: 300}) {
		t.Fatalf("recrop did not reseed: %+v", last)
	}
}

func TestCropPresenter_ReseedRestoresFullImage(t *testing.T) {
	p, view, _, _ := newTestPresenter(t)
	load(t, p)
	p.PointerDown(geometry.Point{X: 400, Y: 300})
	p.PointerMove(geometry.Point{X: 150, Y: 150})
	p.PointerUp()
	p.Reseed()
	last := view.rects[len(view.rects)-1]
	if last != geometry.Full(geometry.Size{Width: 400, Height: 300}) {
		t.Fatalf("reseed failed: %+v", last)
	}
}

func TestCropPresenter_PersistedSelectionRestoredOnFirstLoadOnly(t *testing.T) {
	p, view, _, _ := newTestPresenter(t)
	p.cfg.SelectionX, p.cfg.SelectionY = 40, 30
	p.cfg.SelectionW, p.cfg.SelectionH = 120, 90

	load(t, p)
	want := geometry.Rect{X: 40, Y: 30, Width: 120, Height: 90}
	if last := view.rects[len(view.rects)-1]; last != want {
		t.Fatalf("first load did not restore persisted selection: %+v", last)
	}

	// A second load starts a fresh session and must seed to the full image.
	load(t, p)
	if last := view.rects[len(view.rects)-1]; last != geometry.Full(geometry.Size{Width: 400, Height: 300}) {
		t.Fatalf("second load kept stale selection: %+v", last)
	}
}

func TestCropPresenter_RecropReseedsDespitePersistedSelection(t *testing.T) {
	p, view, _, _ := newTestPresenter(t)
	load(t, p)
	// Dragging persists the selection into cfg on release.
	p.PointerDown(geometry.Point{X: 400, Y: 300})
	p.PointerMove(geometry.Point{X: 100, Y: 100})
	p.PointerUp()
	if p.cfg.SelectionW != 100 || p.cfg.SelectionH != 100 {
		t.Fatalf("release did not persist selection: %+v", p.cfg)
	}
	p.Confirm()

	p.Recrop()
	// The persisted 100x100 rect fits the 300x300 recrop source but must not
	// survive the re-seed.
	last := view.rects[len(view.rects)-1]
	if last != geometry.Full(geometry.Size{Width: 300, Height: 300}) {
		t.Fatalf("recrop did not reseed to full image: %+v", last)
	}
}

func TestCropPresenter_DragLocksConfigPanel(t *testing.T) {
	p, view, _, _ := newTestPresenter(t)
	load(t, p)
	p.PointerDown(geometry.Point{X: 400, Y: 300})
	if n := len(view.editable); n == 0 || view.editable[n-1] {
		t.Fatalf("config panel not locked on drag start: %v", view.editable)
	}
	p.PointerMove(geometry.Point{X: 200, Y: 150})
	p.PointerUp()
	if n := len(view.editable); view.editable[n-1] != true {
		t.Fatalf("config panel not unlocked on release: %v", view.editable)
	}
}

func TestCropPresenter_AbortDragUnlocksConfigPanel(t *testing.T) {
	p, view, _, _ := newTestPresenter(t)
	load(t, p)
	p.PointerDown(geometry.Point{X: 400, Y: 300})
	p.AbortDrag()
	if n := len(view.editable); n == 0 || !view.editable[n-1] {
		t.Fatalf("config panel still locked after abort: %v", view.editable)
	}
}

func TestCropPresenter_AbortDragLeavesValidRect(t *testing.T) {
	p, view, _, _ := newTestPresenter(t)
	load(t, p)
	p.PointerDown(geometry.Point{X: 400, Y: 300})
	p.PointerMove(geometry.Point{X: 220, Y: 180})
	p.AbortDrag()
	last := view.rects[len(view.rects)-1]
	if !last.Within(geometry.Size{Width: 400, Height: 300}, crop.MinSelectionSize) {
		t.Fatalf("abandoned drag left invalid rect: %+v", last)
	}
	// Further moves are ignored once aborted.
	frames := view.frames
	p.PointerMove(geometry.Point{X: 10, Y: 10})
	if view.frames != frames {
		t.Fatalf("move after abort still rendered")
	}
}
