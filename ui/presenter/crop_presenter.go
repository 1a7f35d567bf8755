package presenter

import (
	"image"
	"log/slog"
	"math"

	"github.com/quizforge/crop-tool-go/config"
	"github.com/quizforge/crop-tool-go/domain/crop"
	"github.com/quizforge/crop-tool-go/domain/geometry"
	"github.com/quizforge/crop-tool-go/domain/raster"
	"github.com/quizforge/crop-tool-go/domain/source"
	"github.com/quizforge/crop-tool-go/ui/images"
	"github.com/quizforge/crop-tool-go/ui/model"
)

// SelectionView renders the crop surface and status for the active session.
// The config panel locks while a drag is in flight so settings cannot change
// under the active session.
type SelectionView interface {
	ShowFrame(displayed image.Image, sel geometry.Rect)
	SetStateLabel(text string)
	SetConfigEditable(enabled bool)
}

// GalleryView reflects newly collected crops.
type GalleryView interface {
	AppendCrop(res raster.CroppedResult)
}

// CropPresenter routes pointer events through the drag engine into the
// selection model and drives rasterization on confirm. It owns the decoded
// source pixels for the active session; views only ever see rendered frames.
type CropPresenter struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	sel     *model.SelectionModel
	gallery *model.GalleryModel
	engine  crop.DragEngineContract
	mapper  *crop.PointerMapper
	rz      *raster.Rasterizer

	view  SelectionView
	gview GalleryView

	native    image.Image // source-resolution pixels
	displayed image.Image // pixels scaled to the displayed size
	label     string
	restored  bool // persisted selection already consumed
}

// NewCropPresenter wires the crop flow. Any nil collaborator renders the
// presenter inert rather than panicking, matching UI callback semantics.
func NewCropPresenter(cfg *config.Config, cfgPath string, sel *model.SelectionModel, gallery *model.GalleryModel,
	engine crop.DragEngineContract, mapper *crop.PointerMapper, rz *raster.Rasterizer,
	view SelectionView, gview GalleryView, logger *slog.Logger) *CropPresenter {
	return &CropPresenter{
		cfg: cfg, cfgPath: cfgPath, logger: logger,
		sel: sel, gallery: gallery, engine: engine, mapper: mapper, rz: rz,
		view: view, gview: gview,
	}
}

func (p *CropPresenter) ready() bool {
	return p != nil && p.sel != nil && p.engine != nil && p.mapper != nil && p.view != nil
}

// LoadSource installs a new source image, fits it into the configured viewing
// area and seeds the selection to the full image. On the first load of the
// session a persisted selection is restored when it fits the new bounds.
func (p *CropPresenter) LoadSource(ld source.Loaded) {
	if !p.ready() || ld.Image == nil || ld.Native.IsZero() {
		return
	}
	viewW, viewH := 900.0, 600.0
	if p.cfg != nil {
		viewW, viewH = float64(p.cfg.ViewWidth), float64(p.cfg.ViewHeight)
	}
	displayedSize := source.FitDisplayed(ld.Native, viewW, viewH)
	if displayedSize.IsZero() {
		if p.logger != nil {
			p.logger.Error("source does not fit any viewport", "native", ld.Native)
		}
		return
	}
	p.native = ld.Image
	p.label = ld.Label
	p.displayed = images.ScaleTo(ld.Image, int(math.Round(displayedSize.Width)), int(math.Round(displayedSize.Height)))
	p.sel.Load(displayedSize, ld.Native)
	if eng, ok := p.engine.(*crop.DragEngine); ok {
		eng.SetBounds(displayedSize)
	}
	// The persisted selection applies to the first load of the session only.
	// Every later load, recrops included, starts from the full-image seed.
	if !p.restored {
		p.restored = true
		p.restorePersistedSelection(displayedSize)
	}
	p.view.SetStateLabel("Loaded: " + ld.Label)
	p.refresh()
	if p.logger != nil {
		p.logger.Info("source loaded", "label", ld.Label,
			"native_w", ld.Native.Width, "native_h", ld.Native.Height,
			"displayed_w", displayedSize.Width, "displayed_h", displayedSize.Height)
	}
}

func (p *CropPresenter) restorePersistedSelection(bounds geometry.Size) {
	if p.cfg == nil || p.cfg.SelectionW <= 0 || p.cfg.SelectionH <= 0 {
		return
	}
	r := geometry.Rect{
		X: float64(p.cfg.SelectionX), Y: float64(p.cfg.SelectionY),
		Width: float64(p.cfg.SelectionW), Height: float64(p.cfg.SelectionH),
	}
	if !r.Within(bounds, crop.MinSelectionSize) {
		return
	}
	p.sel.SetRect(r)
}

// PointerDown hit-tests the handle under the pointer and starts a drag.
func (p *CropPresenter) PointerDown(page geometry.Point) {
	if !p.ready() || !p.sel.Loaded() {
		return
	}
	local := p.mapper.Map(page)
	mode := crop.HandleAt(p.sel.Rect(), local, crop.DefaultHandleTolerance)
	if mode == crop.HandleNone {
		return
	}
	p.engine.Begin(mode, local, p.sel.Rect())
	p.view.SetConfigEditable(false)
	p.view.SetStateLabel("Dragging: " + mode.String())
}

// PointerMove feeds an active drag and republishes the rectangle.
func (p *CropPresenter) PointerMove(page geometry.Point) {
	if !p.ready() || p.engine.State() != crop.StateDragging {
		return
	}
	r := p.engine.Update(p.mapper.Map(page))
	p.sel.SetRect(r)
	p.refresh()
}

// PointerUp ends the drag and persists the confirmed selection geometry.
func (p *CropPresenter) PointerUp() {
	if !p.ready() || p.engine.State() != crop.StateDragging {
		return
	}
	p.engine.End()
	p.view.SetConfigEditable(true)
	p.persistSelection()
	p.view.SetStateLabel("Selection ready")
}

func (p *CropPresenter) persistSelection() {
	if p.cfg == nil || p.cfgPath == "" {
		return
	}
	r := p.sel.Rect()
	p.cfg.SelectionX, p.cfg.SelectionY = int(math.Round(r.X)), int(math.Round(r.Y))
	p.cfg.SelectionW, p.cfg.SelectionH = int(math.Round(r.Width)), int(math.Round(r.Height))
	if err := p.cfg.Save(p.cfgPath); err != nil && p.logger != nil {
		p.logger.Error("persist selection", "error", err)
	}
}

// Confirm rasterizes the current selection into the gallery. Failures leave
// the selection untouched and surface through the state label.
func (p *CropPresenter) Confirm() {
	if !p.ready() || p.rz == nil || p.gallery == nil {
		return
	}
	res, err := p.rz.Crop(p.sel.Rect(), p.sel.Displayed(), p.sel.Native(), p.native)
	if err != nil {
		if p.logger != nil {
			p.logger.Error("confirm crop", "error", err)
		}
		p.view.SetStateLabel("Crop failed, selection kept")
		return
	}
	p.gallery.Add(res)
	if p.gview != nil {
		p.gview.AppendCrop(res)
	}
	p.view.SetStateLabel("Added " + res.Label)
}

// Recrop re-enters the most recent crop as a fresh source image.
func (p *CropPresenter) Recrop() {
	if !p.ready() || p.gallery == nil {
		return
	}
	last, ok := p.gallery.Latest()
	if !ok {
		p.view.SetStateLabel("Nothing to recrop")
		return
	}
	ld, err := source.FromResult(last)
	if err != nil {
		if p.logger != nil {
			p.logger.Error("recrop", "error", err)
		}
		p.view.SetStateLabel("Recrop failed")
		return
	}
	p.LoadSource(ld)
}

// Reseed restores the selection to the full displayed image.
func (p *CropPresenter) Reseed() {
	if !p.ready() {
		return
	}
	p.sel.Reseed()
	p.refresh()
}

// AbortDrag discards an in-flight drag, e.g. when the surface unmounts. The
// last published rectangle stays valid.
func (p *CropPresenter) AbortDrag() {
	if !p.ready() {
		return
	}
	p.engine.End()
	p.view.SetConfigEditable(true)
}

func (p *CropPresenter) refresh() {
	if p.displayed == nil {
		return
	}
	p.view.ShowFrame(p.displayed, p.sel.Rect())
}
