package app

import (
	"log/slog"

	"github.com/quizforge/crop-tool-go/config"
	"github.com/quizforge/crop-tool-go/displayscale"
	"github.com/quizforge/crop-tool-go/domain/crop"
	"github.com/quizforge/crop-tool-go/domain/geometry"
	"github.com/quizforge/crop-tool-go/domain/raster"
	"github.com/quizforge/crop-tool-go/ui/model"
	"github.com/quizforge/crop-tool-go/ui/presenter"
	"github.com/quizforge/crop-tool-go/ui/view"
)

// AppContainer assembles models, domain services, presenters and the root view.
type AppContainer struct {
	Config   *config.Config
	Logger   *slog.Logger
	Sel      *model.SelectionModel
	Gallery  *model.GalleryModel
	Engine   *crop.DragEngine
	Mapper   *crop.PointerMapper
	Raster   *raster.Rasterizer
	RootView *view.RootView

	// Presenters
	CropPresenter    *presenter.CropPresenter
	GalleryPresenter *presenter.GalleryPresenter
}

// BuildContainer constructs all components. The pointer mapper's container
// bounds track the current displayed size, and its scale correction comes
// from the config override or the system DPI.
func BuildContainer(cfg *config.Config, logger *slog.Logger, cfgPath string) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Sel = model.NewSelectionModel()
	c.Gallery = model.NewGalleryModel()
	c.Engine = crop.NewDragEngine(geometry.Size{}, logger)

	override := 0.0
	quality := raster.DefaultJPEGQuality
	if cfg != nil {
		override = cfg.DisplayScale
		quality = cfg.JPEGQuality
	}
	scale := displayscale.Correction(override, logger)
	c.Mapper = crop.NewPointerMapper(scale, func() *geometry.Rect {
		if !c.Sel.Loaded() {
			return nil
		}
		// Tk reports pointer positions relative to the crop surface, so the
		// container box sits at the origin of the displayed image.
		d := c.Sel.Displayed()
		r := geometry.Rect{X: 0, Y: 0, Width: d.Width, Height: d.Height}
		return &r
	})
	c.Raster = raster.NewRasterizer(quality, logger)

	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	c.CropPresenter = presenter.NewCropPresenter(cfg, cfgPath, c.Sel, c.Gallery,
		c.Engine, c.Mapper, c.Raster, c.RootView, c.RootView, logger)
	c.GalleryPresenter = presenter.NewGalleryPresenter(cfg, c.Gallery, logger)
	return c
}
