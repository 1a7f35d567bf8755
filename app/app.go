package app

import (
	"fmt"
	"log/slog"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/quizforge/crop-tool-go/assets"
	"github.com/quizforge/crop-tool-go/config"
	"github.com/quizforge/crop-tool-go/domain/geometry"
	"github.com/quizforge/crop-tool-go/domain/source"
	"github.com/quizforge/crop-tool-go/ui/view"
)

type app struct {
	container *AppContainer
	logger    *slog.Logger
	width     int
	height    int
}

// NewApp builds the application around the assembled container and prepares
// the Tk root window.
func NewApp(title string, width, height int, cfg *config.Config, logger *slog.Logger, cfgPath string) *app {
	a := &app{logger: logger, width: width, height: height}
	a.container = BuildContainer(cfg, logger, cfgPath)

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a
}

// Start builds the view, wires handlers and enters the Tk event loop.
func (a *app) Start() {
	c := a.container
	cp := c.CropPresenter

	c.RootView.Build(view.Handlers{
		Pointer: view.PointerHandlers{
			Down: func(p geometry.Point) { cp.PointerDown(p) },
			Move: func(p geometry.Point) { cp.PointerMove(p) },
			Up:   func() { cp.PointerUp() },
		},
		OnLoadFile:   a.loadFile,
		OnCaptureScr: a.captureScreen,
		OnConfirm:    func() { cp.Confirm() },
		OnRecrop:     func() { cp.Recrop() },
		OnReseed:     func() { cp.Reseed() },
		OnExport:     a.exportGallery,
		OnClearGal:   a.clearGallery,
		OnExit:       a.exitHandler,
	})

	// Seed the surface with the embedded placeholder until a real image
	// is loaded or captured.
	if img, err := assets.PlaceholderImage(); err == nil {
		cp.LoadSource(source.FromImage(img, "placeholder"))
	} else if a.logger != nil {
		a.logger.Warn("placeholder decode failed", "error", err)
	}

	App.Wait()
}

func (a *app) loadFile(path string) {
	if path == "" {
		a.container.RootView.SetStateLabel("No path given")
		return
	}
	ld, err := source.FromFile(path)
	if err != nil {
		if a.logger != nil {
			a.logger.Error("load file", "path", path, "error", err)
		}
		a.container.RootView.SetStateLabel("Load failed: " + path)
		return
	}
	a.container.CropPresenter.LoadSource(ld)
}

func (a *app) captureScreen() {
	ld, err := source.FromScreen()
	if err != nil {
		if a.logger != nil {
			a.logger.Error("capture screen", "error", err)
		}
		a.container.RootView.SetStateLabel("Screen capture failed")
		return
	}
	a.container.CropPresenter.LoadSource(ld)
}

func (a *app) exportGallery() {
	written, err := a.container.GalleryPresenter.ExportAll()
	if err != nil {
		if a.logger != nil {
			a.logger.Error("export gallery", "error", err)
		}
		a.container.RootView.SetStateLabel("Export failed")
		return
	}
	a.container.RootView.SetStateLabel(fmt.Sprintf("Exported %d crops", written))
}

func (a *app) clearGallery() {
	a.container.Gallery.Clear()
	a.container.RootView.ResetGallery()
	a.container.RootView.SetStateLabel("Gallery cleared")
}

func (a *app) exitHandler() {
	a.container.CropPresenter.AbortDrag()
	Destroy(App)
}
