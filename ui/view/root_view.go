package view

import (
	"image"
	"log/slog"
	"strings"

	"github.com/quizforge/crop-tool-go/config"
	"github.com/quizforge/crop-tool-go/domain/geometry"
	"github.com/quizforge/crop-tool-go/domain/raster"
	"github.com/quizforge/crop-tool-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	ConfigPanel ConfigPanel
	Surface     CropSurface
	Gallery     GalleryStrip

	// Widgets
	StateLabel *LabelWidget
	pathEntry  *TextWidget
}

// Handlers are the user actions the root view forwards to presenters.
type Handlers struct {
	Pointer       PointerHandlers
	OnLoadFile    func(path string)
	OnCaptureScr  func()
	OnConfirm     func()
	OnRecrop      func()
	OnReseed      func()
	OnExport      func()
	OnClearGal    func()
	OnExit        func()
}

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout and binds user actions.
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	theme.InitStyles()

	// Row 0: state label plus the action buttons frame.
	rv.StateLabel = Label(Txt("State: <no image>"), Style(theme.StyleStateLabel))
	Grid(rv.StateLabel, Row(0), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(2), Columnspan(3), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	col := 0
	addBtn := func(text, style string, cmd func()) {
		b := Button(Txt(text), Style(style), Command(cmd))
		Grid(b, In(btnFrame), Row(0), Column(col), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
		col++
	}
	addBtn("Capture Screen", theme.StylePrimaryButton, func() {
		if h.OnCaptureScr != nil {
			h.OnCaptureScr()
		}
	})
	addBtn("Confirm Crop", theme.StylePrimaryButton, func() {
		if h.OnConfirm != nil {
			h.OnConfirm()
		}
	})
	addBtn("Recrop", theme.StylePrimaryButton, func() {
		if h.OnRecrop != nil {
			h.OnRecrop()
		}
	})
	addBtn("Reset Selection", theme.StylePrimaryButton, func() {
		if h.OnReseed != nil {
			h.OnReseed()
		}
	})
	addBtn("Export", theme.StylePrimaryButton, func() {
		if h.OnExport != nil {
			h.OnExport()
		}
	})
	addBtn("Clear Gallery", theme.StyleDangerButton, func() {
		if h.OnClearGal != nil {
			h.OnClearGal()
		}
	})
	addBtn("Dark", theme.StylePrimaryButton, func() {
		theme.ToggleDark()
	})
	addBtn("Exit", theme.StyleDangerButton, func() {
		if h.OnExit != nil {
			h.OnExit()
		}
	})

	// Row 1: image path entry + load button.
	pathLbl := Label(Txt("Image Path"), Anchor("w"))
	Grid(pathLbl, Row(1), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
	rv.pathEntry = Text(Height(1), Width(48))
	Grid(rv.pathEntry, Row(1), Column(1), Columnspan(3), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
	loadBtn := Button(Txt("Load File"), Command(func() {
		if h.OnLoadFile != nil {
			h.OnLoadFile(rv.pathText())
		}
	}))
	Grid(loadBtn, Row(1), Column(4), Sticky("we"), Padx("0.2m"), Pady("0.15m"))

	// Config panel rows.
	rv.ConfigPanel = NewConfigPanel(rv.cfg, rv.cfgPath, rv.logger)
	endRow := rv.ConfigPanel.Build(2)

	// Crop surface and gallery strip.
	rv.Surface = NewCropSurface(endRow, h.Pointer)
	rv.Gallery = NewGalleryStrip(endRow + 1)
}

func (rv *RootView) pathText() string {
	if rv == nil || rv.pathEntry == nil {
		return ""
	}
	parts := rv.pathEntry.Get("1.0", END)
	return strings.TrimSpace(strings.Join(parts, ""))
}

// --- presenter view contracts ---

// SetStateLabel updates the state label text.
func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.StateLabel != nil {
		rv.StateLabel.Configure(Txt("State: " + text))
	}
}

// ShowFrame forwards the composited frame to the crop surface.
func (rv *RootView) ShowFrame(displayed image.Image, sel geometry.Rect) {
	if rv != nil && rv.Surface != nil {
		rv.Surface.ShowFrame(displayed, sel)
	}
}

// AppendCrop forwards a new result to the gallery strip.
func (rv *RootView) AppendCrop(res raster.CroppedResult) {
	if rv != nil && rv.Gallery != nil {
		rv.Gallery.AppendCrop(res)
	}
}

// ResetGallery clears the gallery strip back to its empty state.
func (rv *RootView) ResetGallery() {
	if rv != nil && rv.Gallery != nil {
		rv.Gallery.Reset()
	}
}

// SetConfigEditable toggles config panel editability, used while dragging.
func (rv *RootView) SetConfigEditable(enabled bool) {
	if rv != nil && rv.ConfigPanel != nil {
		rv.ConfigPanel.SetEditable(enabled)
	}
}
