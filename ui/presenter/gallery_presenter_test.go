package presenter

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/quizforge/crop-tool-go/config"
	"github.com/quizforge/crop-tool-go/domain/raster"
	"github.com/quizforge/crop-tool-go/ui/model"
)

func galleryWithOneCrop(t *testing.T) *model.GalleryModel {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 50, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 50; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: uint8(x), B: uint8(y), A: 255})
		}
	}
	url, err := raster.EncodeDataURL(img, 95)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	g := model.NewGalleryModel()
	g.Add(raster.CroppedResult{DataURL: url, Label: "crop 1 (50x40)"})
	return g
}

func TestGalleryPresenter_ExportWritesFiles(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ExportDir = t.TempDir()
	cfg.ExportFormat = "png"
	g := galleryWithOneCrop(t)
	p := NewGalleryPresenter(cfg, g, discardLogger)

	written, err := p.ExportAll()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if written != 1 {
		t.Fatalf("expected 1 file written, got %d", written)
	}
	want := filepath.Join(cfg.ExportDir, "crop_1_50x40.png")
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("exported file missing: %v", err)
	}
}

func TestGalleryPresenter_EmptyGalleryNoop(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ExportDir = filepath.Join(t.TempDir(), "never-created")
	p := NewGalleryPresenter(cfg, model.NewGalleryModel(), discardLogger)
	written, err := p.ExportAll()
	if err != nil || written != 0 {
		t.Fatalf("expected clean no-op, got written=%d err=%v", written, err)
	}
	if _, err := os.Stat(cfg.ExportDir); !os.IsNotExist(err) {
		t.Fatalf("export dir created for empty gallery")
	}
}

func TestFileName_Sanitizes(t *testing.T) {
	if got := fileName("crop 3 (120x80)"); got != "crop_3_120x80" {
		t.Fatalf("unexpected name: %q", got)
	}
	if got := fileName("  "); got != "crop" {
		t.Fatalf("blank label should fall back, got %q", got)
	}
}
