package presenter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/quizforge/crop-tool-go/config"
	"github.com/quizforge/crop-tool-go/domain/raster"
	"github.com/quizforge/crop-tool-go/ui/model"
)

// GalleryPresenter exports the collected crops to disk in the configured
// format.
type GalleryPresenter struct {
	cfg     *config.Config
	gallery *model.GalleryModel
	logger  *slog.Logger
}

func NewGalleryPresenter(cfg *config.Config, gallery *model.GalleryModel, logger *slog.Logger) *GalleryPresenter {
	return &GalleryPresenter{cfg: cfg, gallery: gallery, logger: logger}
}

// ExportAll writes every collected crop into the export directory, one file
// per crop, named after its label. Returns the number written; individual
// failures are logged and skipped.
func (p *GalleryPresenter) ExportAll() (int, error) {
	if p == nil || p.gallery == nil {
		return 0, nil
	}
	dir, format, quality := "crops", "jpeg", raster.DefaultJPEGQuality
	if p.cfg != nil {
		dir, format, quality = p.cfg.ExportDir, p.cfg.ExportFormat, p.cfg.JPEGQuality
	}
	items := p.gallery.Items()
	if len(items) == 0 {
		return 0, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("export dir: %w", err)
	}
	written := 0
	for _, item := range items {
		img, err := raster.DecodeDataURL(item.DataURL)
		if err != nil {
			if p.logger != nil {
				p.logger.Error("export decode", "label", item.Label, "error", err)
			}
			continue
		}
		path := filepath.Join(dir, fileName(item.Label)+ext(format))
		if err := raster.ExportFile(path, img, quality); err != nil {
			if p.logger != nil {
				p.logger.Error("export write", "path", path, "error", err)
			}
			continue
		}
		written++
	}
	if p.logger != nil {
		p.logger.Info("gallery exported", "written", written, "total", len(items), "dir", dir)
	}
	return written, nil
}

// fileName flattens a crop label into a filesystem-safe name.
func fileName(label string) string {
	repl := strings.NewReplacer(" ", "_", "(", "", ")", "", "/", "-", "\\", "-", ":", "-")
	name := repl.Replace(strings.TrimSpace(label))
	if name == "" {
		name = "crop"
	}
	return name
}

func ext(format string) string {
	switch format {
	case "png":
		return ".png"
	case "webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
