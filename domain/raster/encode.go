package raster

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// DefaultJPEGQuality matches the fixed lossy quality ratio of 0.95 used for
// crop payloads.
const DefaultJPEGQuality = 95

const jpegDataURLPrefix = "data:image/jpeg;base64,"

// EncodeDataURL encodes img as a base64 JPEG data URL at the given quality.
func EncodeDataURL(img image.Image, quality int) (string, error) {
	if img == nil {
		return "", ErrInputMissing
	}
	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return "", fmt.Errorf("raster: jpeg encode: %w", err)
	}
	return jpegDataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecodeDataURL decodes a data URL produced by EncodeDataURL back into an
// image, allowing a crop result to re-enter as a recrop source.
func DecodeDataURL(s string) (image.Image, error) {
	idx := strings.Index(s, ";base64,")
	if !strings.HasPrefix(s, "data:image/") || idx < 0 {
		return nil, fmt.Errorf("raster: not an image data URL")
	}
	raw, err := base64.StdEncoding.DecodeString(s[idx+len(";base64,"):])
	if err != nil {
		return nil, fmt.Errorf("raster: data URL payload: %w", err)
	}
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("raster: data URL decode: %w", err)
	}
	return img, nil
}

// ExportFile writes img to path, choosing the codec from the extension.
// JPEG and PNG go through imaging; .webp is written lossless.
func ExportFile(path string, img image.Image, quality int) error {
	if img == nil {
		return ErrInputMissing
	}
	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".webp" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("raster: export: %w", err)
		}
		defer f.Close()
		if err := webp.Encode(f, img, &webp.Options{Lossless: true}); err != nil {
			return fmt.Errorf("raster: webp encode: %w", err)
		}
		return nil
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("raster: export: %w", err)
	}
	return nil
}
