package layout

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
)

// FitImage scales w×h to fit inside maxW×maxH, keeping the aspect ratio.
// Invalid dimensions fit to nothing.
func FitImage(w, h, maxW, maxH float64) (float64, float64) {
	if w <= 0 || h <= 0 || maxW <= 0 || maxH <= 0 {
		return 0, 0
	}
	scale := maxW / w
	if s := maxH / h; s < scale {
		scale = s
	}
	return w * scale, h * scale
}

// Place centres an image of w×h inside box after fitting it.
func Place(box Rect, w, h float64) Rect {
	fw, fh := FitImage(w, h, box.W, box.H)
	return Rect{X: box.X + (box.W-fw)/2, Y: box.Y + (box.H-fh)/2, W: fw, H: fh}
}

// ImageType maps a file extension to the image type name PDF writers take.
func ImageType(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "JPG", nil
	case ".png":
		return "PNG", nil
	case ".gif":
		return "GIF", nil
	default:
		return "", fmt.Errorf("unsupported image type %q", filepath.Ext(path))
	}
}

// ImageSize reads the pixel dimensions of an image file without decoding
// the pixels.
func ImageSize(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return cfg.Width, cfg.Height, nil
}
