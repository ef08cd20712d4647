package layout

import (
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "frame.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestFitImage(t *testing.T) {
	cases := []struct {
		w, h, maxW, maxH float64
		wantW, wantH     float64
	}{
		{200, 100, 58, 40, 58, 29},
		{100, 200, 58, 40, 20, 40},
		{58, 40, 58, 40, 58, 40},
		{0, 100, 58, 40, 0, 0},
		{100, 100, 0, 40, 0, 0},
	}
	for _, tc := range cases {
		w, h := FitImage(tc.w, tc.h, tc.maxW, tc.maxH)
		if !near(w, tc.wantW) || !near(h, tc.wantH) {
			t.Fatalf("FitImage(%v,%v,%v,%v) = %v,%v want %v,%v", tc.w, tc.h, tc.maxW, tc.maxH, w, h, tc.wantW, tc.wantH)
		}
	}
}

func TestPlaceCentres(t *testing.T) {
	r := Place(Rect{X: 0, Y: 0, W: 58, H: 40}, 100, 200)
	if !near(r.X, 19) || !near(r.Y, 0) || !near(r.W, 20) || !near(r.H, 40) {
		t.Fatalf("Place = %+v", r)
	}
}

func TestImageSize(t *testing.T) {
	path := writePNG(t, 64, 32)
	w, h, err := ImageSize(path)
	if err != nil {
		t.Fatalf("ImageSize: %v", err)
	}
	if w != 64 || h != 32 {
		t.Fatalf("size = %dx%d", w, h)
	}

	bad := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, _, err := ImageSize(bad); err == nil {
		t.Fatalf("expected decode error")
	}
	if _, _, err := ImageSize(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatalf("expected open error")
	}
}

func TestImageType(t *testing.T) {
	for path, want := range map[string]string{"a.JPEG": "JPG", "b.jpg": "JPG", "c.png": "PNG", "d.gif": "GIF"} {
		got, err := ImageType(path)
		if err != nil || got != want {
			t.Fatalf("ImageType(%q) = %q, %v", path, got, err)
		}
	}
	if _, err := ImageType("e.bmp"); err == nil {
		t.Fatalf("bmp should be rejected")
	}
}
