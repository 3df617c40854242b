package debug

import (
	"image/png"
	"os"
	"strings"
	"testing"
)

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "test")

	_, err := sc.CaptureFromPixels(make([]byte, 10), 2, 2)
	if err == nil {
		t.Error("expected error for wrong pixel buffer size, got nil")
	}
}

func TestCaptureFromPixels(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "test")

	// 2x2 image, bottom row first as GL returns it. The bottom-left
	// pixel is red, everything else black.
	pixels := make([]byte, 2*2*4)
	pixels[0] = 255 // R of pixel (0,0): bottom-left in GL
	pixels[3] = 255 // A
	for i := 7; i < len(pixels); i += 4 {
		pixels[i] = 255 // opaque
	}

	path, err := sc.CaptureFromPixels(pixels, 2, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels() error: %v", err)
	}
	if !strings.HasPrefix(path, dir) {
		t.Errorf("screenshot path %s not under output dir %s", path, dir)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open screenshot: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("failed to decode screenshot: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("screenshot size = %v, want 2x2", img.Bounds())
	}

	// After the vertical flip, GL's bottom-left pixel is on the
	// image's bottom row (y=1), not the top.
	r, _, _, _ := img.At(0, 1).RGBA()
	if r == 0 {
		t.Error("expected red pixel at image bottom-left after flip")
	}
	r, _, _, _ = img.At(0, 0).RGBA()
	if r != 0 {
		t.Error("expected black pixel at image top-left after flip")
	}
}
