package frames

import (
	"image/color"
	"path/filepath"
	"testing"
	"time"

	"github.com/disintegration/imaging"
)

func TestSpoolSourceEmitsNewFrames(t *testing.T) {
	dir := t.TempDir()
	src, err := NewSpoolSource(dir)
	if err != nil {
		t.Fatalf("new source: %v", err)
	}
	defer src.Close()

	img := imaging.New(30, 20, color.NRGBA{255, 255, 255, 255})
	if err := imaging.Save(img, filepath.Join(dir, "frame1.png")); err != nil {
		t.Fatalf("save: %v", err)
	}
	// unsupported extensions are ignored
	_ = imaging.Save(img, filepath.Join(dir, "notes.tiff"))

	select {
	case frame, ok := <-src.Frames():
		if !ok {
			t.Fatal("stream closed unexpectedly")
		}
		if frame.Bounds().Dx() != 30 || frame.Bounds().Dy() != 20 {
			t.Fatalf("unexpected frame bounds %v", frame.Bounds())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for spooled frame")
	}
}

func TestSpoolSourceCloseEndsStream(t *testing.T) {
	src, err := NewSpoolSource(t.TempDir())
	if err != nil {
		t.Fatalf("new source: %v", err)
	}
	if err := src.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	select {
	case _, ok := <-src.Frames():
		if ok {
			t.Fatal("expected closed frame channel")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("frame channel did not close")
	}
}

func TestSpoolSourceMissingDir(t *testing.T) {
	if _, err := NewSpoolSource("/does/not/exist"); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
