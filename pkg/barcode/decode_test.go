package barcode

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
)

// encodeCode128 renders a Code128 symbol into a plain grayscale image.
func encodeCode128(t *testing.T, contents string) image.Image {
	t.Helper()
	matrix, err := oned.NewCode128Writer().Encode(contents, gozxing.BarcodeFormat_CODE_128, 400, 120, nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	img := image.NewGray(image.Rect(0, 0, matrix.GetWidth(), matrix.GetHeight()))
	for y := 0; y < matrix.GetHeight(); y++ {
		for x := 0; x < matrix.GetWidth(); x++ {
			c := color.Gray{Y: 255}
			if matrix.Get(x, y) {
				c = color.Gray{Y: 0}
			}
			img.SetGray(x, y, c)
		}
	}
	return img
}

func TestDecodeFrame(t *testing.T) {
	code, err := DecodeFrame(encodeCode128(t, "4006381333931"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if code != "4006381333931" {
		t.Fatalf("expected 4006381333931 got %q", code)
	}
}

func TestDecodeFrameNoBarcode(t *testing.T) {
	blank := imaging.New(200, 100, color.NRGBA{255, 255, 255, 255})
	if _, err := DecodeFrame(blank); !errors.Is(err, ErrNoBarcode) {
		t.Fatalf("expected ErrNoBarcode got %v", err)
	}
}

func TestDecodeFromStream(t *testing.T) {
	frames := make(chan image.Image, 2)
	frames <- imaging.New(200, 100, color.NRGBA{255, 255, 255, 255})
	frames <- encodeCode128(t, "12345678")
	code, err := DecodeFromStream(context.Background(), frames)
	if err != nil {
		t.Fatalf("stream decode: %v", err)
	}
	if code != "12345678" {
		t.Fatalf("expected 12345678 got %q", code)
	}
}

func TestDecodeFromStreamEnds(t *testing.T) {
	frames := make(chan image.Image)
	close(frames)
	if _, err := DecodeFromStream(context.Background(), frames); !errors.Is(err, ErrStreamEnded) {
		t.Fatalf("expected ErrStreamEnded got %v", err)
	}
}

func TestDecodeFromStreamCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	frames := make(chan image.Image)
	if _, err := DecodeFromStream(ctx, frames); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded got %v", err)
	}
}
