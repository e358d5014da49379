package barcode

import (
	"context"
	"errors"
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// ErrNoBarcode means the frame contained no decodable symbol. Retryable.
var ErrNoBarcode = errors.New("no barcode found")

// ErrStreamEnded means the frame stream closed before a symbol was decoded.
var ErrStreamEnded = errors.New("frame stream ended")

// newReaders returns the decode priority order. Readers keep internal state
// between rows, so each decode attempt gets a fresh set.
func newReaders() []gozxing.Reader {
	return []gozxing.Reader{
		oned.NewCode128Reader(),
		oned.NewEAN13Reader(),
		oned.NewCode39Reader(),
		oned.NewITFReader(),
		qrcode.NewQRCodeReader(),
	}
}

// DecodeFrame tries each supported symbology against a single frame and
// returns the decoded string of the first hit.
func DecodeFrame(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", err
	}
	for _, reader := range newReaders() {
		if result, err := reader.Decode(bmp, nil); err == nil {
			return result.GetText(), nil
		}
	}
	return "", ErrNoBarcode
}

// DecodeFromStream blocks until some frame from the stream decodes, the
// stream closes (ErrStreamEnded) or the context is cancelled. Frames that
// fail to decode are simply skipped.
func DecodeFromStream(ctx context.Context, frames <-chan image.Image) (string, error) {
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case img, ok := <-frames:
			if !ok {
				return "", ErrStreamEnded
			}
			if code, err := DecodeFrame(img); err == nil {
				return code, nil
			}
		}
	}
}
