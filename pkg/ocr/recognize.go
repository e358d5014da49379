package ocr

import (
	"errors"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// ErrRecognition wraps engine-internal OCR failures. Recoverable: callers
// fall back to manual entry.
var ErrRecognition = errors.New("text recognition failed")

// Text is the recognizer output: the raw recognized string plus the
// engine-reported mean confidence in [0,100]. The confidence is available
// to callers but nothing downstream is required to examine it.
type Text struct {
	Value      string
	Confidence float64
}

// Recognizer turns an image file into recognized text. Implementations may
// return arbitrary noisy text; the price extractor stays robust to stray
// characters regardless of any alphabet restriction applied here.
type Recognizer interface {
	Recognize(imagePath string) (Text, error)
}

// priceAlphabet restricts Tesseract output to digits, the decimal point and
// the supported currency symbols. Narrows false positives, guarantees nothing.
const priceAlphabet = "0123456789.$€£Rp "

// TesseractRecognizer runs a fresh gosseract client per call so the engine
// session is always released, whatever the exit path.
type TesseractRecognizer struct{}

func NewTesseractRecognizer() *TesseractRecognizer {
	return &TesseractRecognizer{}
}

func (t *TesseractRecognizer) Recognize(imagePath string) (Text, error) {
	client := gosseract.NewClient()
	defer client.Close()
	_ = client.SetLanguage("eng")
	_ = client.SetWhitelist(priceAlphabet)
	_ = client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK)
	if err := client.SetImage(imagePath); err != nil {
		return Text{}, fmt.Errorf("%w: set image: %v", ErrRecognition, err)
	}
	raw, err := client.Text()
	if err != nil {
		return Text{}, fmt.Errorf("%w: %v", ErrRecognition, err)
	}
	out := Text{Value: normalizeText(raw)}
	if boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD); err == nil && len(boxes) > 0 {
		var sum float64
		for _, b := range boxes {
			sum += b.Confidence
		}
		out.Confidence = sum / float64(len(boxes))
	}
	return out, nil
}
