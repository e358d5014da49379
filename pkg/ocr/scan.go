package ocr

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"

	"kasir/pkg/price"
)

// ExtractPriceFromImage runs the whole pipeline on an image file:
// preprocess, recognize, extract. Returns the amount and the recognized
// text. price.ErrNoPrice means OCR succeeded but nothing qualified.
func ExtractPriceFromImage(path string, rec Recognizer) (price.Amount, Text, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return 0, Text{}, fmt.Errorf("open image: %w", err)
	}
	return ExtractPriceFromFrame(img, rec)
}

// ExtractPriceFromFrame is the same pipeline for an in-memory frame, used
// by the spool watcher. The binarized intermediate goes through a temp file
// because Tesseract reads from disk; it is removed on every path.
func ExtractPriceFromFrame(img image.Image, rec Recognizer) (price.Amount, Text, error) {
	pre := PrepareFrame(img)
	tmpFile, err := os.CreateTemp("", "scan-*.png")
	if err != nil {
		return 0, Text{}, fmt.Errorf("temp file: %w", err)
	}
	tmp := tmpFile.Name()
	_ = tmpFile.Close()
	defer os.Remove(tmp)
	if err := imaging.Save(pre, tmp); err != nil {
		return 0, Text{}, fmt.Errorf("save preprocessed: %w", err)
	}
	txt, err := rec.Recognize(tmp)
	if err != nil {
		return 0, Text{}, err
	}
	logrus.WithFields(logrus.Fields{
		"text":       snippet(txt.Value, 120),
		"confidence": txt.Confidence,
	}).Debug("ocr recognized")
	amt, err := price.Extract(txt.Value)
	if err != nil {
		return 0, txt, err
	}
	return amt, txt, nil
}
