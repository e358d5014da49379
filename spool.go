package main

import (
	"errors"

	"github.com/sirupsen/logrus"

	"kasir/pkg/barcode"
	"kasir/pkg/basket"
	"kasir/pkg/frames"
	"kasir/pkg/ocr"
	"kasir/pkg/price"
)

// runSpool feeds frames dropped into the spool directory through the scan
// pipeline: barcode decode first, price OCR otherwise. Accepted items land
// in the given session's basket. Blocks until the source ends.
func runSpool(dir string, sess *Session, rec ocr.Recognizer) {
	src, err := frames.NewSpoolSource(dir)
	if err != nil {
		logrus.WithError(err).WithField("dir", dir).Error("spool: cannot watch directory")
		return
	}
	defer src.Close()
	logrus.WithField("dir", dir).Info("spool: watching for frames")

	for frame := range src.Frames() {
		if code, err := barcode.DecodeFrame(frame); err == nil {
			it := basket.NewItem("barcode "+code, placeholderPrice)
			sess.AddItem(it)
			logrus.WithField("code", code).Info("spool: barcode item added")
			continue
		}
		gen, ok := sess.BeginScan()
		if !ok {
			logrus.Warn("spool: scan in progress, frame dropped")
			continue
		}
		amt, txt, err := ocr.ExtractPriceFromFrame(frame, rec)
		switch {
		case errors.Is(err, price.ErrNoPrice):
			logrus.WithField("text", txt.Value).Info("spool: no price in frame")
		case err != nil:
			logrus.WithError(err).Warn("spool: frame scan failed")
		default:
			it := basket.NewItem("scanned item", amt)
			if sess.CommitScan(gen, it) {
				logrus.WithField("price", amt.String()).Info("spool: item added")
			}
		}
		sess.FinishScan()
	}
}
