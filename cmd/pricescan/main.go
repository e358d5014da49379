package main

import (
	"fmt"
	"os"

	"kasir/pkg/ocr"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: pricescan <image>")
		os.Exit(2)
	}
	amt, txt, err := ocr.ExtractPriceFromImage(os.Args[1], ocr.NewTesseractRecognizer())
	fmt.Printf("text=%q confidence=%.1f\n", txt.Value, txt.Confidence)
	if err != nil {
		fmt.Printf("err=%v\n", err)
		os.Exit(1)
	}
	fmt.Printf("price=%s\n", amt)
}
