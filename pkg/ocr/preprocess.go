package ocr

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Binarize reduces a frame to two luminance levels: for each pixel the
// unweighted average of the color channels is compared against the midpoint
// of the channel range; above it every channel becomes 255, otherwise 0.
// Dimensions are preserved and the source image is left untouched.
// Binarizing an already binarized image is a no-op.
func Binarize(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bb, _ := img.At(x, y).RGBA()
			sum := (r >> 8) + (g >> 8) + (bb >> 8)
			var v uint8
			if sum > 3*255/2 {
				v = 255
			}
			out.Set(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return out
}

// PrepareFrame runs the practical pre-OCR pipeline: grayscale, a mild
// contrast boost, upscale of small frames, then the global binarization.
func PrepareFrame(img image.Image) *image.NRGBA {
	gray := imaging.Grayscale(img)
	gray = imaging.AdjustContrast(gray, 15)
	if gray.Bounds().Dy() < 900 {
		gray = imaging.Resize(gray, 0, 1300, imaging.Lanczos)
	}
	return Binarize(gray)
}
