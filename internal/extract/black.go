package extract

import (
	"image"
	"image/color"
	"iter"
)

// Pixels yields every pixel of img in row-major order. Ranging stops as soon
// as the consumer breaks, so no pixel past the first interesting one is read.
func Pixels(img *image.NRGBA) iter.Seq[color.NRGBA] {
	return func(yield func(color.NRGBA) bool) {
		b := img.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := img.PixOffset(b.Min.X, y)
			for x := b.Min.X; x < b.Max.X; x++ {
				p := img.Pix[i : i+4 : i+4]
				if !yield(color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}) {
					return
				}
				i += 4
			}
		}
	}
}

// IsBlack reports whether every pixel of img has zero red, green and blue.
// Alpha is not consulted: a fully transparent red pixel is not black.
// An empty image is black.
func IsBlack(img *image.NRGBA) bool {
	for p := range Pixels(img) {
		if p.R != 0 || p.G != 0 || p.B != 0 {
			return false
		}
	}
	return true
}
