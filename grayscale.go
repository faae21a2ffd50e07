package seamcarver

import (
	"image"
	"image/color"

	"gonum.org/v1/gonum/mat"
)

// Luma weights of ITU-R BT.601.
const (
	lumR = 0.299
	lumG = 0.587
	lumB = 0.114
)

// Grayscale converts the image to a single channel luminance grid in the 0..255 range.
// The returned grid has one row per image row and one column per image column.
func Grayscale(src *image.NRGBA) *mat.Dense {
	dx, dy := src.Bounds().Dx(), src.Bounds().Dy()
	if dx == 0 || dy == 0 {
		return &mat.Dense{}
	}
	gray := mat.NewDense(dy, dx, nil)

	for y := 0; y < dy; y++ {
		row := gray.RawRowView(y)
		off := src.PixOffset(src.Bounds().Min.X, src.Bounds().Min.Y+y)
		for x := 0; x < dx; x++ {
			px := src.Pix[off+x*4 : off+x*4+3]
			row[x] = lumR*float64(px[0]) + lumG*float64(px[1]) + lumB*float64(px[2])
		}
	}
	return gray
}

// dither converts an image to black and white image, where the black is fully transparent.
func dither(src *image.NRGBA) *image.NRGBA {
	var (
		bounds   = src.Bounds()
		dithered = image.NewNRGBA(bounds)
		dx       = bounds.Dx()
		dy       = bounds.Dy()
	)

	for x := 0; x < dx; x++ {
		for y := 0; y < dy; y++ {
			c := src.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y)
			if c.A != 0 && (c.R > 127 || c.G > 127 || c.B > 127) {
				dithered.SetNRGBA(bounds.Min.X+x, bounds.Min.Y+y, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
			}
		}
	}

	return dithered
}
