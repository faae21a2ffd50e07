package seamcarver

import (
	"image"
	"image/color"
	"math/rand"
)

const (
	imgWidth  = 10
	imgHeight = 10
)

// newImage builds a dx x dy image painted by fn.
func newImage(dx, dy int, fn func(x, y int) color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, dx, dy))
	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			img.SetNRGBA(x, y, fn(x, y))
		}
	}
	return img
}

func gray(v uint8) color.NRGBA {
	return color.NRGBA{R: v, G: v, B: v, A: 0xff}
}

func uniformImage(dx, dy int, v uint8) *image.NRGBA {
	return newImage(dx, dy, func(x, y int) color.NRGBA { return gray(v) })
}

func randomImage(dx, dy int, seed int64) *image.NRGBA {
	rnd := rand.New(rand.NewSource(seed))
	return newImage(dx, dy, func(x, y int) color.NRGBA {
		return color.NRGBA{
			R: uint8(rnd.Intn(256)),
			G: uint8(rnd.Intn(256)),
			B: uint8(rnd.Intn(256)),
			A: 0xff,
		}
	})
}
