package seamcarver

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// RemoveVerticalSeam deletes one pixel per row from the image and from both masks,
// returning new buffers which are one column narrower. Nil masks stay nil.
// The image must be at least two pixels wide and the seam must have one in-range entry per row.
func RemoveVerticalSeam(img *image.NRGBA, removal, protection *Mask, seam Seam) (*image.NRGBA, *Mask, *Mask) {
	dx, dy := img.Bounds().Dx(), img.Bounds().Dy()
	if dx <= 1 {
		panic(fmt.Sprintf("seamcarver: cannot remove a vertical seam from an image %d pixel wide", dx))
	}
	if len(seam) != dy {
		panic(fmt.Sprintf("seamcarver: seam length %d does not match image height %d", len(seam), dy))
	}
	for y, x := range seam {
		if x < 0 || x >= dx {
			panic(fmt.Sprintf("seamcarver: seam column %d at row %d out of range [0,%d)", x, y, dx))
		}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, dx-1, dy))
	for y := 0; y < dy; y++ {
		cut := seam[y] * 4
		so := img.PixOffset(img.Bounds().Min.X, img.Bounds().Min.Y+y)
		do := dst.PixOffset(0, y)
		src := img.Pix[so : so+dx*4]
		row := dst.Pix[do : do+(dx-1)*4]

		copy(row[:cut], src[:cut])
		copy(row[cut:], src[cut+4:])
	}

	if removal != nil {
		removal = removal.removeSeam(seam)
	}
	if protection != nil {
		protection = protection.removeSeam(seam)
	}
	return dst, removal, protection
}

// RemoveHorizontalSeam deletes one pixel per column from the image and from both masks.
// The buffers are transposed around a vertical removal.
func RemoveHorizontalSeam(img *image.NRGBA, removal, protection *Mask, seam Seam) (*image.NRGBA, *Mask, *Mask) {
	img = imaging.Transpose(img)
	removal = transposeMask(removal)
	protection = transposeMask(protection)

	img, removal, protection = RemoveVerticalSeam(img, removal, protection, seam)

	return imaging.Transpose(img), transposeMask(removal), transposeMask(protection)
}

func transposeMask(m *Mask) *Mask {
	if m == nil {
		return nil
	}
	return m.Transpose()
}
