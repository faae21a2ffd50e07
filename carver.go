package seamcarver

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// SeamObserver is notified once per removed seam with the image the seam was found on.
// The image must not be modified by the observer.
type SeamObserver func(img *image.NRGBA, seam Seam, dir Direction)

// Carver owns the image being carved together with its removal and protection masks.
// It is not safe for concurrent use.
type Carver struct {
	origin     *image.NRGBA
	img        *image.NRGBA
	removal    *Mask
	protection *Mask

	// OnSeam, when set, is called before each seam is removed.
	OnSeam SeamObserver
}

// NewCarver copies the source image and allocates all-clear masks of the same size.
func NewCarver(src image.Image) *Carver {
	origin := imaging.Clone(src)
	dx, dy := origin.Bounds().Dx(), origin.Bounds().Dy()

	return &Carver{
		origin:     origin,
		img:        imaging.Clone(origin),
		removal:    NewMask(dy, dx),
		protection: NewMask(dy, dx),
	}
}

// CarveVertical removes up to n vertical seams, reducing the image width.
// It stops early, without failing, once the image is one pixel wide.
// The number of removed seams is returned.
func (c *Carver) CarveVertical(n int) int {
	return c.carve(n, Vertical)
}

// CarveHorizontal removes up to n horizontal seams, reducing the image height.
// It stops early, without failing, once the image is one pixel tall.
// The number of removed seams is returned.
func (c *Carver) CarveHorizontal(n int) int {
	return c.carve(n, Horizontal)
}

func (c *Carver) carve(n int, dir Direction) int {
	if n < 0 {
		panic(fmt.Sprintf("seamcarver: negative %s seam count %d", dir, n))
	}

	var removed int
	for ; removed < n; removed++ {
		dx, dy := c.img.Bounds().Dx(), c.img.Bounds().Dy()
		if dx == 0 || dy == 0 {
			break
		}
		// Only the carved dimension is guarded: a single row image can still be narrowed.
		if (dir == Vertical && dx <= 1) || (dir == Horizontal && dy <= 1) {
			break
		}

		energy := EnergyMap(c.img, c.removal, c.protection)

		var seam Seam
		if dir == Vertical {
			seam = FindSeam(energy)
		} else {
			seam = FindHorizontalSeam(energy)
		}

		if c.OnSeam != nil {
			c.OnSeam(c.img, seam, dir)
		}

		if dir == Vertical {
			c.img, c.removal, c.protection = RemoveVerticalSeam(c.img, c.removal, c.protection, seam)
		} else {
			c.img, c.removal, c.protection = RemoveHorizontalSeam(c.img, c.removal, c.protection, seam)
		}
	}
	return removed
}

// SetRemovalRegion marks the pixels inside rect as preferred for removal.
// The rectangle is clipped to the current image bounds and accumulates with earlier calls.
func (c *Carver) SetRemovalRegion(rect image.Rectangle) {
	c.removal.Fill(rect)
}

// SetProtectionRegion marks the pixels inside rect as protected from removal.
// The rectangle is clipped to the current image bounds and accumulates with earlier calls.
func (c *Carver) SetProtectionRegion(rect image.Rectangle) {
	c.protection.Fill(rect)
}

// SetRemovalMask marks the bright pixels of the mask image as preferred for removal.
func (c *Carver) SetRemovalMask(mask image.Image) error {
	return c.applyMask(c.removal, mask)
}

// SetProtectionMask marks the bright pixels of the mask image as protected from removal.
func (c *Carver) SetProtectionMask(mask image.Image) error {
	return c.applyMask(c.protection, mask)
}

func (c *Carver) applyMask(dst *Mask, src image.Image) error {
	m := maskFromImage(src)
	rows, cols := dst.Dims()
	if mr, mc := m.Dims(); mr != rows || mc != cols {
		return fmt.Errorf("mask size %dx%d does not match the image size %dx%d", mc, mr, cols, rows)
	}
	dst.or(m)
	return nil
}

// Reset restores the image to the one the carver was created with.
// The masks are not cleared: their marks are kept at the same coordinates
// and the grids are padded back to the size of the restored image.
func (c *Carver) Reset() {
	c.img = imaging.Clone(c.origin)

	dx, dy := c.img.Bounds().Dx(), c.img.Bounds().Dy()
	c.removal = c.removal.resize(dy, dx)
	c.protection = c.protection.resize(dy, dx)
}

// Image returns a copy of the current image.
func (c *Carver) Image() *image.NRGBA {
	return imaging.Clone(c.img)
}

// Bounds returns the bounds of the current image.
func (c *Carver) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// RemovalMask returns a copy of the current removal mask.
func (c *Carver) RemovalMask() *Mask {
	return c.removal.Clone()
}

// ProtectionMask returns a copy of the current protection mask.
func (c *Carver) ProtectionMask() *Mask {
	return c.protection.Clone()
}
