package seamcarver

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/esimov/seamcarver/imop"
)

// DefaultSeamColor is used when no seam color is configured.
var DefaultSeamColor = color.NRGBA{R: 0xff, A: 0xff}

// Colors used for the mask overlay in debug mode.
var (
	removalColor    = color.NRGBA{R: 0xff, G: 0x33, B: 0x33, A: 0x99}
	protectionColor = color.NRGBA{R: 0x33, G: 0xdd, B: 0x55, A: 0x99}
)

// DrawSeam visualizes a seam by painting its pixels on a copy of the image.
func DrawSeam(img *image.NRGBA, seam Seam, dir Direction, col color.Color) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)

	for i, v := range seam {
		x, y := v, i
		if dir == Horizontal {
			x, y = i, v
		}
		dst.Set(x, y, col)
	}
	return dst
}

// overlayOp builds the composition operation and the optional blend mode
// used to draw the mask overlay. An empty compose defaults to source-over.
func overlayOp(compose, blend string) (*imop.Composite, *imop.Blend, error) {
	if compose == "" {
		compose = imop.SrcOver
	}
	op := imop.InitOp()
	if err := op.Set(compose); err != nil {
		return nil, nil, err
	}
	if blend == "" {
		return op, nil, nil
	}
	bl := imop.NewBlend()
	if err := bl.Set(blend); err != nil {
		return nil, nil, err
	}
	return op, bl, nil
}

// drawMasks composes the removal and protection regions over the image,
// the way the debug mode shows them: removal in red, protection in green.
// The overlay is the source and the image the backdrop of the composition.
func drawMasks(img *image.NRGBA, removal, protection *Mask, op *imop.Composite, blend *imop.Blend) *image.NRGBA {
	rect := image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy())
	overlay := image.NewNRGBA(rect)

	for _, layer := range []struct {
		mask *Mask
		col  color.NRGBA
	}{
		{removal, removalColor},
		{protection, protectionColor},
	} {
		if layer.mask == nil {
			continue
		}
		rows, cols := layer.mask.Dims()
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				if layer.mask.At(y, x) {
					overlay.SetNRGBA(x, y, layer.col)
				}
			}
		}
	}

	bitmap := imop.NewBitmap(rect)
	op.DrawBitmap(bitmap, overlay, imgToNRGBA(img), blend)

	return bitmap.Img
}
