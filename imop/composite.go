package imop

import (
	"fmt"
	"image"

	"github.com/esimov/seamcarver/utils"
)

// Supported composition operations.
const (
	Copy    = "copy"
	SrcOver = "src_over"
	DstOver = "dst_over"
	SrcIn   = "src_in"
	DstIn   = "dst_in"
	SrcOut  = "src_out"
	DstOut  = "dst_out"
	SrcAtop = "src_atop"
	DstAtop = "dst_atop"
	Xor     = "xor"
)

// Bitmap is the destination of a composition.
type Bitmap struct {
	Img *image.NRGBA
}

// Composite holds the active composition operation.
type Composite struct {
	current string
	ops     []string
}

// NewBitmap allocates a transparent bitmap.
func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{
		Img: image.NewNRGBA(rect),
	}
}

// InitOp returns a Composite set to the Copy operation.
func InitOp() *Composite {
	return &Composite{
		current: Copy,
		ops: []string{
			Copy, SrcOver, DstOver, SrcIn, DstIn,
			SrcOut, DstOut, SrcAtop, DstAtop, Xor,
		},
	}
}

// Set changes the active composition operation.
func (op *Composite) Set(cop string) error {
	if !utils.Contains(op.ops, cop) {
		return fmt.Errorf("unsupported composition operation: %v", cop)
	}
	op.current = cop
	return nil
}

// Get returns the active composition operation.
func (op *Composite) Get() string {
	return op.current
}

// DrawBitmap composes src over the dst backdrop into bitmap, then applies
// the blend mode, if any, between the source and the result, weighted by the source alpha.
// The three images are expected to share the same bounds starting at (0, 0).
func (op *Composite) DrawBitmap(bitmap *Bitmap, src, dst *image.NRGBA, blend *Blend) {
	if bitmap == nil {
		bitmap = NewBitmap(src.Bounds())
	}
	dx, dy := src.Bounds().Dx(), src.Bounds().Dy()

	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			si, di, bi := src.PixOffset(x, y), dst.PixOffset(x, y), bitmap.Img.PixOffset(x, y)
			s, b := norm(src.Pix[si:si+4]), norm(dst.Pix[di:di+4])
			as, ab := s[3], b[3]

			var fs, fb float64 // fractions of source and backdrop
			switch op.current {
			case Copy:
				fs, fb = 1, 0
			case SrcOver:
				fs, fb = 1, 1-as
			case DstOver:
				fs, fb = 1-ab, 1
			case SrcIn:
				fs, fb = ab, 0
			case DstIn:
				fs, fb = 0, as
			case SrcOut:
				fs, fb = 1-ab, 0
			case DstOut:
				fs, fb = 0, 1-as
			case SrcAtop:
				fs, fb = ab, 1-as
			case DstAtop:
				fs, fb = 1-ab, as
			case Xor:
				fs, fb = 1-ab, 1-as
			}

			var out [4]float64
			out[3] = as*fs + ab*fb
			for c := 0; c < 3; c++ {
				out[c] = as*fs*s[c] + ab*fb*b[c]
				if out[3] > 0 {
					out[c] /= out[3]
				}
				if blend != nil && blend.OpType != "" {
					// The blended color replaces the composed one in proportion to the source alpha.
					out[c] = (1-as)*out[c] + as*blend.apply(s[c], out[c])
				}
			}
			for c := 0; c < 4; c++ {
				bitmap.Img.Pix[bi+c] = uint8(utils.Clamp(out[c], 0, 1)*255 + 0.5)
			}
		}
	}
}

func norm(px []uint8) [4]float64 {
	return [4]float64{
		float64(px[0]) / 255,
		float64(px[1]) / 255,
		float64(px[2]) / 255,
		float64(px[3]) / 255,
	}
}
