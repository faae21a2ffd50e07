package seamcarver

import (
	"errors"
	"fmt"
	"image"
	"sync"

	pigo "github.com/esimov/pigo/core"
	"github.com/esimov/seamcarver/imop"
)

var _ SeamCarver = (*Processor)(nil)

// Processor options
type Processor struct {
	// NewWidth and NewHeight are the requested output dimensions.
	// Zero keeps the corresponding dimension. With Percentage they are
	// the percentage of the width and height to be removed.
	NewWidth  int
	NewHeight int
	// VerticalSeams and HorizontalSeams are seam counts removed on top of
	// the ones derived from NewWidth and NewHeight.
	VerticalSeams   int
	HorizontalSeams int

	Percentage bool
	Square     bool
	Debug      bool
	FaceDetect bool
	FaceAngle  float64

	// Compose and Blend select the composition operation and the blend mode
	// (see the imop package) of the debug mask overlay. Compose defaults to source-over.
	Compose string
	Blend   string

	// Classifier is the path of the pigo cascade file used for face detection.
	Classifier   string
	FaceDetector *pigo.Pigo

	// MaskPath is the protection mask and RMaskPath the removal mask image.
	MaskPath        string
	RMaskPath       string
	RemovalRects    []image.Rectangle
	ProtectionRects []image.Rectangle

	OnSeam SeamObserver

	faceOnce sync.Once
	faceErr  error
}

// Carve is the main entry point for the image resize operation.
// The width is reduced first with vertical seams, then the height with horizontal seams.
func (p *Processor) Carve(img *image.NRGBA) (*image.NRGBA, error) {
	dx, dy := img.Bounds().Dx(), img.Bounds().Dy()
	if dx == 0 || dy == 0 {
		return nil, errors.New("cannot carve an empty image")
	}

	newWidth, newHeight, err := p.targetSize(dx, dy)
	if err != nil {
		return nil, err
	}

	var (
		op    *imop.Composite
		blend *imop.Blend
	)
	if p.Debug {
		if op, blend, err = overlayOp(p.Compose, p.Blend); err != nil {
			return nil, fmt.Errorf("debug overlay: %v", err)
		}
	}

	c := NewCarver(img)
	c.OnSeam = p.OnSeam

	if err := p.applyMasks(c, img); err != nil {
		return nil, err
	}

	c.CarveVertical(dx - newWidth + p.VerticalSeams)
	c.CarveHorizontal(dy - newHeight + p.HorizontalSeams)

	res := c.Image()
	if p.Debug {
		res = drawMasks(res, c.RemovalMask(), c.ProtectionMask(), op, blend)
	}
	return res, nil
}

// targetSize converts the processor options into the requested output size.
func (p *Processor) targetSize(dx, dy int) (int, int, error) {
	if p.NewWidth < 0 || p.NewHeight < 0 || p.VerticalSeams < 0 || p.HorizontalSeams < 0 {
		return 0, 0, errors.New("the new image size and the seam counts should be positive")
	}
	newWidth, newHeight := dx, dy

	switch {
	case p.Percentage:
		if p.NewWidth >= 100 || p.NewHeight >= 100 {
			return 0, 0, errors.New("cannot remove 100% or more of the image")
		}
		newWidth = dx - int(float64(dx)*float64(p.NewWidth)/100)
		newHeight = dy - int(float64(dy)*float64(p.NewHeight)/100)
	default:
		if p.NewWidth > 0 {
			newWidth = p.NewWidth
		}
		if p.NewHeight > 0 {
			newHeight = p.NewHeight
		}
	}

	// The square is based on the shortest requested (or existing) edge.
	if p.Square {
		side := min(newWidth, newHeight)
		newWidth, newHeight = side, side
	}

	if newWidth > dx || newHeight > dy {
		return 0, 0, fmt.Errorf("cannot enlarge the image from %dx%d to %dx%d: only shrinking is supported",
			dx, dy, newWidth, newHeight)
	}
	return newWidth, newHeight, nil
}

// applyMasks marks the removal and protection regions of the carver
// from the rectangles, the mask images and the detected faces.
func (p *Processor) applyMasks(c *Carver, img *image.NRGBA) error {
	for _, r := range p.RemovalRects {
		c.SetRemovalRegion(r)
	}
	for _, r := range p.ProtectionRects {
		c.SetProtectionRegion(r)
	}

	if p.RMaskPath != "" {
		mask, err := decodeImg(p.RMaskPath)
		if err != nil {
			return err
		}
		if err := c.SetRemovalMask(mask); err != nil {
			return fmt.Errorf("removal mask: %v", err)
		}
	}
	if p.MaskPath != "" {
		mask, err := decodeImg(p.MaskPath)
		if err != nil {
			return err
		}
		if err := c.SetProtectionMask(mask); err != nil {
			return fmt.Errorf("protection mask: %v", err)
		}
	}

	if p.FaceDetect {
		faces, err := p.detectFaces(img)
		if err != nil {
			return err
		}
		for _, face := range faces {
			c.SetProtectionRegion(face)
		}
	}
	return nil
}
