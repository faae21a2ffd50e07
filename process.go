package seamcarver

import (
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// SeamCarver is the interface implemented by Processor. It receives
// the decoded image and returns the carved one.
type SeamCarver interface {
	Carve(*image.NRGBA) (*image.NRGBA, error)
}

// Resize carves the image with the provided SeamCarver.
func Resize(s SeamCarver, img *image.NRGBA) (*image.NRGBA, error) {
	return s.Carve(img)
}

// Process decodes the source image, carves it and encodes the result into w.
// We are using the io package, since we can provide different input and output types,
// as long as they implement the io.Reader and io.Writer interface.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	src, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return err
	}

	res, err := Resize(p, imgToNRGBA(src))
	if err != nil {
		return err
	}
	return encodeImg(w, res)
}
