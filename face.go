package seamcarver

import (
	"errors"
	"fmt"
	"image"
	"os"

	pigo "github.com/esimov/pigo/core"
)

// minFaceQuality is the detection score below which a detection is discarded.
const minFaceQuality = 5.0

// loadClassifier unpacks the cascade file, unless a face detector was already provided.
func (p *Processor) loadClassifier() error {
	p.faceOnce.Do(func() {
		if p.FaceDetector != nil {
			return
		}
		if p.Classifier == "" {
			p.faceErr = errors.New("please specify a face classifier in case you are using the face detection")
			return
		}
		cascade, err := os.ReadFile(p.Classifier)
		if err != nil {
			p.faceErr = fmt.Errorf("error reading the cascade file: %v", err)
			return
		}

		// Unpack the binary file. This will return the number of cascade trees,
		// the tree depth, the threshold and the prediction from tree's leaf nodes.
		p.FaceDetector, err = pigo.NewPigo().Unpack(cascade)
		if err != nil {
			p.faceErr = fmt.Errorf("error unpacking the cascade file: %v", err)
		}
	})
	return p.faceErr
}

// detectFaces returns the bounding box of every face found in the image.
func (p *Processor) detectFaces(img *image.NRGBA) ([]image.Rectangle, error) {
	if err := p.loadClassifier(); err != nil {
		return nil, err
	}
	dx, dy := img.Bounds().Dx(), img.Bounds().Dy()

	cParams := pigo.CascadeParams{
		MinSize:     20,
		MaxSize:     max(dx, dy),
		ShiftFactor: 0.1,
		ScaleFactor: 1.1,

		ImageParams: pigo.ImageParams{
			Pixels: rgbToGrayscale(img),
			Rows:   dy,
			Cols:   dx,
			Dim:    dx,
		},
	}

	// Run the classifier over the obtained leaf nodes and return the detection results.
	// The result contains quadruplets representing the row, column, scale and detection score.
	dets := p.FaceDetector.RunCascade(cParams, p.FaceAngle)

	// Calculate the intersection over union (IoU) of two clusters.
	dets = p.FaceDetector.ClusterDetections(dets, 0.2)

	return faceRects(dets), nil
}

// faceRects converts the detections passing the quality threshold to rectangles.
func faceRects(dets []pigo.Detection) []image.Rectangle {
	var rects []image.Rectangle
	for _, face := range dets {
		if face.Q > minFaceQuality {
			rects = append(rects, image.Rect(
				face.Col-face.Scale/2,
				face.Row-face.Scale/2,
				face.Col+face.Scale/2,
				face.Row+face.Scale/2,
			))
		}
	}
	return rects
}
