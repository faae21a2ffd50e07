package seamcarver

import (
	"image"
	"testing"

	pigo "github.com/esimov/pigo/core"
	"github.com/stretchr/testify/assert"
)

func TestFace_DetectionsToRects(t *testing.T) {
	dets := []pigo.Detection{
		{Row: 50, Col: 40, Scale: 20, Q: 6.5},
		{Row: 10, Col: 10, Scale: 8, Q: 2},
	}

	rects := faceRects(dets)
	assert.Equal(t, []image.Rectangle{image.Rect(30, 40, 50, 60)}, rects)
	assert.Empty(t, faceRects(nil))
}
