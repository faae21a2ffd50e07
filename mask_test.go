package seamcarver

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask_FillClipsAndAccumulates(t *testing.T) {
	m := NewMask(4, 5)

	m.Fill(image.Rect(3, 2, 10, 10))
	assert.Equal(t, 4, m.Count())

	m.Fill(image.Rect(-3, -3, 1, 1))
	assert.Equal(t, 5, m.Count())
	assert.True(t, m.At(0, 0))

	// Overlapping regions do not clear earlier marks.
	m.Fill(image.Rect(3, 2, 4, 3))
	assert.Equal(t, 5, m.Count())

	m.Fill(image.Rect(20, 20, 30, 30))
	assert.Equal(t, 5, m.Count())
}

func TestMask_Transpose(t *testing.T) {
	m := NewMask(2, 3)
	m.Set(0, 2, true)
	m.Set(1, 0, true)

	tr := m.Transpose()
	rows, cols := tr.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 2, cols)
	assert.True(t, tr.At(2, 0))
	assert.True(t, tr.At(0, 1))
	assert.Equal(t, 2, tr.Count())
	assert.Equal(t, m, tr.Transpose())
}

func TestMask_Resize(t *testing.T) {
	m := NewMask(2, 2)
	m.Set(1, 1, true)

	grown := m.resize(3, 4)
	rows, cols := grown.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 4, cols)
	assert.True(t, grown.At(1, 1))
	assert.Equal(t, 1, grown.Count())

	assert.Equal(t, 0, m.resize(1, 1).Count())
	assert.Same(t, m, m.resize(2, 2))
}

func TestMask_FromImage(t *testing.T) {
	img := newImage(3, 2, func(x, y int) color.NRGBA { return color.NRGBA{A: 0xff} })
	img.SetNRGBA(1, 0, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	img.SetNRGBA(2, 1, gray(100))
	img.SetNRGBA(0, 1, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0})

	m := maskFromImage(img)
	assert.True(t, m.At(0, 1))
	assert.Equal(t, 1, m.Count())
}

func TestMask_OutOfRangePanics(t *testing.T) {
	m := NewMask(2, 2)
	assert.Panics(t, func() { m.At(2, 0) })
	assert.Panics(t, func() { m.Set(0, -1, true) })
	assert.Panics(t, func() { NewMask(-1, 2) })
}
