package seamcarver

import (
	"fmt"
	"image"
)

// Mask is a dense row-major grid of flags with the same shape as the image it is bound to.
// It is used for both the removal and the protection regions.
type Mask struct {
	rows, cols int
	data       []bool
}

// NewMask allocates an all-clear mask of the given size.
func NewMask(rows, cols int) *Mask {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("seamcarver: invalid mask size %dx%d", rows, cols))
	}
	return &Mask{
		rows: rows,
		cols: cols,
		data: make([]bool, rows*cols),
	}
}

// Dims returns the number of rows and columns of the mask.
func (m *Mask) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// At reports whether the cell at row i and column j is marked.
func (m *Mask) At(i, j int) bool {
	return m.data[m.index(i, j)]
}

// Set marks or clears the cell at row i and column j.
func (m *Mask) Set(i, j int, v bool) {
	m.data[m.index(i, j)] = v
}

func (m *Mask) index(i, j int) int {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("seamcarver: mask index (%d,%d) out of range %dx%d", i, j, m.rows, m.cols))
	}
	return i*m.cols + j
}

// Fill marks every cell inside rect, clipped silently to the mask bounds.
// Cells already marked stay marked.
func (m *Mask) Fill(rect image.Rectangle) {
	rect = rect.Canon().Intersect(image.Rect(0, 0, m.cols, m.rows))
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		row := m.data[y*m.cols : (y+1)*m.cols]
		for x := rect.Min.X; x < rect.Max.X; x++ {
			row[x] = true
		}
	}
}

// Count returns the number of marked cells.
func (m *Mask) Count() int {
	var n int
	for _, v := range m.data {
		if v {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	dst := &Mask{rows: m.rows, cols: m.cols, data: make([]bool, len(m.data))}
	copy(dst.data, m.data)
	return dst
}

// Transpose returns a new mask with rows and columns swapped.
func (m *Mask) Transpose() *Mask {
	dst := NewMask(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			dst.data[j*dst.cols+i] = m.data[i*m.cols+j]
		}
	}
	return dst
}

// removeSeam returns a new mask one column narrower, cut at the same
// per-row positions as the image the seam was found on.
func (m *Mask) removeSeam(seam Seam) *Mask {
	dst := NewMask(m.rows, m.cols-1)
	for i := 0; i < m.rows; i++ {
		src := m.data[i*m.cols : (i+1)*m.cols]
		row := dst.data[i*dst.cols : (i+1)*dst.cols]
		cut := seam[i]
		copy(row[:cut], src[:cut])
		copy(row[cut:], src[cut+1:])
	}
	return dst
}

// maskFromImage marks the pixels which survive the black and white threshold of dither.
func maskFromImage(src image.Image) *Mask {
	img := dither(imgToNRGBA(src))
	dx, dy := img.Bounds().Dx(), img.Bounds().Dy()
	m := NewMask(dy, dx)
	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			if img.Pix[img.PixOffset(x, y)+3] != 0 {
				m.data[y*dx+x] = true
			}
		}
	}
	return m
}

// or marks every cell of m which is marked in other. Both masks must have the same shape.
func (m *Mask) or(other *Mask) {
	for i, v := range other.data {
		if v {
			m.data[i] = true
		}
	}
}

// resize returns a rows x cols mask anchored at the top-left corner.
// Marks falling outside of the new bounds are dropped, new cells are clear.
func (m *Mask) resize(rows, cols int) *Mask {
	if rows == m.rows && cols == m.cols {
		return m
	}
	dst := NewMask(rows, cols)
	n := min(cols, m.cols)
	for i := 0; i < min(rows, m.rows); i++ {
		copy(dst.data[i*cols:i*cols+n], m.data[i*m.cols:i*m.cols+n])
	}
	return dst
}
