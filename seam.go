package seamcarver

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// tieTolerance is the maximum cost difference below which two candidates are considered equal.
const tieTolerance = 1e-6

// Seam holds one coordinate per row for a vertical seam (the column index)
// or one coordinate per column for a horizontal seam (the row index).
type Seam []int

// Direction selects the axis along which a seam runs.
type Direction int

const (
	// Vertical seams run top to bottom and shrink the image width.
	Vertical Direction = iota
	// Horizontal seams run left to right and shrink the image height.
	Horizontal
)

func (d Direction) String() string {
	switch d {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// DPTable holds the cumulative cost and the parent column of each cell
// computed while searching for the lowest energy seam.
type DPTable struct {
	width  int
	height int
	cost   *mat.Dense
	parent []int
}

// NewDPTable fills the table for the provided energy grid, one row at a time:
//   - the first row is the energy itself;
//   - every other cell sums its own energy with the cheapest of the three
//     neighbours above it (up-left, up, up-right).
//
// Equal candidates are resolved in favour of up-left, then up.
func NewDPTable(energy mat.Matrix) *DPTable {
	height, width := energy.Dims()
	if height == 0 || width == 0 {
		panic("seamcarver: cannot search a seam in an empty energy grid")
	}

	dpt := &DPTable{
		width:  width,
		height: height,
		cost:   mat.NewDense(height, width, nil),
		parent: make([]int, width*height),
	}

	first := dpt.cost.RawRowView(0)
	for x := 0; x < width; x++ {
		first[x] = energy.At(0, x)
		dpt.parent[x] = x
	}

	for y := 1; y < height; y++ {
		prev := dpt.cost.RawRowView(y - 1)
		curr := dpt.cost.RawRowView(y)
		for x := 0; x < width; x++ {
			best, idx := math.Inf(1), x
			for px := x - 1; px <= x+1; px++ {
				// Out of range neighbours are never selected.
				if px < 0 || px >= width {
					continue
				}
				if prev[px] < best-tieTolerance {
					best, idx = prev[px], px
				}
			}
			curr[x] = energy.At(y, x) + best
			dpt.parent[y*width+x] = idx
		}
	}
	return dpt
}

// Cost returns the cumulative cost of the cheapest seam ending at row y, column x.
func (dpt *DPTable) Cost(x, y int) float64 {
	return dpt.cost.At(y, x)
}

// Parent returns the column chosen in row y-1 by the seam passing through (x, y).
func (dpt *DPTable) Parent(x, y int) int {
	return dpt.parent[y*dpt.width+x]
}

// LowestEnergySeam walks back through the parents starting from the
// cheapest cell of the last row (the leftmost one in case of a tie).
func (dpt *DPTable) LowestEnergySeam() Seam {
	last := dpt.cost.RawRowView(dpt.height - 1)
	px := 0
	for x := 1; x < dpt.width; x++ {
		if last[x] < last[px]-tieTolerance {
			px = x
		}
	}

	seam := make(Seam, dpt.height)
	seam[dpt.height-1] = px
	for y := dpt.height - 1; y > 0; y-- {
		px = dpt.Parent(px, y)
		seam[y-1] = px
	}
	return seam
}

// FindSeam returns the top to bottom 8-connected path of minimum total energy.
func FindSeam(energy mat.Matrix) Seam {
	return NewDPTable(energy).LowestEnergySeam()
}

// FindHorizontalSeam returns the left to right path of minimum total energy,
// as one row index per column. It reuses the vertical search on the transposed grid.
func FindHorizontalSeam(energy mat.Matrix) Seam {
	return FindSeam(energy.T())
}

// SeamCost sums the energy of the cells a vertical seam passes through.
func SeamCost(energy mat.Matrix, seam Seam) float64 {
	var sum float64
	for y, x := range seam {
		sum += energy.At(y, x)
	}
	return sum
}
