package seamcarver

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

type kernel [3][3]float64

var (
	kernelX = kernel{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}

	kernelY = kernel{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// SobelGradients returns the absolute horizontal and vertical derivatives of the grid.
// Pixels outside the grid are replaced by the nearest border pixel.
// See https://en.wikipedia.org/wiki/Sobel_operator
func SobelGradients(gray *mat.Dense) (gx, gy *mat.Dense) {
	rows, cols := gray.Dims()
	if rows == 0 || cols == 0 {
		return &mat.Dense{}, &mat.Dense{}
	}
	gx = mat.NewDense(rows, cols, nil)
	gy = mat.NewDense(rows, cols, nil)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			var sumX, sumY float64
			for ky := 0; ky < 3; ky++ {
				y := clamp(i+ky-1, rows)
				for kx := 0; kx < 3; kx++ {
					px := gray.At(y, clamp(j+kx-1, cols))
					sumX += px * kernelX[ky][kx]
					sumY += px * kernelY[ky][kx]
				}
			}
			gx.Set(i, j, math.Abs(sumX))
			gy.Set(i, j, math.Abs(sumY))
		}
	}
	return gx, gy
}

// clamp replicates the edge for indexes falling outside of [0, n).
func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
