package seamcarver

import (
	"fmt"
	"image"

	"gonum.org/v1/gonum/mat"
)

// Energy values assigned to the masked pixels. They override the gradient value,
// so masked pixels always sort to the extremes of the seam cost ordering.
const (
	RemovalEnergy    = -1e5
	ProtectionEnergy = 1e5
)

// EnergyMap computes the importance of each pixel as the mean of the absolute
// Sobel derivatives of its luminance, then overlays the removal and protection masks.
// When a pixel is marked in both masks the protection wins.
// A nil mask is treated as all-clear.
func EnergyMap(img *image.NRGBA, removal, protection *Mask) *mat.Dense {
	dx, dy := img.Bounds().Dx(), img.Bounds().Dy()
	if dx == 0 || dy == 0 {
		panic("seamcarver: energy map of an empty image")
	}

	gx, gy := SobelGradients(Grayscale(img))

	energy := mat.NewDense(dy, dx, nil)
	energy.Add(gx, gy)
	energy.Scale(0.5, energy)

	for _, bias := range []struct {
		mask  *Mask
		value float64
	}{
		{removal, RemovalEnergy},
		{protection, ProtectionEnergy},
	} {
		if bias.mask == nil {
			continue
		}
		if r, c := bias.mask.Dims(); r != dy || c != dx {
			panic(fmt.Sprintf("seamcarver: mask size %dx%d does not match image size %dx%d", r, c, dy, dx))
		}
		for i := 0; i < dy; i++ {
			row := energy.RawRowView(i)
			for j := range row {
				if bias.mask.data[i*dx+j] {
					row[j] = bias.value
				}
			}
		}
	}
	return energy
}
