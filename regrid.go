package omgrid

import (
	"math"

	"github.com/gomlx/gomlx/pkg/core/tensors"
)

// ToRegular resamples one flat Gaussian spatial plane onto a regular grid by
// nearest stored point and returns it as a [ny, nx] tensor. Target cells
// outside the Gaussian latitude coverage become NaN. len(data) must equal
// src.Count().
func ToRegular(src *GaussianGrid, data []float32, dst *RegularGrid) (*tensors.Tensor, error) {
	if len(data) != src.Count() {
		return nil, &ErrShapeMismatch{GridPoints: src.Count(), Dimensions: []int{len(data)}}
	}
	out := make([]float32, dst.Count())
	for y := 0; y < dst.ny; y++ {
		lat := dst.latMin + float64(y)*dst.dy
		for x := 0; x < dst.nx; x++ {
			p, err := src.FindPoint(lat, dst.lonMin+float64(x)*dst.dx)
			if err != nil {
				out[y*dst.nx+x] = float32(math.NaN())
				continue
			}
			out[y*dst.nx+x] = data[p.Index]
		}
	}
	return tensors.FromFlatDataAndDimensions(out, dst.ny, dst.nx), nil
}
