package omgrid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nordvik-met/omgrid"
)

func TestToRegular(t *testing.T) {
	src := mustGaussian(t, omgrid.O320)
	data := make([]float32, src.Count())
	for i := range data {
		data[i] = float32(i)
	}

	dst := mustRegular(t, 5, 5, 40, 10, 1, 1, omgrid.WrapNone)
	out, err := omgrid.ToRegular(src, data, dst)
	require.NoError(t, err)
	require.Equal(t, []int{5, 5}, out.Shape().Dimensions)

	rows := out.Value().([][]float32)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			p, err := src.FindPoint(40+float64(y), 10+float64(x))
			require.NoError(t, err)
			require.Equal(t, float32(p.Index), rows[y][x], "cell (%d, %d)", y, x)
		}
	}
}

func TestToRegularOutsideCoverage(t *testing.T) {
	src := mustGaussian(t, omgrid.O320)
	data := make([]float32, src.Count())

	// Rows at 89, 90, 91: only the first is inside the gaussian coverage.
	dst := mustRegular(t, 2, 3, 89, 0, 1, 1, omgrid.WrapNone)
	out, err := omgrid.ToRegular(src, data, dst)
	require.NoError(t, err)

	rows := out.Value().([][]float32)
	require.False(t, math.IsNaN(float64(rows[0][0])))
	require.True(t, math.IsNaN(float64(rows[1][0])))
	require.True(t, math.IsNaN(float64(rows[2][0])))
}

func TestToRegularLengthMismatch(t *testing.T) {
	src := mustGaussian(t, omgrid.O320)
	dst := mustRegular(t, 2, 2, 0, 0, 1, 1, omgrid.WrapNone)
	_, err := omgrid.ToRegular(src, make([]float32, 100), dst)
	var sm *omgrid.ErrShapeMismatch
	require.ErrorAs(t, err, &sm)
}
