package store

import (
	"strconv"
	"strings"
)

// ChunkKey encodes chunk coordinates as a bucket key.
// Example: coords=[1, 4] -> "1.4". Scalar arrays use "0".
func ChunkKey(coords []int) string {
	if len(coords) == 0 {
		return "0"
	}
	if len(coords) == 1 {
		return strconv.Itoa(coords[0])
	}
	var sb strings.Builder
	for i, c := range coords {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.Itoa(c))
	}
	return sb.String()
}

// gridShape returns the number of chunks in each dimension,
// ceil(shape[i] / chunks[i]).
func gridShape(shape, chunks []int) []int {
	grid := make([]int, len(shape))
	for i := range shape {
		grid[i] = (shape[i] + chunks[i] - 1) / chunks[i]
	}
	return grid
}

// strides computes the C-order element strides for a shape.
func strides(shape []int) []int {
	s := make([]int, len(shape))
	stride := 1
	for i := len(shape) - 1; i >= 0; i-- {
		s[i] = stride
		stride *= shape[i]
	}
	return s
}
