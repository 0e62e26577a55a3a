package omgrid

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a query coordinate falls outside the
	// grid's coverage under the configured wrap policy. It is an expected
	// per-query outcome ("no data at this point"), never fatal.
	ErrOutOfBounds = errors.New("coordinate outside grid coverage")

	// ErrUnsupportedGridType is returned when a requested Gaussian grid type
	// is not present in the catalog.
	ErrUnsupportedGridType = errors.New("unsupported gaussian grid type")

	// ErrUnknownDomain is returned when a model domain name is not in the
	// domain catalog.
	ErrUnknownDomain = errors.New("unknown model domain")
)

// ErrShapeMismatch indicates that a grid's point count disagrees with the
// dimensions declared by an array store. The dataset is unusable with this
// geometry and opening must abort rather than return wrong data silently.
type ErrShapeMismatch struct {
	GridPoints int
	Dimensions []int
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("grid describes %d points but store dimensions are %v", e.GridPoints, e.Dimensions)
}

// ErrInvalidParameter indicates a non-positive grid construction parameter.
type ErrInvalidParameter struct {
	Name  string
	Value float64
}

func (e *ErrInvalidParameter) Error() string {
	return fmt.Sprintf("invalid grid parameter %s: %v", e.Name, e.Value)
}
