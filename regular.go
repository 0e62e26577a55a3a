package omgrid

import "math"

// Wrap controls how coordinates outside the grid extent behave on a regular
// grid.
type Wrap int

const (
	// WrapNone fails resolution outside the extent.
	WrapNone Wrap = iota
	// WrapLongitude wraps the x axis modulo nx; latitude is still
	// bounds-checked.
	WrapLongitude
	// WrapBoth wraps both axes, for global grids whose stored array tiles
	// periodically.
	WrapBoth
)

// RegularGrid is an evenly spaced latitude/longitude grid, row-major with y
// varying slowest.
type RegularGrid struct {
	nx, ny         int
	latMin, lonMin float64
	dx, dy         float64
	wrap           Wrap
}

// NewRegularGrid validates the parameters and builds a regular grid.
// latMin/lonMin are the coordinates of point (0, 0); dx/dy the spacing in
// degrees.
func NewRegularGrid(nx, ny int, latMin, lonMin, dx, dy float64, wrap Wrap) (*RegularGrid, error) {
	if nx <= 0 {
		return nil, &ErrInvalidParameter{Name: "nx", Value: float64(nx)}
	}
	if ny <= 0 {
		return nil, &ErrInvalidParameter{Name: "ny", Value: float64(ny)}
	}
	if dx <= 0 {
		return nil, &ErrInvalidParameter{Name: "dx", Value: dx}
	}
	if dy <= 0 {
		return nil, &ErrInvalidParameter{Name: "dy", Value: dy}
	}
	return &RegularGrid{nx: nx, ny: ny, latMin: latMin, lonMin: lonMin, dx: dx, dy: dy, wrap: wrap}, nil
}

func (g *RegularGrid) Nx() int { return g.nx }
func (g *RegularGrid) Ny() int { return g.ny }

func (g *RegularGrid) Count() int { return g.nx * g.ny }

// LatMax and LonMax are always derived from the origin and spacing so the
// extent cannot drift from the stored parameters.
func (g *RegularGrid) LatMax() float64 { return g.latMin + g.dy*float64(g.ny-1) }
func (g *RegularGrid) LonMax() float64 { return g.lonMin + g.dx*float64(g.nx-1) }

// FindPoint maps (lat, lon) to the nearest grid point. Rounding is ties away
// from zero, matching the reference numeric behaviour bit for bit.
func (g *RegularGrid) FindPoint(lat, lon float64) (Point, error) {
	// Non-finite coordinates never resolve; the wrapped axes below would
	// otherwise fold them onto a real point.
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return Point{}, ErrOutOfBounds
	}
	x := int(math.Round((lon - g.lonMin) / g.dx))
	y := int(math.Round((lat - g.latMin) / g.dy))

	if g.wrap == WrapLongitude || g.wrap == WrapBoth {
		x = mod(x, g.nx)
	}
	if g.wrap == WrapBoth {
		y = mod(y, g.ny)
	}
	if x < 0 || x >= g.nx || y < 0 || y >= g.ny {
		return Point{}, ErrOutOfBounds
	}
	return Point{Index: y*g.nx + x, X: x, Y: y}, nil
}

// PointOf reconstructs the point for a flat spatial index.
func (g *RegularGrid) PointOf(index int) (Point, error) {
	if index < 0 || index >= g.Count() {
		return Point{}, ErrOutOfBounds
	}
	return Point{Index: index, X: index % g.nx, Y: index / g.nx}, nil
}

// Coordinates returns the latitude and longitude of a grid point.
func (g *RegularGrid) Coordinates(p Point) (lat, lon float64) {
	return g.latMin + float64(p.Y)*g.dy, g.lonMin + float64(p.X)*g.dx
}
