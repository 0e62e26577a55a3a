// Package omgrid resolves geographic coordinates against gridded
// meteorological raster data. It maps (latitude, longitude) queries to flat
// storage indices for regular latitude/longitude grids and reduced Gaussian
// grids, and combines a grid with a chunked array store to answer point
// queries. The storage layout deliberately carries no grid geometry; geometry
// is reconstructed from explicit parameters or the named Gaussian catalog and
// validated against the store's declared dimensions at open time.
package omgrid

// Point is a resolved grid point. Index is the flat offset into the spatial
// axes only; leading time/level axes are the caller's responsibility to add
// as a stride multiple.
type Point struct {
	Index int
	X     int
	Y     int
}

// Grid maps between geographic coordinates and flat storage indices.
// Implementations are immutable after construction and safe for concurrent
// use without locking. Both resolvers answer "nearest stored grid point",
// never a weighted blend.
type Grid interface {
	// FindPoint returns the grid point nearest to (lat, lon), or
	// ErrOutOfBounds if the coordinate is not covered.
	FindPoint(lat, lon float64) (Point, error)

	// PointOf reconstructs the full point for a flat spatial index.
	PointOf(index int) (Point, error)

	// Coordinates returns the latitude and longitude of a grid point.
	// It is the exact inverse of FindPoint only at stored points; arbitrary
	// queries are lossy by design.
	Coordinates(p Point) (lat, lon float64)

	// Count returns the total number of spatial points.
	Count() int
}

// mod is the true modulo, safe for negative values.
func mod(v, n int) int {
	return ((v % n) + n) % n
}
