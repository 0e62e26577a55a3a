package omgrid

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/nordvik-met/omgrid/store"
)

// Value is the result of a point query. Lat/Lon are the coordinates of the
// stored grid point actually read, not the query coordinates.
type Value struct {
	Point Point
	Lat   float64
	Lon   float64
	Value float32
}

// Coordinate is a query location for batch lookups.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Dataset combines a grid geometry with a chunked array store and answers
// point queries. The grid is validated against the store once at open time;
// queries never re-check geometry.
type Dataset struct {
	grid  Grid
	store *store.Reader
}

// Open opens the array store at url and validates it against grid. A geometry
// mismatch aborts here rather than returning wrong data later.
func Open(ctx context.Context, url string, grid Grid) (*Dataset, error) {
	r, err := store.NewReader(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := Validate(grid, r.Dimensions()); err != nil {
		r.Close()
		return nil, err
	}
	return &Dataset{grid: grid, store: r}, nil
}

// Validate checks that the trailing two (spatial) dimensions of an array hold
// exactly the points the grid describes. Gaussian planes must be stored as a
// single row carrying all points.
func Validate(grid Grid, dims []int) error {
	if len(dims) < 2 {
		return &ErrShapeMismatch{GridPoints: grid.Count(), Dimensions: dims}
	}
	ny, nx := dims[len(dims)-2], dims[len(dims)-1]
	if ny*nx != grid.Count() {
		return &ErrShapeMismatch{GridPoints: grid.Count(), Dimensions: dims}
	}
	if _, ok := grid.(*GaussianGrid); ok && nx != grid.Count() {
		return &ErrShapeMismatch{GridPoints: grid.Count(), Dimensions: dims}
	}
	return nil
}

// Grid returns the dataset's grid.
func (d *Dataset) Grid() Grid { return d.grid }

// Store returns the underlying array reader.
func (d *Dataset) Store() *store.Reader { return d.store }

// Query resolves (lat, lon) to the nearest stored grid point and reads its
// value. leading indexes any axes before the spatial pair (time, level,
// ensemble member). ErrOutOfBounds is a normal outcome for off-grid queries
// and is distinct from a stored NaN.
func (d *Dataset) Query(ctx context.Context, lat, lon float64, leading ...int) (Value, error) {
	p, err := d.grid.FindPoint(lat, lon)
	if err != nil {
		return Value{}, err
	}

	dims := d.store.Dimensions()
	if len(leading) != len(dims)-2 {
		return Value{}, fmt.Errorf("expected %d leading indices, got %d", len(dims)-2, len(leading))
	}
	nx := dims[len(dims)-1]
	coords := make([]int, 0, len(dims))
	coords = append(coords, leading...)
	coords = append(coords, p.Index/nx, p.Index%nx)

	v, err := d.store.ValueAt(ctx, coords...)
	if err != nil {
		return Value{}, err
	}
	plat, plon := d.grid.Coordinates(p)
	return Value{Point: p, Lat: plat, Lon: plon, Value: v}, nil
}

// QueryMany answers a batch of coordinates concurrently. Results keep the
// order of coords; the first error cancels the remaining lookups.
func (d *Dataset) QueryMany(ctx context.Context, coords []Coordinate, leading ...int) ([]Value, error) {
	results := make([]Value, len(coords))
	g, ctx := errgroup.WithContext(ctx)
	for i, c := range coords {
		g.Go(func() error {
			v, err := d.Query(ctx, c.Lat, c.Lon, leading...)
			if err != nil {
				return fmt.Errorf("query (%v, %v): %w", c.Lat, c.Lon, err)
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Close closes the underlying store.
func (d *Dataset) Close() error {
	return d.store.Close()
}
