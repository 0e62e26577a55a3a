package omgrid

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"
)

// GaussianType is a catalog key for a reduced Gaussian grid. The catalog is
// the authoritative geometry source: the storage layout never persists row
// tables. Currently the ECMWF octahedral "O" family, whose row lengths follow
// a closed form; adding a grid family with tabulated rows is a catalog edit,
// not a structural change.
type GaussianType int

const (
	O320 GaussianType = iota
	O640
	O1280
)

// latitudeLines returns L, the number of latitude rows per hemisphere, or 0
// for an unknown type.
func (t GaussianType) latitudeLines() int {
	switch t {
	case O320:
		return 320
	case O640:
		return 640
	case O1280:
		return 1280
	}
	return 0
}

func (t GaussianType) String() string {
	switch t {
	case O320:
		return "o320"
	case O640:
		return "o640"
	case O1280:
		return "o1280"
	}
	return fmt.Sprintf("GaussianType(%d)", int(t))
}

// ParseGaussianType maps a catalog token (case-insensitive) to a GaussianType.
func ParseGaussianType(s string) (GaussianType, error) {
	switch strings.ToLower(s) {
	case "o320":
		return O320, nil
	case "o640":
		return O640, nil
	case "o1280":
		return O1280, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedGridType, s)
}

// GaussianTypeFromCRS extracts a Gaussian grid type from a free-form
// coordinate-reference-system remark, e.g. "reduced gaussian grid o1280".
// The remark is treated as an opaque token list; only the type token is
// matched against the catalog.
func GaussianTypeFromCRS(remark string) (GaussianType, error) {
	tokens := strings.FieldsFunc(remark, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, tok := range tokens {
		if t, err := ParseGaussianType(tok); err == nil {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: no grid type token in %q", ErrUnsupportedGridType, remark)
}

// RowTieBreak selects the row when a latitude is exactly equidistant between
// two row centers.
type RowTieBreak int

const (
	// TieLowRow picks the smaller row index, the row listed first in the
	// table (nearer the north pole).
	TieLowRow RowTieBreak = iota
	// TieHighRow picks the larger row index.
	TieHighRow
)

// GaussianOption configures a GaussianGrid at construction.
type GaussianOption func(*GaussianGrid)

// WithRowTieBreak sets the equidistant-row policy.
func WithRowTieBreak(tb RowTieBreak) GaussianOption {
	return func(g *GaussianGrid) { g.tieBreak = tb }
}

// WithLatitudeMargin sets how far (degrees) beyond the first/last row center
// a latitude may fall before it is out of bounds. Default is half a row
// spacing.
func WithLatitudeMargin(deg float64) GaussianOption {
	return func(g *GaussianGrid) { g.margin = deg }
}

// GaussianGrid is a reduced Gaussian grid: each latitude row has its own
// longitude count, longitudes within a row are evenly spaced over the full
// 360° circle with no meridian offset, and rows are ordered north to south.
// Row latitudes, lengths and prefix-sum offsets are precomputed once at
// construction and shared read-only across all queries.
type GaussianGrid struct {
	typ        GaussianType
	rowLats    []float64
	rowLengths []int
	rowOffsets []int
	total      int
	tieBreak   RowTieBreak
	margin     float64
}

// NewGaussianGrid builds the grid for a catalog type. The octahedral family
// has 2L rows of 20+4i points (i counted from each pole), row latitudes
// approximated as evenly spaced with dy = 180/(2L+0.5), and 4L(L+9) points
// in total.
func NewGaussianGrid(typ GaussianType, opts ...GaussianOption) (*GaussianGrid, error) {
	l := typ.latitudeLines()
	if l == 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedGridType, typ)
	}

	rows := 2 * l
	dy := 180.0 / (2.0*float64(l) + 0.5)
	g := &GaussianGrid{
		typ:        typ,
		rowLats:    make([]float64, rows),
		rowLengths: make([]int, rows),
		rowOffsets: make([]int, rows),
		margin:     dy / 2,
	}

	offset := 0
	for y := 0; y < rows; y++ {
		g.rowLats[y] = (float64(l-y) - 0.5) * dy
		g.rowLengths[y] = octahedralRowLength(l, y)
		g.rowOffsets[y] = offset
		offset += g.rowLengths[y]
	}
	g.total = offset

	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// octahedralRowLength returns the longitude count of row y (0 = northernmost)
// for an O-grid with L lines per hemisphere.
func octahedralRowLength(l, y int) int {
	if y < l {
		return 20 + 4*y
	}
	return 20 + 4*(2*l-1-y)
}

// Type returns the catalog key this grid was built from.
func (g *GaussianGrid) Type() GaussianType { return g.typ }

// Rows returns the number of latitude rows.
func (g *GaussianGrid) Rows() int { return len(g.rowLats) }

// RowLength returns the longitude count of row y.
func (g *GaussianGrid) RowLength(y int) int { return g.rowLengths[y] }

// RowLatitude returns the center latitude of row y.
func (g *GaussianGrid) RowLatitude(y int) float64 { return g.rowLats[y] }

func (g *GaussianGrid) Count() int { return g.total }

// FindPoint maps (lat, lon) to the nearest grid point. Longitude wraps the
// 0°/360° seam automatically; reduced Gaussian grids are always globally
// periodic in longitude.
func (g *GaussianGrid) FindPoint(lat, lon float64) (Point, error) {
	if math.IsNaN(lon) || math.IsInf(lon, 0) {
		return Point{}, ErrOutOfBounds
	}
	y, err := g.findRow(lat)
	if err != nil {
		return Point{}, err
	}
	n := g.rowLengths[y]
	lonNorm := lon - 360.0*math.Floor(lon/360.0)
	x := mod(int(math.Round(lonNorm*float64(n)/360.0)), n)
	return Point{Index: g.rowOffsets[y] + x, X: x, Y: y}, nil
}

// findRow binary-searches the strictly decreasing row latitudes for the row
// whose center is nearest lat.
func (g *GaussianGrid) findRow(lat float64) (int, error) {
	last := len(g.rowLats) - 1
	// NaN fails both range comparisons and would land on the last row.
	if math.IsNaN(lat) || lat > g.rowLats[0]+g.margin || lat < g.rowLats[last]-g.margin {
		return 0, ErrOutOfBounds
	}
	i := sort.Search(len(g.rowLats), func(i int) bool { return g.rowLats[i] <= lat })
	if i == 0 {
		return 0, nil
	}
	if i > last {
		return last, nil
	}
	above := g.rowLats[i-1] - lat
	below := lat - g.rowLats[i]
	switch {
	case above < below:
		return i - 1, nil
	case below < above:
		return i, nil
	case g.tieBreak == TieLowRow:
		return i - 1, nil
	default:
		return i, nil
	}
}

// PointOf reconstructs the point for a flat spatial index by binary search
// over the row offsets.
func (g *GaussianGrid) PointOf(index int) (Point, error) {
	if index < 0 || index >= g.total {
		return Point{}, ErrOutOfBounds
	}
	// Largest row offset <= index.
	y := sort.Search(len(g.rowOffsets), func(i int) bool { return g.rowOffsets[i] > index }) - 1
	return Point{Index: index, X: index - g.rowOffsets[y], Y: y}, nil
}

// Coordinates returns the latitude and longitude of a grid point. Longitudes
// are reported in [0, 360).
func (g *GaussianGrid) Coordinates(p Point) (lat, lon float64) {
	return g.rowLats[p.Y], float64(p.X) * 360.0 / float64(g.rowLengths[p.Y])
}
