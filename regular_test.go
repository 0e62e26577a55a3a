package omgrid_test

import (
	"errors"
	"math"
	"testing"

	"github.com/nordvik-met/omgrid"
)

func mustRegular(t *testing.T, nx, ny int, latMin, lonMin, dx, dy float64, wrap omgrid.Wrap) *omgrid.RegularGrid {
	t.Helper()
	g, err := omgrid.NewRegularGrid(nx, ny, latMin, lonMin, dx, dy, wrap)
	if err != nil {
		t.Fatalf("NewRegularGrid failed: %v", err)
	}
	return g
}

func TestNewRegularGridInvalidParameters(t *testing.T) {
	tests := []struct {
		name   string
		nx, ny int
		dx, dy float64
	}{
		{"zero nx", 0, 4, 1, 1},
		{"negative ny", 4, -1, 1, 1},
		{"zero dx", 4, 4, 0, 1},
		{"negative dy", 4, 4, 1, -0.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := omgrid.NewRegularGrid(tc.nx, tc.ny, 0, 0, tc.dx, tc.dy, omgrid.WrapNone)
			var ip *omgrid.ErrInvalidParameter
			if !errors.As(err, &ip) {
				t.Fatalf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestRegularGridRoundTrip(t *testing.T) {
	g := mustRegular(t, 8, 5, -10, 100, 0.5, 0.25, omgrid.WrapNone)
	for y := 0; y < 5; y++ {
		for x := 0; x < 8; x++ {
			lat, lon := g.Coordinates(omgrid.Point{X: x, Y: y})
			p, err := g.FindPoint(lat, lon)
			if err != nil {
				t.Fatalf("FindPoint(%v, %v) failed: %v", lat, lon, err)
			}
			want := omgrid.Point{Index: y*8 + x, X: x, Y: y}
			if p != want {
				t.Errorf("FindPoint(%v, %v) = %+v, want %+v", lat, lon, p, want)
			}
		}
	}
}

// Half values must round away from zero, not to even.
func TestRegularGridRoundingPin(t *testing.T) {
	g := mustRegular(t, 4, 4, 0, 0, 1, 1, omgrid.WrapNone)
	p, err := g.FindPoint(0, 0.5)
	if err != nil {
		t.Fatalf("FindPoint failed: %v", err)
	}
	if p.X != 1 {
		t.Errorf("lon=0.5 resolved to x=%d, want 1 (ties away from zero)", p.X)
	}
}

// lon=-1.6 gives raw x=-0.6, rounds to -1 and wraps to nx-1.
func TestRegularGridWrapPin(t *testing.T) {
	g := mustRegular(t, 2, 2, 0, -1, 1, 1, omgrid.WrapLongitude)
	p, err := g.FindPoint(0, -1.6)
	if err != nil {
		t.Fatalf("FindPoint failed: %v", err)
	}
	if p.X != 1 || p.Y != 0 {
		t.Errorf("got (x=%d, y=%d), want (x=1, y=0)", p.X, p.Y)
	}
}

func TestRegularGridWrapPolicies(t *testing.T) {
	// 10° global-ish toy grid.
	tests := []struct {
		name     string
		wrap     omgrid.Wrap
		lat, lon float64
		wantErr  bool
		wantX    int
		wantY    int
	}{
		{"none inside", omgrid.WrapNone, 0, 0, false, 18, 9},
		{"none lon outside", omgrid.WrapNone, 0, 185, true, 0, 0},
		{"none lat outside", omgrid.WrapNone, 95, 0, true, 0, 0},
		{"lon wraps", omgrid.WrapLongitude, 0, 185, false, 1, 9},
		{"lon keeps lat check", omgrid.WrapLongitude, 95, 0, true, 0, 0},
		{"both wraps lat", omgrid.WrapBoth, 95, 0, false, 18, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := mustRegular(t, 36, 18, -90, -180, 10, 10, tc.wrap)
			p, err := g.FindPoint(tc.lat, tc.lon)
			if tc.wantErr {
				if !errors.Is(err, omgrid.ErrOutOfBounds) {
					t.Fatalf("expected ErrOutOfBounds, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FindPoint failed: %v", err)
			}
			if p.X != tc.wantX || p.Y != tc.wantY {
				t.Errorf("got (x=%d, y=%d), want (x=%d, y=%d)", p.X, p.Y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestRegularGridDerivedExtent(t *testing.T) {
	g := mustRegular(t, 1440, 721, -90, -180, 0.25, 0.25, omgrid.WrapNone)
	if got := g.LatMax(); got != 90 {
		t.Errorf("LatMax = %v, want 90", got)
	}
	if got := g.LonMax(); got != 179.75 {
		t.Errorf("LonMax = %v, want 179.75", got)
	}
}

// ERA5 0.25° global grid, Berlin.
func TestRegularGridERA5Berlin(t *testing.T) {
	g := mustRegular(t, 1440, 721, -90, -180, 0.25, 0.25, omgrid.WrapNone)
	p, err := g.FindPoint(52.52, 13.41)
	if err != nil {
		t.Fatalf("FindPoint failed: %v", err)
	}
	// (13.41+180)/0.25 = 773.64 rounds to 774; (52.52+90)/0.25 = 570.08
	// rounds to 570.
	want := omgrid.Point{Index: 821574, X: 774, Y: 570}
	if p != want {
		t.Errorf("got %+v, want %+v", p, want)
	}
	lat, lon := g.Coordinates(p)
	if math.Abs(lat-52.52) > 0.125 || math.Abs(lon-13.41) > 0.125 {
		t.Errorf("resolved point (%v, %v) further than half a cell from the query", lat, lon)
	}
}

// A NaN coordinate converts to a platform-defined integer; under a wrap
// policy the modulo would fold that onto a real point. All non-finite
// coordinates must fail instead.
func TestRegularGridNonFiniteCoordinates(t *testing.T) {
	for _, wrap := range []omgrid.Wrap{omgrid.WrapNone, omgrid.WrapLongitude, omgrid.WrapBoth} {
		g := mustRegular(t, 36, 18, -90, -180, 10, 10, wrap)
		coords := []struct{ lat, lon float64 }{
			{math.NaN(), 0},
			{0, math.NaN()},
			{math.Inf(1), 0},
			{0, math.Inf(-1)},
		}
		for _, c := range coords {
			if _, err := g.FindPoint(c.lat, c.lon); !errors.Is(err, omgrid.ErrOutOfBounds) {
				t.Errorf("wrap=%v FindPoint(%v, %v): expected ErrOutOfBounds, got %v", wrap, c.lat, c.lon, err)
			}
		}
	}
}

func TestRegularGridPointOf(t *testing.T) {
	g := mustRegular(t, 8, 5, 0, 0, 1, 1, omgrid.WrapNone)
	p, err := g.PointOf(19)
	if err != nil {
		t.Fatalf("PointOf failed: %v", err)
	}
	if p.X != 3 || p.Y != 2 {
		t.Errorf("PointOf(19) = %+v, want x=3 y=2", p)
	}
	if _, err := g.PointOf(40); !errors.Is(err, omgrid.ErrOutOfBounds) {
		t.Errorf("PointOf(40) expected ErrOutOfBounds, got %v", err)
	}
}
