package omgrid_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/nordvik-met/omgrid"
)

func TestDomainGridERA5(t *testing.T) {
	g, err := omgrid.DomainGrid("era5")
	if err != nil {
		t.Fatalf("DomainGrid(era5) failed: %v", err)
	}
	reg, ok := g.(*omgrid.RegularGrid)
	if !ok {
		t.Fatalf("era5 resolved to %T, want *RegularGrid", g)
	}
	if reg.Count() != 1440*721 {
		t.Errorf("Count = %d, want %d", reg.Count(), 1440*721)
	}
	p, err := g.FindPoint(52.52, 13.41)
	if err != nil {
		t.Fatalf("FindPoint failed: %v", err)
	}
	if p.X != 774 || p.Y != 570 {
		t.Errorf("Berlin resolved to (x=%d, y=%d), want (x=774, y=570)", p.X, p.Y)
	}
}

func TestDomainGridGaussian(t *testing.T) {
	tests := []struct {
		name string
		typ  omgrid.GaussianType
	}{
		{"ecmwf_ifs", omgrid.O1280},
		{"ifs", omgrid.O1280},
		{"seas5", omgrid.O320},
		{"ec46_weekly", omgrid.O320},
	}
	for _, tc := range tests {
		g, err := omgrid.DomainGrid(tc.name)
		if err != nil {
			t.Fatalf("DomainGrid(%s) failed: %v", tc.name, err)
		}
		gauss, ok := g.(*omgrid.GaussianGrid)
		if !ok {
			t.Fatalf("%s resolved to %T, want *GaussianGrid", tc.name, g)
		}
		if gauss.Type() != tc.typ {
			t.Errorf("%s: type = %v, want %v", tc.name, gauss.Type(), tc.typ)
		}
	}
}

// Global domains wrap longitude; bounded ones do not.
func TestDomainGridWrap(t *testing.T) {
	g, err := omgrid.DomainGrid("gfs025")
	if err != nil {
		t.Fatalf("DomainGrid(gfs025) failed: %v", err)
	}
	p, err := g.FindPoint(0, 185)
	if err != nil {
		t.Fatalf("FindPoint(0, 185) failed: %v", err)
	}
	if p.X != 20 {
		t.Errorf("lon=185 resolved to x=%d, want 20", p.X)
	}

	arome, err := omgrid.DomainGrid("arome_france")
	if err != nil {
		t.Fatalf("DomainGrid(arome_france) failed: %v", err)
	}
	if _, err := arome.FindPoint(48.85, 100); !errors.Is(err, omgrid.ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds outside the arome_france extent, got %v", err)
	}
}

func TestDomainGridUnknown(t *testing.T) {
	_, err := omgrid.DomainGrid("hrrr_conus")
	if !errors.Is(err, omgrid.ErrUnknownDomain) {
		t.Errorf("expected ErrUnknownDomain, got %v", err)
	}
}

func TestDomainsCatalog(t *testing.T) {
	names := omgrid.Domains()
	if !sort.StringsAreSorted(names) {
		t.Error("Domains() not sorted")
	}
	if len(names) < 80 {
		t.Errorf("catalog has %d domains, want at least 80", len(names))
	}
	for _, name := range names {
		g, err := omgrid.DomainGrid(name)
		if err != nil {
			t.Errorf("DomainGrid(%s) failed: %v", name, err)
			continue
		}
		if g.Count() <= 0 {
			t.Errorf("DomainGrid(%s): non-positive point count", name)
		}
	}
}
