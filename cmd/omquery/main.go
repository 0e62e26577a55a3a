// Command omquery resolves a lat/lon against a stored array and prints the
// grid point and value.
//
// Usage:
//
//	omquery -store file:///data/era5_temp2m -grid regular \
//	    -nx 1440 -ny 721 -lat-min -90 -lon-min -180 -dx 0.25 -dy 0.25 \
//	    -lat 52.52 -lon 13.41
//	omquery -store file:///data/ifs_temp2m -grid gaussian -gaussian-type o1280 \
//	    -lat 52.52 -lon 13.41
//	omquery -store file:///data/era5_temp2m -domain era5 -lat 52.52 -lon 13.41
//
// -domain selects a named model domain from the built-in catalog and
// overrides the per-parameter grid flags; -list-domains prints the catalog.
//
// The store URL may come from the OMGRID_STORE environment variable (a .env
// file is honoured). Off-grid queries print "no data" and exit 0; geometry
// errors are fatal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	_ "gocloud.dev/blob/fileblob"

	"github.com/nordvik-met/omgrid"
)

func main() {
	_ = godotenv.Load()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	storeURL := flag.String("store", os.Getenv("OMGRID_STORE"), "Blob URL of the array store (env OMGRID_STORE)")
	domain := flag.String("domain", "", "Named model domain from the catalog (overrides the grid flags)")
	listDomains := flag.Bool("list-domains", false, "Print the domain catalog and exit")
	gridKind := flag.String("grid", "regular", "Grid family: regular or gaussian")
	nx := flag.Int("nx", 0, "Regular grid: points per row")
	ny := flag.Int("ny", 0, "Regular grid: number of rows")
	latMin := flag.Float64("lat-min", 0, "Regular grid: latitude of row 0")
	lonMin := flag.Float64("lon-min", 0, "Regular grid: longitude of column 0")
	dx := flag.Float64("dx", 0, "Regular grid: longitude spacing in degrees")
	dy := flag.Float64("dy", 0, "Regular grid: latitude spacing in degrees")
	wrapStr := flag.String("wrap", "none", "Regular grid wrap policy: none, lon or both")
	gaussianType := flag.String("gaussian-type", "", "Gaussian grid type (e.g. o1280)")
	crs := flag.String("crs", "", "CRS remark to extract the gaussian type from when -gaussian-type is empty")
	lat := flag.Float64("lat", 0, "Query latitude")
	lon := flag.Float64("lon", 0, "Query longitude")
	leadingStr := flag.String("leading", "", "Comma-separated indices for leading (time/level) axes")
	flag.Parse()

	if *listDomains {
		for _, name := range omgrid.Domains() {
			fmt.Println(name)
		}
		return
	}

	if *storeURL == "" {
		slog.Error("no store URL; pass -store or set OMGRID_STORE")
		os.Exit(2)
	}

	var grid omgrid.Grid
	var err error
	if *domain != "" {
		grid, err = omgrid.DomainGrid(*domain)
	} else {
		grid, err = buildGrid(*gridKind, *nx, *ny, *latMin, *lonMin, *dx, *dy, *wrapStr, *gaussianType, *crs)
	}
	if err != nil {
		slog.Error("invalid grid", "error", err)
		os.Exit(2)
	}
	leading, err := parseLeading(*leadingStr)
	if err != nil {
		slog.Error("invalid -leading", "error", err)
		os.Exit(2)
	}

	ctx := context.Background()
	ds, err := omgrid.Open(ctx, *storeURL, grid)
	if err != nil {
		slog.Error("failed to open dataset", "store", *storeURL, "error", err)
		os.Exit(1)
	}
	defer ds.Close()

	v, err := ds.Query(ctx, *lat, *lon, leading...)
	if errors.Is(err, omgrid.ErrOutOfBounds) {
		fmt.Println("no data at this point")
		return
	}
	if err != nil {
		slog.Error("query failed", "lat", *lat, "lon", *lon, "error", err)
		os.Exit(1)
	}
	fmt.Printf("x=%d y=%d index=%d lat=%g lon=%g value=%g\n",
		v.Point.X, v.Point.Y, v.Point.Index, v.Lat, v.Lon, v.Value)
}

func buildGrid(kind string, nx, ny int, latMin, lonMin, dx, dy float64, wrapStr, gaussianType, crs string) (omgrid.Grid, error) {
	switch kind {
	case "regular":
		wrap, err := parseWrap(wrapStr)
		if err != nil {
			return nil, err
		}
		return omgrid.NewRegularGrid(nx, ny, latMin, lonMin, dx, dy, wrap)
	case "gaussian":
		if gaussianType != "" {
			t, err := omgrid.ParseGaussianType(gaussianType)
			if err != nil {
				return nil, err
			}
			return omgrid.NewGaussianGrid(t)
		}
		t, err := omgrid.GaussianTypeFromCRS(crs)
		if err != nil {
			return nil, err
		}
		return omgrid.NewGaussianGrid(t)
	}
	return nil, fmt.Errorf("unknown grid family %q", kind)
}

func parseWrap(s string) (omgrid.Wrap, error) {
	switch s {
	case "none":
		return omgrid.WrapNone, nil
	case "lon":
		return omgrid.WrapLongitude, nil
	case "both":
		return omgrid.WrapBoth, nil
	}
	return 0, fmt.Errorf("unknown wrap policy %q", s)
}

func parseLeading(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
