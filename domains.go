package omgrid

import (
	"fmt"
	"sort"
)

// domainGrids maps model dataset names to their grid geometry. The entries
// mirror the published geometry of each upstream model run. Domains on
// projected grids (Lambert, stereographic, rotated lat/lon) are not
// representable by a lat/lon grid and are omitted, as are the N-family
// reduced Gaussian domains whose row tables are not in the catalog.
var domainGrids = map[string]func() (Grid, error){
	// Copernicus climate data store.
	"era5":            regularDomain(1440, 721, -90, -180, 0.25, 0.25),
	"era5_daily":      regularDomain(1440, 721, -90, -180, 0.25, 0.25),
	"era5_ocean":      regularDomain(720, 361, -90, -180, 0.5, 0.5),
	"era5_ensemble":   regularDomain(720, 361, -90, -180, 0.5, 0.5),
	"era5_land":       regularDomain(3600, 1801, -90, -180, 0.1, 0.1),
	"era5_land_daily": regularDomain(3600, 1801, -90, -180, 0.1, 0.1),

	"ecmwf_ifs":                      gaussianDomain(O1280),
	"ecmwf_ifs_analysis":             gaussianDomain(O1280),
	"ecmwf_ifs_analysis_long_window": gaussianDomain(O1280),
	"ecmwf_ifs_long_window":          gaussianDomain(O1280),

	// ECMWF open data.
	"ifs04":           regularDomain(900, 451, -90, -180, 360.0/900, 180.0/450),
	"ifs04_ensemble":  regularDomain(900, 451, -90, -180, 360.0/900, 180.0/450),
	"ifs025":          regularDomain(1440, 721, -90, -180, 360.0/1440, 180.0/720),
	"ifs025_ensemble": regularDomain(1440, 721, -90, -180, 360.0/1440, 180.0/720),
	"wam025":          regularDomain(1440, 721, -90, -180, 360.0/1440, 180.0/720),
	"wam025_ensemble": regularDomain(1440, 721, -90, -180, 360.0/1440, 180.0/720),
	"aifs025":         regularDomain(1440, 721, -90, -180, 360.0/1440, 180.0/720),
	"aifs025_single":  regularDomain(1440, 721, -90, -180, 360.0/1440, 180.0/720),
	"aifs025_ensemble": regularDomain(1440, 721, -90, -180, 360.0/1440, 180.0/720),

	"ifs": gaussianDomain(O1280),
	"wam": gaussianDomain(O1280),

	// ECMWF seasonal and extended range.
	"seas5":         gaussianDomain(O320),
	"seas5_daily":   gaussianDomain(O320),
	"seas5_monthly": gaussianDomain(O320),
	"ec46":          gaussianDomain(O320),
	"ec46_weekly":   gaussianDomain(O320),

	"harmonie_arome_netherlands": regularDomain(390, 390, 49, 0, 0.029, 0.018),

	"gdps": regularDomain(2560, 1920, -90+180.0/1920/2, -180+360.0/2560/2, 360.0/2560, 180.0/1920),

	"himawari_10min":     regularDomain(2401, 2401, -60, 80, 0.05, 0.05),
	"himawari_70e_10min": regularDomain(2801, 2401, -60, 70, 0.05, 0.05),
	"mtg_fci_10min":      regularDomain(2801, 2401, -60, -70, 0.05, 0.05),

	"grapes_global": regularDomain(2880, 1440, -89.9375, -180, 0.125, 0.125),

	// DWD ICON family.
	"icon":         regularDomain(2879, 1441, -90, -180, 0.125, 0.125),
	"iconEu":       regularDomain(1377, 657, 29.5, -23.5, 0.0625, 0.0625),
	"iconD2":       regularDomain(1215, 746, 43.18, -3.94, 0.02, 0.02),
	"iconD2_15min": regularDomain(1215, 746, 43.18, -3.94, 0.02, 0.02),
	"iconD2Eps":    regularDomain(1214, 745, 43.18, -3.94, 0.02, 0.02),
	"iconEps":      regularDomain(1439, 721, -90, -180, 0.25, 0.25),
	"iconEuEps":    regularDomain(689, 329, 29.5, -23.5, 0.125, 0.125),

	"mfwave":     regularDomain(4320, 2041, -80+1.0/24, -180+1.0/24, 1.0/12, 1.0/12),
	"mfcurrents": regularDomain(4320, 2041, -80+1.0/24, -180+1.0/24, 1.0/12, 1.0/12),
	"mfsst":      regularDomain(4320, 2041, -80+1.0/24, -180+1.0/24, 1.0/12, 1.0/12),

	"icon_2i": regularDomain(761, 761, 33.7, 3.0, 0.025, 0.02),

	// UK Met Office global runs.
	"global_deterministic_10km": regularDomain(2560, 1920, -90, -180, 360.0/2560, 180.0/1920),
	"global_ensemble_20km":      regularDomain(1280, 960, -90, -180, 360.0/1280, 180.0/960),

	// NCEP GFS family and its AI successors.
	"graphcast025":   regularDomain(1440, 721, -90, -180, 0.25, 0.25),
	"aigfs025":       regularDomain(1440, 721, -90, -180, 0.25, 0.25),
	"aigefs025":      regularDomain(1440, 721, -90, -180, 0.25, 0.25),
	"hgefs025_stats": regularDomain(1440, 721, -90, -180, 0.25, 0.25),
	"gfs05_ens":      regularDomain(720, 361, -90, -180, 0.5, 0.5),
	"gfs013":         regularDomain(3072, 1536, -0.11714935*(1536-1)/2, -180, 360.0/3072, 0.11714935),
	"gfs025":         regularDomain(1440, 721, -90, -180, 0.25, 0.25),
	"gfs025_ens":     regularDomain(1440, 721, -90, -180, 0.25, 0.25),
	"gfswave025":     regularDomain(1440, 721, -90, -180, 0.25, 0.25),
	"gfswave025_ens": regularDomain(1440, 721, -90, -180, 0.25, 0.25),
	"gfswave016":     regularDomain(2160, 406, -15, -180, 360.0/2160, (52.5+15)/(406-1)),

	"access_global":          regularDomain(2048, 1536, -89.941406, -179.912109, 360.0/2048, 180.0/1536),
	"access_global_ensemble": regularDomain(800, 600, -89.85, -179.775, 360.0/800, 180.0/600),

	"sarah3_30min": regularDomain(2600, 2600, -65, -65, 0.05, 0.05),

	"msg":  regularDomain(3201, 3201, -80, -80, 0.05, 0.05),
	"iodc": regularDomain(3201, 3201, -80, -40, 0.05, 0.05),

	"gem_global":          regularDomain(2400, 1201, -90, -180, 0.15, 0.15),
	"gem_global_ensemble": regularDomain(720, 361, -90, -180, 0.5, 0.5),

	"arpege_europe":               regularDomain(741, 521, 20, -32, 0.1, 0.1),
	"arpege_europe_probabilities": regularDomain(741, 521, 20, -32, 0.1, 0.1),
	"arpege_world":                regularDomain(1440, 721, -90, -180, 0.25, 0.25),
	"arpege_world_probabilities":  regularDomain(1440, 721, -90, -180, 0.25, 0.25),
	"arome_france":                regularDomain(1121, 717, 37.5, -12, 0.025, 0.025),
	"arome_france_15min":          regularDomain(1121, 717, 37.5, -12, 0.025, 0.025),
	"arome_france_hd":             regularDomain(2801, 1791, 37.5, -12, 0.01, 0.01),
	"arome_france_hd_15min":       regularDomain(2801, 1791, 37.5, -12, 0.01, 0.01),

	"gwam": regularDomain(1440, 699, -85.25, -180, 0.25, 0.25),
	"ewam": regularDomain(526, 721, 30, -10.5, 0.1, 0.05),

	"cams_global":                              regularDomain(900, 451, -90, -180, 0.4, 0.4),
	"cams_global_greenhouse_gases":             regularDomain(3600, 1801, -90, -180, 0.1, 0.1),
	"cams_europe_reanalysis_interim":           regularDomain(700, 420, 30.05, -24.95, 0.1, 0.1),
	"cams_europe_reanalysis_validated":         regularDomain(700, 420, 30.05, -24.95, 0.1, 0.1),
	"cams_europe_reanalysis_validated_pre2020": regularDomain(701, 421, 30, -25, 0.1, 0.1),
	"cams_europe_reanalysis_validated_pre2018": regularDomain(701, 401, 30, -25, 0.1, 0.1),

	"gsm":             regularDomain(720, 361, -90, -180, 0.5, 0.5),
	"msm":             regularDomain(481, 505, 22.4, 120, 0.0625, 0.05),
	"msm_upper_level": regularDomain(241, 253, 22.4, 120, 0.125, 0.1),

	// CMIP6 high-resolution model intercomparison runs.
	"CMCC_CM2_VHR4": regularDomain(1152, 768, -90, -180, 0.3125, 180.0/768),
	"FGOALS_f3_H":   regularDomain(1440, 720, -90, -180, 0.25, 0.25),
	"HiRAM_SIT_HR":  regularDomain(1536, 768, -90, -180, 360.0/1536, 180.0/768),
	"MRI_AGCM3_2_S": regularDomain(1920, 960, -90, -180, 0.1875, 0.1875),
	"EC_Earth3P_HR": regularDomain(1024, 512, -90, -180, 360.0/1024, 180.0/512),
	"MPI_ESM1_2_XR": regularDomain(768, 384, -90, -180, 360.0/768, 180.0/384),
	"NICAM16_8S":    regularDomain(1280, 640, -90, -180, 360.0/1280, 180.0/640),

	// GloFAS river discharge. The upstream names are bare run kinds; they
	// carry a glofas_ prefix here to keep the flat namespace readable.
	"glofas_forecast":       regularDomain(7200, 3000, -59.975, -180.025, 0.05, 0.05),
	"glofas_consolidated":   regularDomain(7200, 3000, -59.975, -180.025, 0.05, 0.05),
	"glofas_seasonal":       regularDomain(7200, 3000, -59.975, -180.025, 0.05, 0.05),
	"glofas_intermediate":   regularDomain(7200, 3000, -59.975, -180.025, 0.05, 0.05),
	"glofas_forecastv3":     regularDomain(3600, 1500, -60, -180, 0.1, 0.1),
	"glofas_consolidatedv3": regularDomain(3600, 1500, -60, -180, 0.1, 0.1),
	"glofas_seasonalv3":     regularDomain(3600, 1500, -60, -180, 0.1, 0.1),
	"glofas_intermediatev3": regularDomain(3600, 1500, -60, -180, 0.1, 0.1),

	"imerg_daily": regularDomain(3600, 1800, -89.95, -179.95, 0.1, 0.1),
}

// regularDomain builds a regular grid entry. Grids spanning the full
// longitude circle wrap in x; everything else is strictly bounded.
func regularDomain(nx, ny int, latMin, lonMin, dx, dy float64) func() (Grid, error) {
	wrap := WrapNone
	if float64(nx)*dx >= 359 {
		wrap = WrapLongitude
	}
	return func() (Grid, error) {
		return NewRegularGrid(nx, ny, latMin, lonMin, dx, dy, wrap)
	}
}

func gaussianDomain(typ GaussianType) func() (Grid, error) {
	return func() (Grid, error) { return NewGaussianGrid(typ) }
}

// DomainGrid builds the grid for a named model domain.
func DomainGrid(name string) (Grid, error) {
	build, ok := domainGrids[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, name)
	}
	return build()
}

// Domains returns the catalog's domain names, sorted.
func Domains() []string {
	names := make([]string, 0, len(domainGrids))
	for name := range domainGrids {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
