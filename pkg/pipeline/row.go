// Package pipeline implements the four-stage transformation that turns raw
// NASA Exoplanet Archive rows into a validated, enriched planet list:
//
//	Select → Clean → Enrich → Finalize
//
// Each stage is a pure function over in-memory slices and returns an
// explicit stats accumulator alongside its records, so stages stay
// independently testable and composable.
package pipeline

// Row is one raw archive row, keyed by source column name. Rows exist only
// between reading the CSV and the Clean stage; nothing downstream sees them.
type Row map[string]string

// Source column names used by the selector and cleaner. The archive ships
// many more columns; anything not read here is discarded.
const (
	colName         = "pl_name"
	colHostName     = "hostname"
	colPeriod       = "pl_orbper"
	colSeparation   = "pl_orbsmax"
	colRadius       = "pl_rade"
	colMass         = "pl_bmasse"
	colMassProv     = "pl_bmassprov"
	colMethod       = "discoverymethod"
	colYear         = "disc_year"
	colFacility     = "disc_facility"
	colTemperature  = "pl_eqt"
	colDensity      = "pl_dens"
	colEccentricity = "pl_orbeccen"
	colInsolation   = "pl_insol"
	colSpectralType = "st_spectype"
	colStarTemp     = "st_teff"
	colStarRadius   = "st_rad"
	colStarMass     = "st_mass"
	colDistance     = "sy_dist"
	colRA           = "ra"
	colDec          = "dec"

	colDefaultFlag = "default_flag"
	colControvFlag = "pl_controv_flag"
)
