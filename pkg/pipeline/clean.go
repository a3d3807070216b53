package pipeline

import (
	"github.com/stellarview/exomap/pkg/catalog"
)

// CleanStats reports the normalizer's per-record outcomes and the
// classification distributions of its output.
type CleanStats struct {
	// Total is the number of filtered rows consumed.
	Total int

	// MissingPeriod counts rows dropped for lacking an orbital period,
	// the single hard filter of this stage.
	MissingPeriod int

	// MissingMass and MissingRadius count surviving rows without those
	// measurements. The rows are kept; the counts feed the report.
	MissingMass   int
	MissingRadius int

	// DerivedSeparation counts rows whose separation was computed via
	// Kepler's third law rather than observed.
	DerivedSeparation int

	// Methods and Types count output records per category.
	Methods map[catalog.Method]int
	Types   map[catalog.Type]int
}

// Output returns the number of records produced.
func (s CleanStats) Output() int {
	return s.Total - s.MissingPeriod
}

// Clean maps each filtered archive row to a canonical planet record:
// renames columns, parses numerics (treating unparseable values as absent,
// not zero), derives the separation when missing, and classifies the
// detection method and planet type. Rows without an orbital period are
// dropped and counted; every other defect resolves to an absent field.
func Clean(rows []Row) ([]catalog.Planet, CleanStats) {
	stats := CleanStats{
		Methods: make(map[catalog.Method]int),
		Types:   make(map[catalog.Type]int),
	}

	planets := make([]catalog.Planet, 0, len(rows))
	for _, row := range rows {
		stats.Total++

		period := parseFloat(row[colPeriod])
		if period == nil {
			stats.MissingPeriod++
			continue
		}

		mass := parseFloat(row[colMass])
		radius := parseFloat(row[colRadius])
		separation := parseFloat(row[colSeparation])
		starMass := parseFloat(row[colStarMass])

		derived := false
		if separation == nil {
			starMassSolar := 1.0
			if starMass != nil {
				starMassSolar = *starMass
			}
			a := DeriveSeparation(*period, starMassSolar)
			separation = &a
			derived = true
			stats.DerivedSeparation++
		}

		if mass == nil {
			stats.MissingMass++
		}
		if radius == nil {
			stats.MissingRadius++
		}

		method := MapMethod(row[colMethod], row[colFacility])
		stats.Methods[method]++

		planetType := Classify(mass, radius, period)
		stats.Types[planetType]++

		planets = append(planets, catalog.Planet{
			Name:              row[colName],
			HostStar:          row[colHostName],
			Period:            period,
			Separation:        separation,
			SeparationDerived: derived,
			Radius:            radius,
			Mass:              mass,
			MassProvenance:    row[colMassProv],
			DetectionMethod:   method,
			DiscoveryYear:     parseYear(row[colYear]),
			Facility:          row[colFacility],
			Temperature:       parseFloat(row[colTemperature]),
			Density:           parseFloat(row[colDensity]),
			Eccentricity:      parseFloat(row[colEccentricity]),
			Insolation:        parseFloat(row[colInsolation]),
			StarSpectralType:  row[colSpectralType],
			StarTemperature:   parseFloat(row[colStarTemp]),
			StarRadius:        parseFloat(row[colStarRadius]),
			StarMass:          starMass,
			Distance:          parseFloat(row[colDistance]),
			RA:                parseFloat(row[colRA]),
			Dec:               parseFloat(row[colDec]),
			PlanetType:        planetType,
		})
	}

	return planets, stats
}
