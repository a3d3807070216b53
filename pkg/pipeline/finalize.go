package pipeline

import (
	"strings"

	"github.com/stellarview/exomap/pkg/catalog"
)

// Issue names a record excluded by final validation, with the reason.
type Issue struct {
	Name   string
	Reason string
}

// FinalStats aggregates the validated dataset for the statistics report.
type FinalStats struct {
	// Total is the number of enriched records consumed, before validation.
	Total int

	// Presence counts. A field counts as present when it is non-nil and
	// non-zero, matching how the visualization treats these fields.
	WithMass        int
	WithRadius      int
	WithTemperature int
	WithNarrative   int

	Methods    map[catalog.Method]int
	Types      map[catalog.Type]int
	Facilities map[string]int
	Decades    map[int]int

	// Issues lists records excluded by validation.
	Issues []Issue
}

// Valid returns the number of records that passed validation.
func (s FinalStats) Valid() int {
	return s.Total - len(s.Issues)
}

// Finalize validates the enriched set and aggregates its statistics.
//
// The period check duplicates the cleaner's hard filter on purpose: the two
// stages are independently testable, and a record that somehow reaches this
// point without a period must land in the issues list rather than in the
// output. When the cleaner honored its contract the check is a no-op.
func Finalize(planets []catalog.Planet) ([]catalog.Planet, FinalStats) {
	stats := FinalStats{
		Total:      len(planets),
		Methods:    make(map[catalog.Method]int),
		Types:      make(map[catalog.Type]int),
		Facilities: make(map[string]int),
		Decades:    make(map[int]int),
	}

	valid := make([]catalog.Planet, 0, len(planets))
	for _, planet := range planets {
		if planet.Period == nil || *planet.Period == 0 {
			stats.Issues = append(stats.Issues, Issue{Name: planet.Name, Reason: "missing period"})
			continue
		}

		if present(planet.Mass) {
			stats.WithMass++
		}
		if present(planet.Radius) {
			stats.WithRadius++
		}
		if present(planet.Temperature) {
			stats.WithTemperature++
		}
		if planet.Narrative != nil {
			stats.WithNarrative++
		}

		stats.Methods[planet.DetectionMethod]++
		stats.Types[planet.PlanetType]++

		if facility := CanonicalFacility(planet.Facility); facility != "" {
			stats.Facilities[facility]++
		}

		if planet.DiscoveryYear != nil {
			decade := (*planet.DiscoveryYear / 10) * 10
			stats.Decades[decade]++
		}

		valid = append(valid, planet)
	}

	return valid, stats
}

// canonicalNames collapses facility-name variants onto the label of the
// survey they belong to; order matters, "Kepler" wins over "K2" for the
// combined "Kepler/K2" entries.
var canonicalNames = []string{"Kepler", "K2", "TESS", "HARPS"}

// CanonicalFacility collapses facility-name variants ("K2 Campaign 9",
// "HARPS-N") onto their survey label. Other facility names pass through
// unchanged; an empty facility stays empty and is not counted.
func CanonicalFacility(facility string) string {
	for _, name := range canonicalNames {
		if strings.Contains(facility, name) {
			return name
		}
	}
	return facility
}
