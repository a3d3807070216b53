package pipeline

import (
	"math"
	"sort"

	"github.com/stellarview/exomap/pkg/catalog"
)

// EnrichStats reports narrative merge outcomes.
type EnrichStats struct {
	// Total is the number of records enriched.
	Total int

	// Notable counts records that matched an entry in the narrative table.
	Notable int
}

// Enrich attaches identity, field provenance, and curated narrative to each
// planet, then orders the set for deterministic output: discovery year
// ascending with unknown years last, ties broken by name.
//
// The narrative table is keyed by the raw archive planet name, not the
// normalized identifier. A planet without an entry simply carries no
// narrative; that is never an error.
func Enrich(planets []catalog.Planet, narratives map[string]catalog.Narrative) ([]catalog.Planet, EnrichStats) {
	stats := EnrichStats{Total: len(planets)}

	enriched := make([]catalog.Planet, len(planets))
	for i, planet := range planets {
		planet.ID = catalog.MakeID(planet.Name)

		planet.Observed = &catalog.Observed{
			Period:            planet.Period != nil,
			Mass:              planet.Mass != nil,
			Radius:            planet.Radius != nil,
			Temperature:       planet.Temperature != nil,
			Separation:        planet.Separation != nil && !planet.SeparationDerived,
			SeparationDerived: planet.SeparationDerived,
		}

		if narrative, ok := narratives[planet.Name]; ok {
			n := narrative
			planet.Narrative = &n
			stats.Notable++
		}

		enriched[i] = planet
	}

	sort.Slice(enriched, func(i, j int) bool {
		yi, yj := sortYear(enriched[i].DiscoveryYear), sortYear(enriched[j].DiscoveryYear)
		if yi != yj {
			return yi < yj
		}
		return enriched[i].Name < enriched[j].Name
	})

	return enriched, stats
}

// sortYear orders unknown discovery years after every known year.
func sortYear(year *int) int {
	if year == nil {
		return math.MaxInt
	}
	return *year
}
