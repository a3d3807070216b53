// Package catalog defines the exoplanet data model shared by all pipeline
// stages: the per-planet record, its provenance companion, curated narrative
// content, and the final output document.
package catalog

// Planet is the canonical per-planet record. Optional numeric fields are
// pointers so that absence is distinguishable from a measured zero (an
// eccentricity of 0 is a real value, a missing eccentricity is not).
type Planet struct {
	// Identity
	ID       string `json:"id"`
	Name     string `json:"name"`
	HostStar string `json:"hostStar"`

	// Marker for downstream merging with the solar-system dataset.
	IsSolarSystem bool `json:"isSolarSystem"`

	// Orbital parameters
	Period       *float64 `json:"period"`
	Separation   *float64 `json:"separation"`
	Eccentricity *float64 `json:"eccentricity"`

	// Physical parameters
	Radius         *float64 `json:"radius"`
	Mass           *float64 `json:"mass"`
	MassProvenance string   `json:"massProvenance"`
	Temperature    *float64 `json:"temperature"`
	Density        *float64 `json:"density"`
	Insolation     *float64 `json:"insolation"`

	// Discovery
	DetectionMethod Method `json:"detectionMethod"`
	DiscoveryYear   *int   `json:"discoveryYear"`
	Facility        string `json:"facility"`

	// Host star
	StarSpectralType string   `json:"starSpectralType"`
	StarTemperature  *float64 `json:"starTemperature"`
	StarRadius       *float64 `json:"starRadius"`
	StarMass         *float64 `json:"starMass"`

	// Position
	Distance *float64 `json:"distance"`
	RA       *float64 `json:"ra"`
	Dec      *float64 `json:"dec"`

	// Classification
	PlanetType Type `json:"planetType"`

	// Observed is the field-provenance companion, attached by the enricher.
	Observed *Observed `json:"_observed,omitempty"`

	// Narrative is curated descriptive content, attached by the enricher
	// when the planet appears in the narrative table. Nil means none; the
	// key is still emitted so consumers can rely on its presence.
	Narrative *Narrative `json:"_narrative"`

	// SeparationDerived records that Separation came from Kepler's third
	// law rather than the archive. Set by the cleaner, consumed by the
	// enricher when building Observed.
	SeparationDerived bool `json:"-"`
}

// Observed records, per optionally-measured field, whether the value was
// directly present in the source catalog. Separation carries an extra
// Derived flag: a derived separation is present but not observed.
type Observed struct {
	Period      bool `json:"period"`
	Mass        bool `json:"mass"`
	Radius      bool `json:"radius"`
	Temperature bool `json:"temperature"`
	Separation  bool `json:"separation"`

	// SeparationDerived is true when the separation value was computed
	// from the orbital period instead of being measured.
	SeparationDerived bool `json:"separationDerived"`
}

// Narrative is curated, human-written content for a notable planet. It is
// merged by name and never derived from observational fields.
type Narrative struct {
	IsNotable     bool     `json:"isNotable" yaml:"isNotable"`
	NotableReason string   `json:"notableReason,omitempty" yaml:"notableReason"`
	Description   string   `json:"description,omitempty" yaml:"description"`
	Sources       []string `json:"sources" yaml:"sources"`
}
