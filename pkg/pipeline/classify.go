package pipeline

import (
	"math"
	"strings"

	"github.com/stellarview/exomap/pkg/catalog"
)

// methodCategories maps archive detection-method strings to visualization
// categories. "Transit" is absent on purpose: transit detections are split
// by facility in MapMethod. Unlisted methods fall back to "other".
var methodCategories = map[string]catalog.Method{
	"Radial Velocity":               catalog.MethodRadialVelocity,
	"Microlensing":                  catalog.MethodMicrolensing,
	"Imaging":                       catalog.MethodDirectImaging,
	"Astrometry":                    catalog.MethodAstrometry,
	"Transit Timing Variations":     catalog.MethodTransitOther,
	"Eclipse Timing Variations":     catalog.MethodOther,
	"Pulsar Timing":                 catalog.MethodOther,
	"Orbital Brightness Modulation": catalog.MethodOther,
	"Pulsation Timing Variations":   catalog.MethodOther,
	"Disk Kinematics":               catalog.MethodOther,
}

// MapMethod maps an archive detection-method string to a visualization
// category. The mapping is facility-aware: a transit found by Kepler or K2
// lands in a different category than the same method at any other facility.
func MapMethod(method, facility string) catalog.Method {
	if method == "Transit" {
		if strings.Contains(facility, "Kepler") || strings.Contains(facility, "K2") {
			return catalog.MethodTransitKepler
		}
		return catalog.MethodTransitOther
	}
	if category, ok := methodCategories[method]; ok {
		return category
	}
	return catalog.MethodOther
}

// Classify assigns a planet type from mass (Earth masses), radius (Earth
// radii), and period (days). Mass is preferred; a missing mass is estimated
// from radius via the empirical mass-radius relation (r^3.3 below 1.5 Earth
// radii, 2·r^2.1 above).
//
// The rules form a priority cascade evaluated in order, first match wins.
// The ranges overlap deliberately: a 120-Earth-mass planet on a 5-day orbit
// is a hot jupiter only because the short-period rule runs before the
// general mass>100 rule. Reordering changes the taxonomy.
func Classify(mass, radius, period *float64) catalog.Type {
	if mass == nil && radius == nil {
		return catalog.TypeUnknown
	}

	m := mass
	r := radius
	if r == nil && m != nil && *m < 10 {
		est := math.Pow(*m, 0.28)
		r = &est
	}

	if m == nil && r != nil {
		var est float64
		if *r < 1.5 {
			est = math.Pow(*r, 3.3)
		} else {
			est = math.Pow(*r, 2.1) * 2
		}
		m = &est
	}

	if m == nil {
		return catalog.TypeUnknown
	}

	switch {
	case period != nil && *period < 1 && *m < 10:
		return catalog.TypeUltraShortPeriod
	case *m > 100 && period != nil && *period < 10:
		return catalog.TypeHotJupiter
	case *m > 100:
		return catalog.TypeColdJupiter
	case *m >= 10 && *m < 50:
		return catalog.TypeNeptuneLike
	case r != nil && *r >= 2 && *r < 4:
		return catalog.TypeSubNeptune
	case *m >= 2 && *m < 10:
		return catalog.TypeSuperEarth
	case *m < 2:
		return catalog.TypeRocky
	}
	return catalog.TypeSubNeptune
}
