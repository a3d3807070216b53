package pipeline

import "math"

// daysPerYear is the Julian year used by the archive.
const daysPerYear = 365.25

// DeriveSeparation computes the orbital semi-major axis in AU from the
// period using Kepler's third law with a circular-orbit approximation:
//
//	a³ = P² × M★  (AU, years, solar masses)
//
// Callers pass 1.0 for starMassSolar when the host star's mass is unknown.
func DeriveSeparation(periodDays, starMassSolar float64) float64 {
	years := periodDays / daysPerYear
	return math.Cbrt(years * years * starMassSolar)
}
