package pipeline

import (
	"math"
	"strconv"
)

// parseFloat parses an archive field value, returning nil for anything that
// is not a usable number: empty strings, the literal "nan"/"None" the
// archive export emits, unparseable text, and NaN. Absence is never
// collapsed to zero; zero is a legitimate value for fields like
// eccentricity.
func parseFloat(value string) *float64 {
	if value == "" || value == "nan" || value == "None" {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) {
		return nil
	}
	return &f
}

// parseYear parses a discovery year, tolerating the float formatting some
// archive exports use ("2015.0").
func parseYear(value string) *int {
	f := parseFloat(value)
	if f == nil {
		return nil
	}
	year := int(*f)
	return &year
}
