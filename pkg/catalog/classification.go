package catalog

// Method is a visualization-facing detection method category.
type Method string

// String returns the string representation of a Method.
func (m Method) String() string {
	return string(m)
}

// Detection method categories. Transit detections are split by facility:
// Kepler/K2 discoveries dominate the archive and are charted separately.
const (
	MethodTransitKepler  Method = "transit-kepler"
	MethodTransitOther   Method = "transit-other"
	MethodRadialVelocity Method = "radial-velocity"
	MethodMicrolensing   Method = "microlensing"
	MethodDirectImaging  Method = "direct-imaging"
	MethodAstrometry     Method = "astrometry"
	MethodOther          Method = "other"
)

// Type is a semantic planet class assigned from mass, radius, and period.
type Type string

// String returns the string representation of a Type.
func (t Type) String() string {
	return string(t)
}

// Planet type classes.
const (
	TypeUnknown          Type = "unknown"
	TypeUltraShortPeriod Type = "ultra-short-period"
	TypeHotJupiter       Type = "hot-jupiter"
	TypeColdJupiter      Type = "cold-jupiter"
	TypeNeptuneLike      Type = "neptune-like"
	TypeSubNeptune       Type = "sub-neptune"
	TypeSuperEarth       Type = "super-earth"
	TypeRocky            Type = "rocky"
)
