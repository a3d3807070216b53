package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stellarview/exomap/internal/utils/ptr"
	"github.com/stellarview/exomap/pkg/catalog"
)

func TestMapMethod(t *testing.T) {
	tests := []struct {
		method   string
		facility string
		want     catalog.Method
	}{
		{"Transit", "Kepler", catalog.MethodTransitKepler},
		{"Transit", "K2", catalog.MethodTransitKepler},
		{"Transit", "Kepler/K2", catalog.MethodTransitKepler},
		{"Transit", "K2 Campaign 9", catalog.MethodTransitKepler},
		{"Transit", "TESS", catalog.MethodTransitOther},
		{"Transit", "", catalog.MethodTransitOther},
		{"Radial Velocity", "Kepler", catalog.MethodRadialVelocity},
		{"Radial Velocity", "La Silla Observatory", catalog.MethodRadialVelocity},
		{"Microlensing", "OGLE", catalog.MethodMicrolensing},
		{"Imaging", "Paranal Observatory", catalog.MethodDirectImaging},
		{"Astrometry", "Gaia", catalog.MethodAstrometry},
		{"Transit Timing Variations", "Kepler", catalog.MethodTransitOther},
		{"Eclipse Timing Variations", "", catalog.MethodOther},
		{"Pulsar Timing", "Arecibo", catalog.MethodOther},
		{"Disk Kinematics", "", catalog.MethodOther},
		{"Quantum Flux Readings", "", catalog.MethodOther}, // unrecognized
		{"", "", catalog.MethodOther},
	}

	for _, tt := range tests {
		t.Run(tt.method+"/"+tt.facility, func(t *testing.T) {
			assert.Equal(t, tt.want, MapMethod(tt.method, tt.facility))
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		mass   *float64
		radius *float64
		period *float64
		want   catalog.Type
	}{
		{"nothing known", nil, nil, ptr.Float64(5), catalog.TypeUnknown},
		{"ultra short period", ptr.Float64(5), nil, ptr.Float64(0.5), catalog.TypeUltraShortPeriod},
		{"hot jupiter", ptr.Float64(300), nil, ptr.Float64(3), catalog.TypeHotJupiter},
		{"cold jupiter", ptr.Float64(300), nil, ptr.Float64(100), catalog.TypeColdJupiter},
		{"cold jupiter without period", ptr.Float64(300), nil, nil, catalog.TypeColdJupiter},
		{"neptune-like", ptr.Float64(20), nil, ptr.Float64(30), catalog.TypeNeptuneLike},
		{"sub-neptune by radius before super-earth by mass", ptr.Float64(5), ptr.Float64(3), ptr.Float64(50), catalog.TypeSubNeptune},
		{"sub-neptune by radius beats estimated super-earth mass", nil, ptr.Float64(2), ptr.Float64(50), catalog.TypeSubNeptune},
		{"super-earth", ptr.Float64(5), nil, ptr.Float64(50), catalog.TypeSuperEarth},
		{"rocky", ptr.Float64(1), nil, ptr.Float64(50), catalog.TypeRocky},
		{"rocky from small radius", nil, ptr.Float64(1.0), ptr.Float64(50), catalog.TypeRocky},
		{"default fallback", ptr.Float64(75), nil, ptr.Float64(50), catalog.TypeSubNeptune},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.mass, tt.radius, tt.period))
		})
	}
}

func TestClassifyCascadeOrder(t *testing.T) {
	// A 120-Earth-mass planet on a 5-day orbit matches both mass>100
	// rules; the short-period guard must win.
	got := Classify(ptr.Float64(120), nil, ptr.Float64(5))
	assert.Equal(t, catalog.TypeHotJupiter, got)

	// Small mass and sub-day period: ultra-short-period outranks rocky.
	got = Classify(ptr.Float64(1), nil, ptr.Float64(0.7))
	assert.Equal(t, catalog.TypeUltraShortPeriod, got)

	// A mass estimated from radius feeds the cascade like a real mass:
	// 2·3^2.1 ≈ 20 Earth masses lands in the neptune-like window before
	// the radius rule is ever consulted.
	got = Classify(nil, ptr.Float64(3), ptr.Float64(50))
	assert.Equal(t, catalog.TypeNeptuneLike, got)
}
