package pipeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveSeparation(t *testing.T) {
	t.Run("earth analog", func(t *testing.T) {
		// One Julian year around one solar mass sits at exactly 1 AU.
		assert.InDelta(t, 1.0, DeriveSeparation(365.25, 1.0), 1e-12)
	})

	t.Run("two AU orbit", func(t *testing.T) {
		// P scales as a^(3/2), so a 2 AU orbit has period 365.25·2^1.5.
		period := 365.25 * math.Pow(2, 1.5)
		assert.InDelta(t, 2.0, DeriveSeparation(period, 1.0), 1e-12)
	})

	t.Run("heavier star pulls the orbit in", func(t *testing.T) {
		// Same period around a 2-solar-mass star: a = cbrt(2).
		assert.InDelta(t, math.Cbrt(2), DeriveSeparation(365.25, 2.0), 1e-12)
	})

	t.Run("short period", func(t *testing.T) {
		got := DeriveSeparation(3.5, 1.0)
		assert.Greater(t, got, 0.0)
		assert.Less(t, got, 0.1)
	})
}
