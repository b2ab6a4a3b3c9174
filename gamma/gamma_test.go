package gamma

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPowerCurve(t *testing.T) {
	c := &Power{Gamma: 2.2}
	require.NoError(t, c.Prepare())

	// Identity passthrough at and below zero, in both directions.
	assert.Equal(t, 0.0, c.DisplayFromLinear(0))
	assert.Equal(t, -0.25, c.DisplayFromLinear(-0.25))
	assert.Equal(t, -0.25, c.LinearFromDisplay(-0.25))

	for _, x := range []float64{1e-6, 0.01, 0.18, 0.5, 0.9999, 1} {
		assert.InDelta(t, x, c.LinearFromDisplay(c.DisplayFromLinear(x)), 1e-12)
		assert.InDelta(t, x, c.DisplayFromLinear(c.LinearFromDisplay(x)), 1e-12)
	}
	assert.InDelta(t, math.Pow(0.5, 1/2.2), c.DisplayFromLinear(0.5), 1e-12)
}

func TestPowerCurveRejectsBadGamma(t *testing.T) {
	assert.Error(t, (&Power{Gamma: 0}).Prepare())
	assert.Error(t, (&Power{Gamma: -2.2}).Prepare())
}

func TestSRGBCurveBreakpoints(t *testing.T) {
	c := SRGB{}
	require.NoError(t, c.Prepare())

	// Linear region on both sides of both (asymmetric) breakpoints.
	assert.InDelta(t, 12.92*0.00304, c.DisplayFromLinear(0.00304), 1e-15)
	assert.InDelta(t, 0.03928/12.92, c.LinearFromDisplay(0.03928), 1e-15)
	assert.Greater(t, c.DisplayFromLinear(0.0030401), 0.03928)
	assert.InDelta(t, 0.00304, c.LinearFromDisplay(0.039281), 1e-5)
}

func TestSRGBCurveRoundTrip(t *testing.T) {
	c := SRGB{}
	xs := []float64{0, 1e-5, 0.001, 0.00304, 0.0031, 0.0392, 0.03928, 0.0393, 0.18, 0.5, 0.73, 1}
	for _, x := range xs {
		assert.InDeltaf(t, x, c.LinearFromDisplay(c.DisplayFromLinear(x)), 1e-6, "x=%v", x)
		assert.InDeltaf(t, x, c.DisplayFromLinear(c.LinearFromDisplay(x)), 1e-6, "x=%v", x)
	}
}

func TestParametricSlopeContinuitySolver(t *testing.T) {
	c, err := NewSRGBParametric()
	require.NoError(t, err)

	// The derived constants land on the published sRGB linear-region
	// values, regardless of what K0/Phi the struct started with.
	assert.InDelta(t, 0.055/1.4, c.K0, 1e-12)
	assert.InDelta(t, 12.9232, c.Phi, 1e-3)

	// Continuity of value at the region boundary.
	edge := c.K0 / c.Phi
	below := c.DisplayFromLinear(edge * (1 - 1e-9))
	above := c.DisplayFromLinear(edge * (1 + 1e-9))
	assert.InDelta(t, below, above, 1e-7)

	// Continuity of slope: finite differences straddling the boundary.
	h := 1e-9
	slopeBelow := (c.DisplayFromLinear(edge-h) - c.DisplayFromLinear(edge-2*h)) / h
	slopeAbove := (c.DisplayFromLinear(edge+2*h) - c.DisplayFromLinear(edge+h)) / h
	assert.InDelta(t, slopeBelow, slopeAbove, 1e-2)
}

func TestParametricOverwritesSuppliedBreakpoints(t *testing.T) {
	c := &Parametric{Gamma: 2.4, A: 0.055, K0: 99, Phi: -1}
	require.NoError(t, c.Prepare())
	assert.InDelta(t, 0.055/1.4, c.K0, 1e-12)
	assert.InDelta(t, 12.9232, c.Phi, 1e-3)
}

func TestParametricRoundTrip(t *testing.T) {
	curves := map[string]func() (*Parametric, error){
		"srgb":     NewSRGBParametric,
		"uhdtv-10": NewUHDTV10,
		"uhdtv-12": NewUHDTV12,
	}
	for name, build := range curves {
		t.Run(name, func(t *testing.T) {
			c, err := build()
			require.NoError(t, err)
			for x := 0.0; x <= 1.0; x += 1.0 / 256 {
				assert.InDeltaf(t, x, c.LinearFromDisplay(c.DisplayFromLinear(x)), 1e-10, "x=%v", x)
				assert.InDeltaf(t, x, c.DisplayFromLinear(c.LinearFromDisplay(x)), 1e-10, "x=%v", x)
			}
		})
	}
}

func TestParametricRejectsBadParameters(t *testing.T) {
	assert.Error(t, (&Parametric{Gamma: 1, A: 0.055}).Prepare())
	assert.Error(t, (&Parametric{Gamma: 2.4, A: 0}).Prepare())
	assert.Error(t, (&Parametric{Gamma: 2.4, A: -0.1}).Prepare())
}
