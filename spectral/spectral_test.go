package spectral

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chromatics-dev/chromatics"
)

// flatIlluminant returns a table with constant unit power over [360, 830].
func flatIlluminant(t *testing.T) *Table {
	t.Helper()
	ill, err := NewTable(Spectrum{{360, 1}, {830, 1}})
	require.NoError(t, err)
	return ill
}

// sumIntegrator is a stand-in for the CIE integration primitive: it returns
// the total power on all three tristimulus components, which is enough to
// observe the resampling and orchestration.
func sumIntegrator(s Spectrum) chromatics.XYZ {
	var total float64
	for _, sample := range s {
		total += sample.Power
	}
	return chromatics.XYZ{X: total, Y: total, Z: total}
}

func TestTableValidation(t *testing.T) {
	_, err := NewTable(Spectrum{{360, 1}})
	assert.Error(t, err)
	_, err = NewTable(Spectrum{{360, 1}, {360, 1}})
	assert.Error(t, err)
	_, err = NewTable(Spectrum{{400, 1}, {390, 1}})
	assert.Error(t, err)
}

func TestTableInterpolation(t *testing.T) {
	ill, err := NewTable(Spectrum{{400, 0}, {500, 1}, {600, 0.5}})
	require.NoError(t, err)

	lo, hi := ill.Range()
	assert.Equal(t, 400.0, lo)
	assert.Equal(t, 600.0, hi)

	assert.Equal(t, 0.0, ill.Power(400))
	assert.Equal(t, 1.0, ill.Power(500))
	assert.Equal(t, 0.5, ill.Power(600))
	assert.InDelta(t, 0.5, ill.Power(450), 1e-12)
	assert.InDelta(t, 0.75, ill.Power(550), 1e-12)
	assert.Equal(t, 0.0, ill.Power(399.9))
	assert.Equal(t, 0.0, ill.Power(600.1))
}

func TestColorFromReflectanceOrchestration(t *testing.T) {
	ill, err := NewTable(Spectrum{{360, 2}, {830, 2}})
	require.NoError(t, err)
	conv := chromatics.SRGB()

	var seen Spectrum
	integrate := func(s Spectrum) chromatics.XYZ {
		seen = s
		return chromatics.XYZ{X: 0.4, Y: 0.5, Z: 0.3}
	}

	wavelengths := []float64{400, 500, 600}
	refl := []float64{0.25, 0.5, 1}
	color, err := ColorFromReflectance(refl, wavelengths, ill, integrate, conv)
	require.NoError(t, err)

	// Reflected power is illuminant power times reflectance, on the
	// reflectance's wavelength grid.
	require.Len(t, seen, 3)
	for i, want := range []float64{0.5, 1, 2} {
		assert.Equal(t, wavelengths[i], seen[i].Wavelength)
		assert.InDelta(t, want, seen[i].Power, 1e-12)
	}

	xyz := chromatics.XYZ{X: 0.4, Y: 0.5, Z: 0.3}
	assert.Equal(t, xyz, color.XYZ)
	assert.Equal(t, conv.RGBFromXYZ(xyz), color.RGB)
	assert.Equal(t, conv.IRGBFromXYZ(xyz), color.IRGB)
	assert.Equal(t, conv.LuvFromXYZ(xyz), color.Luv)
	assert.Equal(t, conv.LabFromXYZ(xyz), color.Lab)
	assert.Equal(t, conv.HexFromXYZ(xyz), color.Hex)
}

func TestColorFromReflectanceValidation(t *testing.T) {
	ill := flatIlluminant(t)
	conv := chromatics.SRGB()

	check := func(t *testing.T, err error) {
		t.Helper()
		require.Error(t, err)
		var fmtErr *chromatics.FormatError
		require.True(t, errors.As(err, &fmtErr), "want FormatError, got %T: %v", err, err)
	}

	t.Run("mismatched lengths", func(t *testing.T) {
		_, err := ColorFromReflectance([]float64{0.5}, []float64{400, 500}, ill, sumIntegrator, conv)
		check(t, err)
	})
	t.Run("reflectance above one", func(t *testing.T) {
		_, err := ColorFromReflectance([]float64{1.5}, []float64{400}, ill, sumIntegrator, conv)
		check(t, err)
	})
	t.Run("negative reflectance", func(t *testing.T) {
		_, err := ColorFromReflectance([]float64{-0.1}, []float64{400}, ill, sumIntegrator, conv)
		check(t, err)
	})
	t.Run("wavelength below range", func(t *testing.T) {
		_, err := ColorFromReflectance([]float64{0.5}, []float64{359}, ill, sumIntegrator, conv)
		check(t, err)
	})
	t.Run("wavelength above range", func(t *testing.T) {
		_, err := ColorFromReflectance([]float64{0.5}, []float64{831}, ill, sumIntegrator, conv)
		check(t, err)
	})
}

func TestBatchMatchesSingleConversions(t *testing.T) {
	ill := flatIlluminant(t)
	conv := chromatics.SRGB()
	wavelengths := []float64{400, 450, 500, 550, 600, 650, 700}

	refls := make([][]float64, 32)
	for i := range refls {
		row := make([]float64, len(wavelengths))
		for j := range row {
			row[j] = float64((i+j)%10) / 10
		}
		refls[i] = row
	}

	batch, err := ColorsFromReflectances(refls, wavelengths, ill, sumIntegrator, conv)
	require.NoError(t, err)
	require.Len(t, batch, len(refls))

	for i, refl := range refls {
		single, err := ColorFromReflectance(refl, wavelengths, ill, sumIntegrator, conv)
		require.NoError(t, err)
		assert.Equalf(t, single, batch[i], "row %d", i)
	}
}

func TestBatchRejectsAnyInvalidRow(t *testing.T) {
	ill := flatIlluminant(t)
	conv := chromatics.SRGB()
	refls := [][]float64{{0.5, 0.5}, {0.5, 1.5}}
	_, err := ColorsFromReflectances(refls, []float64{400, 500}, ill, sumIntegrator, conv)
	require.Error(t, err)
}
