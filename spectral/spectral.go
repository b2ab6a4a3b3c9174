// Package spectral turns reflectance spectra under an illuminant into
// colors. The spectral integration itself (light spectrum + CIE matching
// functions -> XYZ) is supplied by the caller as an Integrator; this
// package resamples the illuminant onto the reflectance's wavelength grid,
// computes the reflected power, and delegates the color conversions to a
// chromatics.Converter.
package spectral

import (
	"fmt"

	"github.com/kovidgoyal/go-parallel"

	"github.com/chromatics-dev/chromatics"
)

// Sample is one (wavelength, power) point of a spectrum. Wavelengths are in
// nanometers.
type Sample struct {
	Wavelength float64
	Power      float64
}

// Spectrum is an ordered sequence of samples with ascending wavelengths.
type Spectrum []Sample

// Integrator computes the XYZ tristimulus value of a light spectrum by
// integrating against the CIE matching functions. Implementations are
// external to this package.
type Integrator func(Spectrum) chromatics.XYZ

// Illuminant is a light source's spectral power distribution, defined over
// a closed wavelength interval and interpolated between samples.
type Illuminant interface {
	// Power returns the spectral power at the given wavelength.
	Power(wavelength float64) float64
	// Range returns the closed wavelength interval the illuminant is
	// defined on.
	Range() (lo, hi float64)
}

// Color bundles every representation of one converted reflectance.
type Color struct {
	XYZ  chromatics.XYZ
	RGB  chromatics.RGB
	IRGB chromatics.IRGB
	Luv  chromatics.Luv
	Lab  chromatics.Lab
	Hex  string
}

// ColorFromReflectance computes the color of a surface with the given
// reflectance values, sampled at the given wavelengths, lit by the
// illuminant. The reflectance and wavelength slices must have equal length,
// reflectance values must lie in [0,1], and every wavelength must be inside
// the illuminant's range; violations fail with a FormatError.
func ColorFromReflectance(refl, wavelengths []float64, ill Illuminant, integrate Integrator, conv *chromatics.Converter) (Color, error) {
	if err := validateReflectance(refl, wavelengths, ill); err != nil {
		return Color{}, err
	}
	return colorFromReflectance(refl, wavelengths, ill, integrate, conv), nil
}

// ColorsFromReflectances converts many reflectance spectra sharing one
// wavelength grid, in parallel. The result has one entry per input row, in
// order.
func ColorsFromReflectances(refls [][]float64, wavelengths []float64, ill Illuminant, integrate Integrator, conv *chromatics.Converter) ([]Color, error) {
	for _, refl := range refls {
		if err := validateReflectance(refl, wavelengths, ill); err != nil {
			return nil, err
		}
	}
	ans := make([]Color, len(refls))
	err := parallel.Run_in_parallel_over_range(0, func(start, limit int) {
		for i := start; i < limit; i++ {
			ans[i] = colorFromReflectance(refls[i], wavelengths, ill, integrate, conv)
		}
	}, 0, len(refls))
	if err != nil {
		return nil, err
	}
	return ans, nil
}

func validateReflectance(refl, wavelengths []float64, ill Illuminant) error {
	if len(refl) != len(wavelengths) {
		return formatError("reflectance has %d values for %d wavelengths", len(refl), len(wavelengths))
	}
	lo, hi := ill.Range()
	for i, wl := range wavelengths {
		if wl < lo || wl > hi {
			return formatError("wavelength %g nm is outside the illuminant range [%g, %g]", wl, lo, hi)
		}
		if r := refl[i]; r < 0 || r > 1 {
			return formatError("reflectance %g at %g nm is outside [0, 1]", r, wl)
		}
	}
	return nil
}

func colorFromReflectance(refl, wavelengths []float64, ill Illuminant, integrate Integrator, conv *chromatics.Converter) Color {
	spectrum := make(Spectrum, len(wavelengths))
	for i, wl := range wavelengths {
		spectrum[i] = Sample{Wavelength: wl, Power: ill.Power(wl) * refl[i]}
	}
	xyz := integrate(spectrum)
	rgb := conv.RGBFromXYZ(xyz)
	return Color{
		XYZ:  xyz,
		RGB:  rgb,
		IRGB: conv.IRGBFromRGB(rgb),
		Luv:  conv.LuvFromXYZ(xyz),
		Lab:  conv.LabFromXYZ(xyz),
		Hex:  conv.HexFromRGB(rgb),
	}
}

func formatError(format string, args ...any) error {
	return &chromatics.FormatError{Reason: fmt.Sprintf(format, args...)}
}
