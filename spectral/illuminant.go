package spectral

// Table is an Illuminant backed by a sampled spectral power distribution.
// Power between samples is linearly interpolated; queries outside the
// sampled interval return zero.
type Table struct {
	samples Spectrum
}

var _ Illuminant = (*Table)(nil)

// NewTable builds an interpolating illuminant from samples. At least two
// samples are required and wavelengths must be strictly ascending.
func NewTable(samples Spectrum) (*Table, error) {
	if len(samples) < 2 {
		return nil, formatError("illuminant table needs at least 2 samples, got %d", len(samples))
	}
	for i := 1; i < len(samples); i++ {
		if samples[i].Wavelength <= samples[i-1].Wavelength {
			return nil, formatError("illuminant wavelengths must be strictly ascending, got %g after %g",
				samples[i].Wavelength, samples[i-1].Wavelength)
		}
	}
	t := &Table{samples: make(Spectrum, len(samples))}
	copy(t.samples, samples)
	return t, nil
}

// Range returns the first and last sampled wavelengths.
func (t *Table) Range() (lo, hi float64) {
	return t.samples[0].Wavelength, t.samples[len(t.samples)-1].Wavelength
}

// Power returns the interpolated spectral power at the given wavelength.
func (t *Table) Power(wavelength float64) float64 {
	lo, hi := t.Range()
	if wavelength < lo || wavelength > hi {
		return 0
	}
	// Binary search for the containing interval.
	i, j := 0, len(t.samples)-1
	for j-i > 1 {
		mid := (i + j) / 2
		if t.samples[mid].Wavelength <= wavelength {
			i = mid
		} else {
			j = mid
		}
	}
	a, b := t.samples[i], t.samples[j]
	frac := (wavelength - a.Wavelength) / (b.Wavelength - a.Wavelength)
	return a.Power + frac*(b.Power-a.Power)
}
