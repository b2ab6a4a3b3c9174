package chromatics

import "math"

// ClipFlags reports which clip stages fired while converting a linear RGB
// color to a displayable integer color. Both, either, or neither may be set.
type ClipFlags struct {
	// Chromaticity is set when negative channels had to be removed.
	Chromaticity bool
	// Intensity is set when the color was too bright and was scaled down.
	Intensity bool
}

// ClipRGB converts a linear RGB color, nominally in [0,1] per channel but
// possibly outside it, into a displayable integer color. Negative channels
// are removed with the configured chromaticity clip, over-bright colors are
// scaled down, then each channel is gamma inverted and quantized. Clipping
// is total: every real input produces a well-defined result, and the flags
// report which stages changed the color.
func (c *Converter) ClipRGB(rgb RGB) (IRGB, ClipFlags) {
	var flags ClipFlags
	r, g, b := rgb.R, rgb.G, rgb.B

	switch c.clipMethod {
	case ClipClampToZero:
		r, g, b, flags.Chromaticity = clipClampToZero(r, g, b)
	case ClipAddWhite:
		r, g, b, flags.Chromaticity = clipAddWhite(r, g, b)
	}

	r, g, b, flags.Intensity = c.clipIntensity(r, g, b)

	r = c.curve.DisplayFromLinear(r)
	g = c.curve.DisplayFromLinear(g)
	b = c.curve.DisplayFromLinear(b)

	return c.quantize(r, g, b), flags
}

// clipClampToZero zeroes each negative channel independently.
func clipClampToZero(r, g, b float64) (float64, float64, float64, bool) {
	clipped := false
	if r < 0 {
		r, clipped = 0, true
	}
	if g < 0 {
		g, clipped = 0, true
	}
	if b < 0 {
		b, clipped = 0, true
	}
	return r, g, b, clipped
}

// clipAddWhite adds just enough white to remove negative channels, then
// scales so the largest channel keeps its value. When no channel is
// positive the scale stays one and the translation alone is applied.
func clipAddWhite(r, g, b float64) (float64, float64, float64, bool) {
	m := min(0, r, g, b)
	if m >= 0 {
		return r, g, b, false
	}
	scale := 1.0
	if mx := max(r, g, b); mx > 0 {
		scale = mx / (mx - m)
	}
	return scale * (r - m), scale * (g - m), scale * (b - m), true
}

// clipIntensity scales over-bright colors down uniformly. The cutoff allows
// values that would still round down to the maximum integer, so they are
// not needlessly flagged.
func (c *Converter) clipIntensity(r, g, b float64) (float64, float64, float64, bool) {
	cutoff := 1 + 0.5/c.maxF
	mx := max(r, g, b)
	if mx <= cutoff {
		return r, g, b, false
	}
	scale := cutoff / mx
	return scale * r, scale * g, scale * b, true
}

// quantize rounds displayable channel values to integers, clamping to the
// valid range as a final safety net.
func (c *Converter) quantize(r, g, b float64) IRGB {
	clampInt := func(x float64) int {
		i := int(math.Round(c.maxF * x))
		return min(c.maxValue, max(0, i))
	}
	return IRGB{clampInt(r), clampInt(g), clampInt(b)}
}
