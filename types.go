package chromatics

// XYZ is a CIE 1931 tristimulus value. Values may be absolute (unscaled),
// scaled so the components sum to one, or scaled so Y is one; callers track
// which convention a particular value uses.
type XYZ struct {
	X, Y, Z float64
}

// RGB is a linear color value, proportional to light intensity, nominally in
// [0,1] per channel. Out-of-range channels are valid and describe colors
// outside the device gamut.
type RGB struct {
	R, G, B float64
}

// IRGB is a displayable, gamma-corrected integer color with channels in
// [0, 2^bitdepth - 1]. It is the only representation safe to send to a
// display.
type IRGB struct {
	R, G, B int
}

// Luv is a CIE L*u*v* color relative to some reference white.
type Luv struct {
	L, U, V float64
}

// Lab is a CIE L*a*b* color relative to some reference white.
type Lab struct {
	L, A, B float64
}

// Chromaticity builds an XYZ value from the (x, y) chromaticity pair, with
// z chosen so the components sum to one.
func Chromaticity(x, y float64) XYZ {
	return XYZ{x, y, 1 - (x + y)}
}

// XYZFromxyY builds an XYZ color from the (x, y) chromaticity and the
// luminance Y. See Foley/Van Dam eq. 13.21.
func XYZFromxyY(x, y, Y float64) XYZ {
	return XYZ{(x / y) * Y, Y, ((1 - x - y) / y) * Y}
}

// Normalized returns the color scaled so its components sum to one.
// The zero color is returned unchanged.
func (c XYZ) Normalized() XYZ {
	sum := c.X + c.Y + c.Z
	if sum == 0 {
		return c
	}
	s := 1 / sum
	return XYZ{c.X * s, c.Y * s, c.Z * s}
}

// NormalizedY1 returns the color scaled so its Y component is one.
// Colors with Y = 0 are returned unchanged.
func (c XYZ) NormalizedY1() XYZ {
	if c.Y == 0 {
		return c
	}
	s := 1 / c.Y
	return XYZ{c.X * s, c.Y * s, c.Z * s}
}

// Scaled returns the color with every component multiplied by s.
func (c RGB) Scaled(s float64) RGB {
	return RGB{c.R * s, c.G * s, c.B * s}
}

// Chromaticities of standard display phosphors and white points.
var (
	// sRGB (ITU-R BT.709) phosphors and D65 white.
	SRGBRed   = Chromaticity(0.640, 0.330)
	SRGBGreen = Chromaticity(0.300, 0.600)
	SRGBBlue  = Chromaticity(0.150, 0.060)
	SRGBWhite = Chromaticity(0.3127, 0.3290)

	// HDTV phosphors, from Poynton's Color FAQ. Typically close to
	// computer monitors. Use D65 as the white point.
	HDTVRed   = Chromaticity(0.640, 0.330)
	HDTVGreen = Chromaticity(0.300, 0.600)
	HDTVBlue  = Chromaticity(0.150, 0.060)

	// SMPTE phosphors, from Hall and Kasson. Use D65 as the white point.
	SMPTERed   = Chromaticity(0.630, 0.340)
	SMPTEGreen = Chromaticity(0.310, 0.595)
	SMPTEBlue  = Chromaticity(0.155, 0.070)

	// NTSC phosphors, the original TV standard, no longer used in sets.
	NTSCRed   = Chromaticity(0.670, 0.330)
	NTSCGreen = Chromaticity(0.210, 0.710)
	NTSCBlue  = Chromaticity(0.140, 0.080)
)

// Standard CIE white points, for the 1931 small field of view observer.
var (
	WhiteA   = Chromaticity(0.4476, 0.4074) // approx 2856 K
	WhiteB   = Chromaticity(0.3484, 0.3516) // approx 4874 K
	WhiteC   = Chromaticity(0.3101, 0.3162) // approx 6774 K
	WhiteD55 = Chromaticity(0.3324, 0.3475) // approx 5500 K
	WhiteD65 = Chromaticity(0.3127, 0.3290) // approx 6500 K
	WhiteD75 = Chromaticity(0.2990, 0.3150) // approx 7500 K
)
