// Package percept converts normalized CIE XYZ tristimulus values to and from
// the nearly perceptually uniform Luv and Lab spaces, relative to a
// reference white point.
package percept

import "math"

// Coefficients of the shared L luminance function, from Kasson and Plouffe.
// The linear-region coefficient carries more digits than the paper's
// rounded value; the extra precision keeps the function continuous at the
// cutoff.
const (
	lumA      = 116.0
	lumB      = 16.0
	lumC      = 903.29629551307664
	lumCutoff = 0.008856

	// Lab f linear-region slope and offset, continuous at the same cutoff.
	labFA = 7.7870370302851422
	labFB = 16.0 / 116.0
)

// Luminance is the L function shared by the Luv and Lab models. It maps the
// Y component of an XYZ color, normalized by the reference white, to the
// perceptual lightness L in [0,100] for valid input.
func Luminance(y float64) float64 {
	if y > lumCutoff {
		return lumA*math.Pow(y, 1.0/3.0) - lumB
	}
	return lumC * y
}

// LuminanceInverse is the inverse of Luminance.
func LuminanceInverse(L float64) float64 {
	if L <= lumC*lumCutoff {
		return L / lumC
	}
	t := (L + lumB) / lumA
	return t * t * t
}

// labF is the Lab helper function f(t).
func labF(t float64) float64 {
	if t > lumCutoff {
		return math.Cbrt(t)
	}
	return labFA*t + labFB
}

// labFInverse is the inverse of labF.
func labFInverse(F float64) float64 {
	if F <= labFA*lumCutoff+labFB {
		return (F - labFB) / labFA
	}
	return F * F * F
}

// UVPrimes computes the u', v' chromaticity primaries of an XYZ color.
// The denominator is zero only at true black, where both primaries are
// defined to be zero.
func UVPrimes(x, y, z float64) (uPrime, vPrime float64) {
	denom := x + 15*y + 3*z
	if denom == 0 {
		return 0, 0
	}
	return 4 * x / denom, 9 * y / denom
}

// uvPrimesInverse recovers x and z from u', v' and a known y. A zero v'
// only occurs for black, which maps back to exact zeros with no division.
func uvPrimesInverse(uPrime, vPrime, y float64) (x, yOut, z float64) {
	if vPrime == 0 {
		return 0, 0, 0
	}
	denom := 9 * y / vPrime
	x = 0.25 * uPrime * denom
	z = (denom - x - 15*y) / 3
	return x, y, z
}

// WhitePoint is a reference white for Luv and Lab conversions, normalized to
// Y=1, with its u', v' primaries precomputed.
type WhitePoint struct {
	X, Y, Z        float64
	UPrime, VPrime float64
}

// NewWhitePoint builds a WhitePoint from tristimulus components. The input
// is normalized so Y is one.
func NewWhitePoint(x, y, z float64) WhitePoint {
	if y != 0 && y != 1 {
		s := 1 / y
		x, y, z = x*s, 1, z*s
	}
	up, vp := UVPrimes(x, y, z)
	return WhitePoint{X: x, Y: y, Z: z, UPrime: up, VPrime: vp}
}

// LuvFromXYZ converts an XYZ color to Luv relative to the white point.
func LuvFromXYZ(x, y, z float64, w WhitePoint) (L, u, v float64) {
	uPrime, vPrime := UVPrimes(x, y, z)
	L = Luminance(y / w.Y)
	u = 13 * L * (uPrime - w.UPrime)
	v = 13 * L * (vPrime - w.VPrime)
	return L, u, v
}

// XYZFromLuv converts a Luv color back to XYZ. It is the inverse of
// LuvFromXYZ. L=0 is the black singular point and returns exact zeros.
func XYZFromLuv(L, u, v float64, w WhitePoint) (x, y, z float64) {
	y = LuminanceInverse(L)
	if L == 0 {
		return 0, 0, 0
	}
	L13 := 13 * L
	uPrime := w.UPrime + u/L13
	vPrime := w.VPrime + v/L13
	return uvPrimesInverse(uPrime, vPrime, y)
}

// LabFromXYZ converts an XYZ color to Lab relative to the white point.
func LabFromXYZ(x, y, z float64, w WhitePoint) (L, a, b float64) {
	xp := x / w.X
	yp := y / w.Y
	zp := z / w.Z

	fx := labF(xp)
	fy := labF(yp)
	fz := labF(zp)

	L = Luminance(yp)
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return L, a, b
}

// XYZFromLab converts a Lab color back to XYZ. It is the inverse of
// LabFromXYZ.
func XYZFromLab(L, a, b float64, w WhitePoint) (x, y, z float64) {
	yp := LuminanceInverse(L)
	fy := labF(yp)
	fx := fy + a/500
	fz := fy - b/200
	xp := labFInverse(fx)
	zp := labFInverse(fz)
	return xp * w.X, yp * w.Y, zp * w.Z
}
