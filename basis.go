package chromatics

// calibrateBasis derives the XYZ<->RGB basis-change matrices for a display
// from its three phosphor chromaticities and white point. The white point is
// normalized to Y=1 and the linear system
//
//	[phosphors] * intensities = white
//
// is solved for the full-strength intensity of each phosphor; the phosphor
// columns scaled by those intensities form the xyz-from-rgb matrix.
// See Foley/Van Dam eqs. 13.27 and 13.29.
func calibrateBasis(red, green, blue, white XYZ) (xyzFromRGB, rgbFromXYZ Matrix3, err error) {
	phosphors := Matrix3{
		{red.X, green.X, blue.X},
		{red.Y, green.Y, blue.Y},
		{red.Z, green.Z, blue.Z},
	}
	inv, err := phosphors.Inverted()
	if err != nil {
		return xyzFromRGB, rgbFromXYZ, configErrorf("phosphor chromaticities are degenerate: %v", err)
	}
	w := white.NormalizedY1()
	ir, ig, ib := inv.MulVec(w.X, w.Y, w.Z)
	xyzFromRGB = Matrix3{
		{red.X * ir, green.X * ig, blue.X * ib},
		{red.Y * ir, green.Y * ig, blue.Y * ib},
		{red.Z * ir, green.Z * ig, blue.Z * ib},
	}
	rgbFromXYZ, err = xyzFromRGB.Inverted()
	if err != nil {
		return xyzFromRGB, rgbFromXYZ, configErrorf("calibrated basis is singular: %v", err)
	}
	return xyzFromRGB, rgbFromXYZ, nil
}
