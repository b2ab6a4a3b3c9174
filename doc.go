/*
Package chromatics converts colors between device-independent and
device-dependent representations: CIE XYZ tristimulus values, linear RGB,
gamma-corrected integer RGB (irgb), and the nearly perceptually uniform Luv
and Lab spaces.

All conversions go through a Converter, which is calibrated from the
chromaticities of a display's three phosphors and its white point. The
default calibration is the sRGB standard:

	conv := chromatics.SRGB()
	irgb := conv.IRGBFromXYZ(xyz)

Linear RGB values outside the displayable range (negative, or greater than
one) are valid intermediate results describing out-of-gamut colors; the clip
pipeline maps them into the displayable integer range when an integer color
is requested. Converters are immutable after construction and safe for
concurrent use.
*/
package chromatics
