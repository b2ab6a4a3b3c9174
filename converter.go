package chromatics

import (
	"fmt"
	"sync"

	"github.com/chromatics-dev/chromatics/gamma"
	"github.com/chromatics-dev/chromatics/percept"
)

// GammaMethod selects the gamma model used when converting between linear
// and displayable channel values.
type GammaMethod int

const (
	// GammaSRGB applies the sRGB piecewise curve. The default.
	GammaSRGB GammaMethod = iota
	// GammaPower applies a simple power law with the configured exponent.
	GammaPower
)

func (m GammaMethod) String() string {
	switch m {
	case GammaSRGB:
		return "srgb"
	case GammaPower:
		return "power"
	}
	return fmt.Sprintf("GammaMethod(%d)", int(m))
}

// ClipMethod selects how negative (out-of-gamut) linear RGB channels are
// made displayable.
type ClipMethod int

const (
	// ClipAddWhite desaturates toward white just enough to remove
	// negative channels, preserving the maximum channel's relative
	// position. The default.
	ClipAddWhite ClipMethod = iota
	// ClipClampToZero sets each negative channel to zero independently.
	ClipClampToZero
)

func (m ClipMethod) String() string {
	switch m {
	case ClipAddWhite:
		return "add-white"
	case ClipClampToZero:
		return "clamp-to-zero"
	}
	return fmt.Sprintf("ClipMethod(%d)", int(m))
}

type config struct {
	phosphorRed, phosphorGreen, phosphorBlue XYZ
	whitePoint                               XYZ
	gammaMethod                              GammaMethod
	gammaValue                               float64
	clipMethod                               ClipMethod
	bitDepth                                 int
}

// An Option customizes converter construction.
type Option func(*config)

// WithPhosphors sets the chromaticities of the display's red, green and
// blue phosphors. Defaults to the sRGB standard phosphors.
func WithPhosphors(red, green, blue XYZ) Option {
	return func(c *config) {
		c.phosphorRed, c.phosphorGreen, c.phosphorBlue = red, green, blue
	}
}

// WithWhitePoint sets the white produced when all phosphors are at full
// strength. It is also the reference white for Luv and Lab conversions.
// Defaults to D65.
func WithWhitePoint(white XYZ) Option {
	return func(c *config) { c.whitePoint = white }
}

// WithGamma selects the gamma correction method. The exponent is used only
// by GammaPower; the sRGB curve has an effective exponent of 2.2 built in.
func WithGamma(method GammaMethod, exponent float64) Option {
	return func(c *config) {
		c.gammaMethod = method
		c.gammaValue = exponent
	}
}

// WithClipMethod selects the chromaticity clipping policy.
func WithClipMethod(method ClipMethod) Option {
	return func(c *config) { c.clipMethod = method }
}

// WithBitDepth sets the bit depth of displayable integer colors.
// Defaults to 8, for channel values 0-255.
func WithBitDepth(bits int) Option {
	return func(c *config) { c.bitDepth = bits }
}

// Converter holds a display calibration and converts colors between the
// XYZ, RGB, irgb, Luv and Lab models. It is immutable after construction;
// to change the calibration, build a new Converter.
type Converter struct {
	xyzFromRGB Matrix3
	rgbFromXYZ Matrix3
	white      percept.WhitePoint
	curve      gamma.Curve
	clipMethod ClipMethod
	bitDepth   int
	maxValue   int
	maxF       float64
}

// NewConverter builds a Converter. With no options the result is the sRGB
// standard: sRGB phosphors and D65 white, the sRGB gamma curve, add-white
// clipping, and 8-bit integer colors. Unrecognized gamma or clip methods,
// a non-positive bit depth, and degenerate phosphors all fail with a
// ConfigError.
func NewConverter(opts ...Option) (*Converter, error) {
	cfg := config{
		phosphorRed:   SRGBRed,
		phosphorGreen: SRGBGreen,
		phosphorBlue:  SRGBBlue,
		whitePoint:    SRGBWhite,
		gammaMethod:   GammaSRGB,
		gammaValue:    gamma.StandardGamma,
		clipMethod:    ClipAddWhite,
		bitDepth:      8,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	xyzFromRGB, rgbFromXYZ, err := calibrateBasis(
		cfg.phosphorRed, cfg.phosphorGreen, cfg.phosphorBlue, cfg.whitePoint)
	if err != nil {
		return nil, err
	}

	var curve gamma.Curve
	switch cfg.gammaMethod {
	case GammaSRGB:
		curve = gamma.SRGB{}
	case GammaPower:
		curve = &gamma.Power{Gamma: cfg.gammaValue}
	default:
		return nil, configErrorf("unrecognized gamma method %v", cfg.gammaMethod)
	}
	if err := curve.Prepare(); err != nil {
		return nil, configErrorf("gamma curve: %v", err)
	}

	switch cfg.clipMethod {
	case ClipAddWhite, ClipClampToZero:
	default:
		return nil, configErrorf("unrecognized clip method %v", cfg.clipMethod)
	}

	if cfg.bitDepth < 1 || cfg.bitDepth > 30 {
		return nil, configErrorf("bit depth must be in 1..30, got %d", cfg.bitDepth)
	}
	maxValue := 1<<cfg.bitDepth - 1

	wp := cfg.whitePoint.NormalizedY1()
	return &Converter{
		xyzFromRGB: xyzFromRGB,
		rgbFromXYZ: rgbFromXYZ,
		white:      percept.NewWhitePoint(wp.X, wp.Y, wp.Z),
		curve:      curve,
		clipMethod: cfg.clipMethod,
		bitDepth:   cfg.bitDepth,
		maxValue:   maxValue,
		maxF:       float64(maxValue),
	}, nil
}

var srgbConverter = sync.OnceValue(func() *Converter {
	c, err := NewConverter()
	if err != nil {
		panic(err)
	}
	return c
})

// SRGB returns the shared converter for the sRGB standard. The instance is
// immutable and safe for concurrent use.
func SRGB() *Converter {
	return srgbConverter()
}

// BitDepth reports the configured bit depth of integer colors.
func (c *Converter) BitDepth() int { return c.bitDepth }

// MaxValue reports the largest integer channel value, 2^bitdepth - 1.
func (c *Converter) MaxValue() int { return c.maxValue }

// XYZFromRGBMatrix returns a copy of the calibrated xyz-from-rgb matrix.
func (c *Converter) XYZFromRGBMatrix() Matrix3 { return c.xyzFromRGB }

// RGBFromXYZMatrix returns a copy of the calibrated rgb-from-xyz matrix.
func (c *Converter) RGBFromXYZMatrix() Matrix3 { return c.rgbFromXYZ }

// RGBFromXYZ converts a tristimulus value to linear RGB for this display.
// The result may lie outside [0,1] when the color is out of gamut.
func (c *Converter) RGBFromXYZ(xyz XYZ) RGB {
	r, g, b := c.rgbFromXYZ.MulVec(xyz.X, xyz.Y, xyz.Z)
	return RGB{r, g, b}
}

// XYZFromRGB converts a linear RGB color to a tristimulus value.
func (c *Converter) XYZFromRGB(rgb RGB) XYZ {
	x, y, z := c.xyzFromRGB.MulVec(rgb.R, rgb.G, rgb.B)
	return XYZ{x, y, z}
}

// BrightestRGBFromXYZ converts a tristimulus value to linear RGB and scales
// it uniformly so its largest channel is exactly ceiling, preserving
// chromaticity. Pass a ceiling of 1 for maximum displayable brightness.
// Black, and colors whose largest channel is already at most the ceiling
// after scaling, are handled without division by zero.
func (c *Converter) BrightestRGBFromXYZ(xyz XYZ, ceiling float64) RGB {
	rgb := c.RGBFromXYZ(xyz)
	if m := max(rgb.R, rgb.G, rgb.B); m != 0 {
		rgb = rgb.Scaled(ceiling / m)
	}
	return rgb
}

// LuvFromXYZ converts a tristimulus value to Luv relative to the
// converter's reference white.
func (c *Converter) LuvFromXYZ(xyz XYZ) Luv {
	L, u, v := percept.LuvFromXYZ(xyz.X, xyz.Y, xyz.Z, c.white)
	return Luv{L, u, v}
}

// XYZFromLuv converts a Luv color back to XYZ.
func (c *Converter) XYZFromLuv(luv Luv) XYZ {
	x, y, z := percept.XYZFromLuv(luv.L, luv.U, luv.V, c.white)
	return XYZ{x, y, z}
}

// LabFromXYZ converts a tristimulus value to Lab relative to the
// converter's reference white.
func (c *Converter) LabFromXYZ(xyz XYZ) Lab {
	L, a, b := percept.LabFromXYZ(xyz.X, xyz.Y, xyz.Z, c.white)
	return Lab{L, a, b}
}

// XYZFromLab converts a Lab color back to XYZ.
func (c *Converter) XYZFromLab(lab Lab) XYZ {
	x, y, z := percept.XYZFromLab(lab.L, lab.A, lab.B, c.white)
	return XYZ{x, y, z}
}

// IRGBFromRGB converts a linear RGB color into a displayable integer color,
// clipping as necessary.
func (c *Converter) IRGBFromRGB(rgb RGB) IRGB {
	irgb, _ := c.ClipRGB(rgb)
	return irgb
}

// RGBFromIRGB converts a displayable integer color back to linear RGB. It
// inverts IRGBFromRGB exactly on inputs that required no clipping.
func (c *Converter) RGBFromIRGB(irgb IRGB) RGB {
	return RGB{
		c.curve.LinearFromDisplay(float64(irgb.R) / c.maxF),
		c.curve.LinearFromDisplay(float64(irgb.G) / c.maxF),
		c.curve.LinearFromDisplay(float64(irgb.B) / c.maxF),
	}
}

// IRGBFromXYZ converts a tristimulus value directly into a displayable
// integer color.
func (c *Converter) IRGBFromXYZ(xyz XYZ) IRGB {
	return c.IRGBFromRGB(c.RGBFromXYZ(xyz))
}

// HexFromRGB clips a linear RGB color and formats it as a hex string.
func (c *Converter) HexFromRGB(rgb RGB) string {
	return HexFromIRGB(c.IRGBFromRGB(rgb))
}

// HexFromXYZ converts a tristimulus value directly into a hex string.
func (c *Converter) HexFromXYZ(xyz XYZ) string {
	return c.HexFromRGB(c.RGBFromXYZ(xyz))
}
