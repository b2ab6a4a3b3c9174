// Package gamma implements the nonlinear curves that map a single color
// channel between the linear domain (values proportional to light intensity)
// and the display domain (values proportional to palette entries).
package gamma

import (
	"fmt"
	"math"
)

// Effective gamma exponents of common displays.
const (
	// StandardGamma is the effective exponent of the sRGB curve.
	StandardGamma = 2.2
	// PoyntonGamma is the physical exponent of a well adjusted CRT,
	// without the dim viewing environment correction that the nominal
	// 2.2 includes. See Poynton's Gamma FAQ.
	PoyntonGamma = 2.45
)

// Curve converts one channel between the linear and display domains.
// DisplayFromLinear and LinearFromDisplay are inverses of each other to
// numerical precision for inputs in [0,1]. Prepare derives internal
// constants and must be called before the curve is used.
type Curve interface {
	DisplayFromLinear(x float64) float64
	LinearFromDisplay(x float64) float64
	Prepare() error
	String() string
}

var _ Curve = (*Power)(nil)
var _ Curve = (*SRGB)(nil)
var _ Curve = (*Parametric)(nil)

// Power is the simple power-law curve x^(1/gamma). Inputs at or below zero
// pass through unchanged.
type Power struct {
	Gamma    float64
	invGamma float64
}

func (c *Power) Prepare() error {
	if c.Gamma <= 0 {
		return fmt.Errorf("power curve requires a positive gamma, got %g", c.Gamma)
	}
	c.invGamma = 1 / c.Gamma
	return nil
}

func (c *Power) DisplayFromLinear(x float64) float64 {
	if x <= 0 {
		return x
	}
	return math.Pow(x, c.invGamma)
}

func (c *Power) LinearFromDisplay(x float64) float64 {
	if x <= 0 {
		return x
	}
	return math.Pow(x, c.Gamma)
}

func (c *Power) String() string { return fmt.Sprintf("Power{%g}", c.Gamma) }

// SRGB is the piecewise curve from the sRGB standard. The breakpoints of
// the two directions are deliberately asymmetric (0.00304 vs 0.03928); this
// is the published legacy behavior, not an oversight.
type SRGB struct{}

func (SRGB) Prepare() error { return nil }

func (SRGB) DisplayFromLinear(x float64) float64 {
	if x <= 0.00304 {
		return 12.92 * x
	}
	return 1.055*math.Pow(x, 1/2.4) - 0.055
}

func (SRGB) LinearFromDisplay(x float64) float64 {
	if x <= 0.03928 {
		return x / 12.92
	}
	return math.Pow((x+0.055)/1.055, 2.4)
}

func (SRGB) String() string { return "SRGB{}" }

// Parametric is the generalized piecewise curve used by several video
// standards: linear with slope Phi near black, offset power law elsewhere.
//
//	display = Phi * linear                     linear <  K0/Phi
//	display = (1+A) * linear^(1/Gamma) - A     linear >= K0/Phi
//
// Prepare recomputes K0 and Phi from Gamma and A alone so that the two
// regions meet with continuous value and slope; any supplied K0/Phi are
// overwritten.
type Parametric struct {
	Gamma float64
	A     float64
	K0    float64
	Phi   float64

	onePlusA  float64
	invGamma  float64
	k0OverPhi float64
}

func (c *Parametric) Prepare() error {
	if c.Gamma <= 1 {
		return fmt.Errorf("parametric curve requires gamma > 1, got %g", c.Gamma)
	}
	if c.A <= 0 {
		return fmt.Errorf("parametric curve requires a positive offset, got %g", c.A)
	}
	c.onePlusA = 1 + c.A
	c.invGamma = 1 / c.Gamma
	// Continuity of value and slope at the edge of black requires:
	//   K0  = a / (gamma - 1)
	//   Phi = (1+a)^gamma * (gamma-1)^(gamma-1) / (a^(gamma-1) * gamma^gamma)
	c.K0 = c.A / (c.Gamma - 1)
	c.Phi = math.Pow(c.onePlusA, c.Gamma) * math.Pow(c.Gamma-1, c.Gamma-1) /
		(math.Pow(c.A, c.Gamma-1) * math.Pow(c.Gamma, c.Gamma))
	c.k0OverPhi = c.K0 / c.Phi
	return nil
}

func (c *Parametric) DisplayFromLinear(x float64) float64 {
	if x < c.k0OverPhi {
		return c.Phi * x
	}
	return c.onePlusA*math.Pow(x, c.invGamma) - c.A
}

func (c *Parametric) LinearFromDisplay(x float64) float64 {
	if x < c.K0 {
		return x / c.Phi
	}
	return math.Pow((x+c.A)/c.onePlusA, c.Gamma)
}

func (c *Parametric) String() string {
	return fmt.Sprintf("Parametric{gamma: %g a: %g K0: %g Phi: %g}", c.Gamma, c.A, c.K0, c.Phi)
}

// NewSRGBParametric returns the parametric form of the sRGB curve. The
// derived K0 and Phi land close to the published 0.03928 and 12.92.
func NewSRGBParametric() (*Parametric, error) {
	c := &Parametric{Gamma: 2.4, A: 0.055}
	if err := c.Prepare(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewUHDTV10 returns the Rec. 2020 curve for 10 bits per component.
func NewUHDTV10() (*Parametric, error) {
	c := &Parametric{Gamma: 1 / 0.45, A: 0.099}
	if err := c.Prepare(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewUHDTV12 returns the Rec. 2020 curve for 12 bits per component.
func NewUHDTV12() (*Parametric, error) {
	c := &Parametric{Gamma: 1 / 0.45, A: 0.0993}
	if err := c.Prepare(); err != nil {
		return nil, err
	}
	return c, nil
}
