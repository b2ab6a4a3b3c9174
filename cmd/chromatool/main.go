// chromatool prints every representation of a color given on the command
// line as a hex string, a CSS color name, or an XYZ triple.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"

	"github.com/chromatics-dev/chromatics"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  chromatool hex '#AB13D2'
  chromatool name lavender
  chromatool xyz X Y Z`)
	os.Exit(1)
}

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if len(os.Args) < 3 {
		usage()
	}
	conv := chromatics.SRGB()

	var xyz chromatics.XYZ
	switch os.Args[1] {
	case "hex":
		irgb, err := chromatics.IRGBFromHex(os.Args[2])
		if err != nil {
			log.Fatal(err)
		}
		xyz = conv.XYZFromRGB(conv.RGBFromIRGB(irgb))
	case "name":
		c, ok := colornames.Map[os.Args[2]]
		if !ok {
			log.Fatalf("unknown color name %q", os.Args[2])
		}
		irgb := chromatics.IRGB{R: int(c.R), G: int(c.G), B: int(c.B)}
		xyz = conv.XYZFromRGB(conv.RGBFromIRGB(irgb))
	case "xyz":
		if len(os.Args) != 5 {
			usage()
		}
		vals := make([]float64, 3)
		for i, arg := range os.Args[2:5] {
			v, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				log.Fatalf("bad XYZ component %q: %v", arg, err)
			}
			vals[i] = v
		}
		xyz = chromatics.XYZ{X: vals[0], Y: vals[1], Z: vals[2]}
	default:
		usage()
	}

	rgb := conv.RGBFromXYZ(xyz)
	irgb, flags := conv.ClipRGB(rgb)
	if flags.Chromaticity {
		log.Warn("color is outside the sRGB gamut, chromaticity was clipped")
	}
	if flags.Intensity {
		log.Warn("color is too bright for the display, intensity was clipped")
	}
	lab := conv.LabFromXYZ(xyz)
	luv := conv.LuvFromXYZ(xyz)

	fmt.Printf("xyz:  %.6f %.6f %.6f\n", xyz.X, xyz.Y, xyz.Z)
	fmt.Printf("rgb:  %.6f %.6f %.6f\n", rgb.R, rgb.G, rgb.B)
	fmt.Printf("irgb: %d %d %d\n", irgb.R, irgb.G, irgb.B)
	fmt.Printf("hex:  %s\n", chromatics.HexFromIRGB(irgb))
	fmt.Printf("lab:  %.4f %.4f %.4f\n", lab.L, lab.A, lab.B)
	fmt.Printf("luv:  %.4f %.4f %.4f\n", luv.L, luv.U, luv.V)
}
