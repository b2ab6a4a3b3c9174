package chromatics

import (
	"fmt"
	"strconv"
)

// HexFromIRGB formats a displayable integer color as a 7 character hex
// string like "#AB13D2". Channels are clamped into 0-255 first, so colors
// from converters with a deeper bit depth truncate silently.
func HexFromIRGB(irgb IRGB) string {
	clamp := func(x int) int { return min(255, max(0, x)) }
	return fmt.Sprintf("#%02X%02X%02X", clamp(irgb.R), clamp(irgb.G), clamp(irgb.B))
}

// IRGBFromHex parses a hex color string like "#AB13D2" into a displayable
// integer color. The string must be exactly 7 characters, start with '#',
// and contain valid hex digit pairs; anything else fails with a
// FormatError.
func IRGBFromHex(s string) (IRGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return IRGB{}, formatErrorf("expecting a 7 character hex color like #AB13D2, got %q", s)
	}
	var channels [3]int
	for i := range 3 {
		v, err := strconv.ParseUint(s[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return IRGB{}, formatErrorf("invalid hex digits in color %q", s)
		}
		channels[i] = int(v)
	}
	return IRGB{channels[0], channels[1], channels[2]}, nil
}
