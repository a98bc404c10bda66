// Package color implements perceptual color matching: sRGB hex values are
// converted to CIE L*a*b* (D65 reference white) and compared by CIE76
// Delta-E, the Euclidean distance in Lab space.
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Lab is a point in CIE L*a*b* space.
type Lab struct {
	L float64
	A float64
	B float64
}

// D65 reference white.
const (
	whiteX = 0.95047
	whiteY = 1.0
	whiteZ = 1.08883
)

// HexToLab converts an sRGB hex color to Lab via the standard
// sRGB → linear → XYZ → Lab chain. Parsing is case-insensitive and
// accepts an optional "#" prefix and the short #RGB form.
// Black maps to (0,0,0) and white to (100,0,0).
func HexToLab(hex string) (Lab, error) {
	r, g, b, err := parseHex(hex)
	if err != nil {
		return Lab{}, err
	}

	rl := srgbToLinear(r)
	gl := srgbToLinear(g)
	bl := srgbToLinear(b)

	x := 0.4124*rl + 0.3576*gl + 0.1805*bl
	y := 0.2126*rl + 0.7152*gl + 0.0722*bl
	z := 0.0193*rl + 0.1192*gl + 0.9505*bl

	fx := labF(x / whiteX)
	fy := labF(y / whiteY)
	fz := labF(z / whiteZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}, nil
}

// Distance returns the CIE76 Delta-E between two Lab points. It is
// symmetric and zero iff the points are identical.
func Distance(a, b Lab) float64 {
	dl := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func labF(t float64) float64 {
	if t > 0.008856 {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}

// parseHex returns the channels of a hex color in [0,1].
func parseHex(hex string) (r, g, b float64, err error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("color: malformed hex %q", hex)
	}
	v, perr := strconv.ParseUint(s, 16, 32)
	if perr != nil {
		return 0, 0, 0, fmt.Errorf("color: malformed hex %q", hex)
	}
	r = float64(v>>16&0xFF) / 255
	g = float64(v>>8&0xFF) / 255
	b = float64(v&0xFF) / 255
	return r, g, b, nil
}

// IsHex reports whether s parses as a hex color.
func IsHex(s string) bool {
	_, _, _, err := parseHex(s)
	return err == nil
}

// Normalize returns the canonical uppercase "#RRGGBB" form of a hex color,
// or the input unchanged if it does not parse.
func Normalize(hex string) string {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return hex
	}
	if _, err := strconv.ParseUint(s, 16, 32); err != nil {
		return hex
	}
	return "#" + strings.ToUpper(s)
}
