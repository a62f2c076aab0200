package utils

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	shortHexPattern = regexp.MustCompile(`(?i)^#?([\da-f])([\da-f])([\da-f])$`)
	longHexPattern  = regexp.MustCompile(`(?i)^#?([\da-f]{2})([\da-f]{2})([\da-f]{2})$`)
)

// RGB is a red, green, blue triple.
type RGB [3]uint8

// String returns the color as lowercase "#rrggbb".
func (c RGB) String() string {
	return RGBToHex(c)
}

// HexToRGB parses "#rgb", "rgb", "#rrggbb" or "rrggbb" (case-insensitive).
// Shorthand digits are doubled ("03F" is "0033FF").
func HexToRGB(hex string) (RGB, bool) {
	if m := shortHexPattern.FindStringSubmatch(hex); m != nil {
		hex = m[1] + m[1] + m[2] + m[2] + m[3] + m[3]
	}

	m := longHexPattern.FindStringSubmatch(hex)
	if m == nil {
		return RGB{}, false
	}

	var rgb RGB
	for i, part := range m[1:] {
		v, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			return RGB{}, false
		}
		rgb[i] = uint8(v)
	}
	return rgb, true
}

// ParseHex is HexToRGB returning an error for invalid input.
func ParseHex(hex string) (RGB, error) {
	rgb, ok := HexToRGB(hex)
	if !ok {
		return RGB{}, NewInvalidHexColorError(hex)
	}
	return rgb, nil
}

// RGBToHex formats c as lowercase "#rrggbb".
func RGBToHex(c RGB) string {
	return fmt.Sprintf(HexColorFormat, c[0], c[1], c[2])
}

// IsRGBLight reports whether c is light enough to need dark text on top of it.
func IsRGBLight(c RGB) bool {
	luma := float64(c[0])*LumaWeightRed + float64(c[1])*LumaWeightGreen + float64(c[2])*LumaWeightBlue
	return luma > LightnessThreshold
}
