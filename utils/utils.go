package utils

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"
)

// Contains returns true if the slice contains the value.
func Contains[T comparable](slice []T, value T) bool {
	for _, v := range slice {
		if v == value {
			return true
		}
	}
	return false
}

// HexToRGBA converts a color expressed in hexadecimal format (#rgb or #rrggbb) to RGBA.
func HexToRGBA(x string) (color.NRGBA, error) {
	var r, g, b uint8

	hex := strings.TrimPrefix(x, "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color: %q", x)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color: %q", x)
	}
	r, g, b = uint8(v>>16), uint8(v>>8), uint8(v)

	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// ParseRect parses a rectangle given as "x,y,w,h" in image coordinates.
func ParseRect(s string) (image.Rectangle, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return image.Rectangle{}, fmt.Errorf("rectangle %q should be in the x,y,w,h format", s)
	}

	var vals [4]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return image.Rectangle{}, fmt.Errorf("rectangle %q: %v", s, err)
		}
		vals[i] = v
	}
	if vals[2] < 0 || vals[3] < 0 {
		return image.Rectangle{}, fmt.Errorf("rectangle %q has a negative size", s)
	}

	return image.Rect(vals[0], vals[1], vals[0]+vals[2], vals[1]+vals[3]), nil
}
