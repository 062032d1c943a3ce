// Package paint turns simulation colours into things people can see and hear:
// packed colour helpers, the sand palette, a parallel RGBA rasterizer and the
// activity-driven rustle sound.
package paint

import (
	"image/color"
	"math"

	"FallingSand/sand"
)

// Black is an opaque black background.
var Black = RGB(0, 0, 0)

// Pack builds a colour laid out as A<<24 | B<<16 | G<<8 | R, which is RGBA
// byte order once stored little-endian.
func Pack(r, g, b, a uint8) sand.Colour {
	return sand.Colour(uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

// RGB packs an opaque colour.
func RGB(r, g, b uint8) sand.Colour { return Pack(r, g, b, 0xff) }

// Unpack splits a packed colour into its channels.
func Unpack(c sand.Colour) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// ToRGBA converts a packed colour for image/color consumers.
func ToRGBA(c sand.Colour) color.RGBA {
	r, g, b, a := Unpack(c)
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// HSV packs an opaque colour from hue in degrees and saturation/value in [0, 1].
func HSV(h, s, v float64) sand.Colour {
	r, g, b := hsvToRGB(h, s, v)
	return RGB(unit8(r), unit8(g), unit8(b))
}

func unit8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// hsvToRGB helper
func hsvToRGB(h, s, v float64) (float64, float64, float64) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}
