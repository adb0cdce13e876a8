package main

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// grey returns a neutral color with every channel set to v.
func grey(v float64) colorful.Color {
	return colorful.Color{R: v, G: v, B: v}
}

// fromHSV builds a color from hue, saturation and value, all in [0, 1].
func fromHSV(hue, sat, val float64) colorful.Color {
	return colorful.Hsv(hue*360, sat, val)
}

func addColor(a, b colorful.Color) colorful.Color {
	return colorful.Color{R: a.R + b.R, G: a.G + b.G, B: a.B + b.B}
}

func scaleColor(c colorful.Color, s float64) colorful.Color {
	return colorful.Color{R: c.R * s, G: c.G * s, B: c.B * s}
}

// lerpColor moves from a toward b by t in linear RGB space.
func lerpColor(a, b colorful.Color, t float64) colorful.Color {
	return a.BlendRgb(b, t)
}

func clampColor(c colorful.Color) colorful.Color {
	return c.Clamped()
}

// greyscale replaces every channel with the channel mean.
func greyscale(c colorful.Color) colorful.Color {
	return grey((c.R + c.G + c.B) / 3)
}

// toRGBA converts c to an opaque image/color value, clamping out-of-range channels.
func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// hexString formats c as #rrggbb for string-styled drawing backends.
func hexString(c colorful.Color) string {
	return c.Clamped().Hex()
}
