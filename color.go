package ppmfx

import "image/color"

// Color is a single RGB pixel value. Channels are int32 so that
// unclamped convolution sums, which go negative and well past 255,
// fit without overflow. After Clamp each channel lies in [0, 255].
//
// Colors are plain values: each image cell owns its own Color and
// filters always construct new ones rather than aliasing.
type Color struct {
	R, G, B int32
}

// Clamp restricts each channel to the [0, 255] range.
func (c Color) Clamp() Color {
	return Color{
		R: clamp255(c.R),
		G: clamp255(c.G),
		B: clamp255(c.B),
	}
}

// NRGBA converts the Color to the standard color.NRGBA type.
// Channels are clamped first, so the conversion is always lossless
// for decoded pixel values.
func (c Color) NRGBA() color.NRGBA {
	cc := c.Clamp()
	return color.NRGBA{
		R: uint8(cc.R),
		G: uint8(cc.G),
		B: uint8(cc.B),
		A: 255,
	}
}

// fromStdColor converts a standard color.Color to a Color,
// discarding alpha. Values are un-premultiplied 8-bit channels.
func fromStdColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: int32(n.R),
		G: int32(n.G),
		B: int32(n.B),
	}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(v int32) int32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Common colors
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
	Red   = Color{255, 0, 0}
	Green = Color{0, 255, 0}
	Blue  = Color{0, 0, 255}
)
