package ppmfx

import "math"

// Grayscale returns a new image with every pixel set to the rounded
// average of its three channels (round half away from zero). The
// average of values in [0, 255] stays in range, so no clamp is needed.
// Grayscale is idempotent.
func Grayscale(src *Image) *Image {
	dst := New(src.width, src.height)
	for i, c := range src.pix {
		gray := int32(math.Round(float64(c.R+c.G+c.B) / 3))
		dst.pix[i] = Color{R: gray, G: gray, B: gray}
	}
	return dst
}
