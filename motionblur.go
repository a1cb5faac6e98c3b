package ppmfx

import "math"

// motionBlurWindow is the horizontal sample window: the pixel itself
// plus up to four pixels to its right.
const motionBlurWindow = 5

// MotionBlur returns a new image where every pixel is the rounded
// average of the in-bounds samples at (x..x+4, y). The window is
// truncated at the right edge, so the sample count ranges from 5 down
// to 1 at the rightmost column; unlike Emboss, every pixel gets a
// defined output. The clamp is defensive: a true average of in-range
// values cannot leave [0, 255].
func MotionBlur(src *Image) *Image {
	dst := New(src.width, src.height)
	for y := 0; y < src.height; y++ {
		for x := 0; x < src.width; x++ {
			var r, g, b int32
			count := 0
			for k := 0; k < motionBlurWindow && x+k < src.width; k++ {
				c := src.GetPixel(x+k, y)
				r += c.R
				g += c.G
				b += c.B
				count++
			}
			n := float64(count)
			dst.SetPixel(x, y, Color{
				R: int32(math.Round(float64(r) / n)),
				G: int32(math.Round(float64(g) / n)),
				B: int32(math.Round(float64(b) / n)),
			}.Clamp())
		}
	}
	return dst
}
