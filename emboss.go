package ppmfx

// embossKernel is the fixed 3×3 convolution kernel, row-major.
var embossKernel = [3][3]int32{
	{-2, -1, 0},
	{-1, 1, 1},
	{0, 1, 2},
}

// Emboss returns a new image where every interior pixel is the clamped
// 3×3 convolution of its neighborhood with embossKernel, per channel.
//
// The kernel is never evaluated on the border ring (x=0, x=width-1,
// y=0, y=height-1); those pixels stay at the zero value, pure black.
// This is the intended edge policy: out-of-bounds samples are not
// reflected or clamped.
func Emboss(src *Image) *Image {
	dst := New(src.width, src.height)
	for y := 1; y < src.height-1; y++ {
		for x := 1; x < src.width-1; x++ {
			var sum Color
			for ky := 0; ky < 3; ky++ {
				for kx := 0; kx < 3; kx++ {
					w := embossKernel[ky][kx]
					n := src.GetPixel(x+kx-1, y+ky-1)
					sum.R += w * n.R
					sum.G += w * n.G
					sum.B += w * n.B
				}
			}
			dst.SetPixel(x, y, sum.Clamp())
		}
	}
	return dst
}
