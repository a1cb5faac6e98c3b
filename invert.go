package ppmfx

// Invert returns a new image with every channel v replaced by 255-v.
// No clamping is needed: inputs are in [0, 255], so outputs are too.
// Invert is its own inverse.
func Invert(src *Image) *Image {
	dst := New(src.width, src.height)
	for i, c := range src.pix {
		dst.pix[i] = Color{
			R: maxChannel - c.R,
			G: maxChannel - c.G,
			B: maxChannel - c.B,
		}
	}
	return dst
}
