package ppmfx

import (
	"strconv"
	"strings"
)

// Encode serializes an Image back to plain-text pixel-map (P3) form:
// the magic marker, "width height", "255", then one "r g b" line per
// pixel in row-major order. Channels are clamped before formatting, so
// the output always round-trips through Decode.
func Encode(img *Image) string {
	var b strings.Builder
	// Header plus up to 12 bytes per pixel ("255 255 255\n").
	b.Grow(len(magic) + 32 + img.width*img.height*12)

	b.WriteString(magic)
	b.WriteByte('\n')
	b.WriteString(strconv.Itoa(img.width))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(img.height))
	b.WriteByte('\n')
	b.WriteString(strconv.Itoa(maxChannel))
	b.WriteByte('\n')

	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			c := img.GetPixel(x, y).Clamp()
			b.WriteString(strconv.Itoa(int(c.R)))
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(int(c.G)))
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(int(c.B)))
			b.WriteByte('\n')
		}
	}

	return b.String()
}
