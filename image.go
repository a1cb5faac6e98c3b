package ppmfx

import (
	"fmt"
	"image"
	"image/color"
)

// Image is a rectangular grid of Color values stored flat in
// row-major order (index y*width+x).
//
// Images are constructed zero-filled with fixed dimensions, populated
// once by Decode or by a filter's output pass, and treated as read-only
// afterwards. Filters never write into their source Image.
type Image struct {
	width  int
	height int
	pix    []Color
}

// New creates a zero-filled (all-black) image with the given
// dimensions. It panics if either dimension is not positive; Decode
// validates dimensions before calling New, so a panic here always
// indicates a caller bug.
func New(width, height int) *Image {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("ppmfx: invalid image dimensions %dx%d", width, height))
	}
	return &Image{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

// Width returns the width of the image in pixels.
func (m *Image) Width() int {
	return m.width
}

// Height returns the height of the image in pixels.
func (m *Image) Height() int {
	return m.height
}

// GetPixel returns the color of a single pixel.
// It panics if (x, y) is out of bounds.
func (m *Image) GetPixel(x, y int) Color {
	return m.pix[m.index(x, y)]
}

// SetPixel sets the color of a single pixel.
// It panics if (x, y) is out of bounds.
func (m *Image) SetPixel(x, y int, c Color) {
	m.pix[m.index(x, y)] = c
}

// index maps (x, y) to the flat pixel offset. Out-of-bounds access is
// a programming error: every decode and filter loop is bounds-safe by
// construction, so there is nothing sensible to return for a miss.
func (m *Image) index(x, y int) int {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		panic(fmt.Sprintf("ppmfx: pixel (%d, %d) out of bounds for %dx%d image", x, y, m.width, m.height))
	}
	return y*m.width + x
}

// At implements the image.Image interface.
func (m *Image) At(x, y int) color.Color {
	return m.GetPixel(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// ColorModel implements the image.Image interface.
func (m *Image) ColorModel() color.Model {
	return color.NRGBAModel
}

// FromStdImage converts any standard image.Image into a pixel-map
// Image. Alpha is discarded; channel values are un-premultiplied.
func FromStdImage(img image.Image) *Image {
	bounds := img.Bounds()
	m := New(bounds.Dx(), bounds.Dy())

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			m.SetPixel(x, y, fromStdColor(c))
		}
	}

	return m
}

// ToStdImage converts the image to an image.NRGBA with fully opaque
// alpha.
func (m *Image) ToStdImage() *image.NRGBA {
	img := image.NewNRGBA(m.Bounds())
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			img.SetNRGBA(x, y, m.GetPixel(x, y).NRGBA())
		}
	}
	return img
}
