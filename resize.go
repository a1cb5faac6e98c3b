package ppmfx

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// ScaleMode selects the interpolator used by Resize.
type ScaleMode int

const (
	// ScaleNearest uses nearest-neighbor sampling. Fast, blocky.
	ScaleNearest ScaleMode = iota

	// ScaleBilinear uses bilinear interpolation.
	ScaleBilinear
)

// Resize returns a copy of src scaled to width × height using the
// given mode. It panics if either dimension is not positive, matching
// New. Resize is a convenience outside the filter enumeration; it is
// not reachable through Apply or Run.
func Resize(src *Image, width, height int, mode ScaleMode) *Image {
	var scaler xdraw.Scaler
	switch mode {
	case ScaleBilinear:
		scaler = xdraw.BiLinear
	default:
		scaler = xdraw.NearestNeighbor
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return FromStdImage(dst)
}
