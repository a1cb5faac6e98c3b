package ppmfx

import "errors"

// Decode and dispatch errors. Decode wraps these with the offending
// coordinate or token via fmt.Errorf("%w: ..."), so match them with
// errors.Is rather than equality.
var (
	// ErrBadMagic is returned when the input does not start with the
	// P3 magic marker.
	ErrBadMagic = errors.New("ppmfx: bad magic")

	// ErrBadDimensions is returned when width or height is missing,
	// unparseable, or not positive.
	ErrBadDimensions = errors.New("ppmfx: bad dimensions")

	// ErrUnsupportedMaxValue is returned when the maximum channel
	// value is anything other than the literal 255.
	ErrUnsupportedMaxValue = errors.New("ppmfx: unsupported max channel value")

	// ErrTruncatedPixelData is returned when the pixel data ends
	// before width*height RGB triplets have been read.
	ErrTruncatedPixelData = errors.New("ppmfx: truncated pixel data")

	// ErrInvalidChannelValue is returned when a channel token is not
	// an integer in [0, 255].
	ErrInvalidChannelValue = errors.New("ppmfx: invalid channel value")

	// ErrPixelCountMismatch is returned when the number of pixels
	// filled does not equal width*height. The per-pixel truncation
	// check makes this unreachable; it is kept as a redundant
	// invariant assertion.
	ErrPixelCountMismatch = errors.New("ppmfx: pixel count mismatch")

	// ErrUnknownFilter is returned by ParseKind when the filter name
	// is not one of the four recognized kinds.
	ErrUnknownFilter = errors.New("ppmfx: unknown filter")
)
