package ppmfx

import "fmt"

// Kind identifies one of the built-in filters.
type Kind int

const (
	// KindEmboss is the 3×3 emboss convolution.
	KindEmboss Kind = iota

	// KindInvert replaces every channel v with 255-v.
	KindInvert

	// KindGrayscale averages the three channels of every pixel.
	KindGrayscale

	// KindMotionBlur averages a horizontal window of up to 5 pixels.
	KindMotionBlur
)

// String returns the filter name as accepted by ParseKind.
func (k Kind) String() string {
	switch k {
	case KindEmboss:
		return "emboss"
	case KindInvert:
		return "invert"
	case KindGrayscale:
		return "grayscale"
	case KindMotionBlur:
		return "motionblur"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind validates a filter name from the outside world against the
// closed Kind enumeration. Unrecognized names yield an error wrapping
// ErrUnknownFilter.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "emboss":
		return KindEmboss, nil
	case "invert":
		return KindInvert, nil
	case "grayscale":
		return KindGrayscale, nil
	case "motionblur":
		return KindMotionBlur, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}
}

// Apply runs the filter identified by kind on src and returns a new,
// independently owned Image; src is never modified. Kind values come
// from the constants above or from ParseKind, so an out-of-range kind
// is a caller bug and panics.
func Apply(src *Image, kind Kind) *Image {
	switch kind {
	case KindEmboss:
		return Emboss(src)
	case KindInvert:
		return Invert(src)
	case KindGrayscale:
		return Grayscale(src)
	case KindMotionBlur:
		return MotionBlur(src)
	default:
		panic(fmt.Sprintf("ppmfx: invalid filter kind %d", int(kind)))
	}
}
