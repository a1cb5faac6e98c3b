package ppmfx

import (
	"fmt"
	"strconv"
	"strings"
)

// magic identifies the plain-text pixel-map format.
const magic = "P3"

// maxChannel is the only maximum channel value the decoder accepts.
// This is a deliberate restriction, not a general-format parser.
const maxChannel = 255

// Decode parses the raw text of a plain-text pixel-map (P3) file into
// an Image. The input is tokenized on runs of whitespace; spaces, tabs,
// and newlines are interchangeable. The header is the magic marker,
// width, height, and maximum channel value (255 only), followed by
// width*height RGB triplets in row-major order. Tokens beyond the
// declared pixel count are ignored.
//
// On any violation Decode returns an error wrapping one of the Err*
// sentinels, carrying the offending token and, for pixel data, the
// (x, y) coordinate being filled.
func Decode(text string) (*Image, error) {
	tokens := strings.Fields(text)

	if tok := tokenAt(tokens, 0); tok != magic {
		return nil, fmt.Errorf("%w: expected %q, got %q", ErrBadMagic, magic, tok)
	}

	width, err := parseDimension(tokenAt(tokens, 1))
	if err != nil {
		return nil, fmt.Errorf("%w: width %q", ErrBadDimensions, tokenAt(tokens, 1))
	}
	height, err := parseDimension(tokenAt(tokens, 2))
	if err != nil {
		return nil, fmt.Errorf("%w: height %q", ErrBadDimensions, tokenAt(tokens, 2))
	}

	if maxTok := tokenAt(tokens, 3); maxTok != strconv.Itoa(maxChannel) {
		return nil, fmt.Errorf("%w: got %q, only %d is supported", ErrUnsupportedMaxValue, maxTok, maxChannel)
	}

	img := New(width, height)
	rest := tokens[4:]
	filled := 0

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if len(rest) < 3 {
				return nil, fmt.Errorf("%w: %d tokens left at pixel (%d, %d)", ErrTruncatedPixelData, len(rest), x, y)
			}
			c, ok := parseTriplet(rest[0], rest[1], rest[2])
			if !ok {
				return nil, fmt.Errorf("%w: triplet (%s, %s, %s) at pixel (%d, %d)",
					ErrInvalidChannelValue, rest[0], rest[1], rest[2], x, y)
			}
			img.SetPixel(x, y, c)
			rest = rest[3:]
			filled++
		}
	}

	// Unreachable given the per-pixel truncation check above; kept as
	// a redundant invariant assertion.
	if filled != width*height {
		return nil, fmt.Errorf("%w: filled %d of %d pixels", ErrPixelCountMismatch, filled, width*height)
	}

	return img, nil
}

// tokenAt returns tokens[i], or "" when the input is too short.
func tokenAt(tokens []string, i int) string {
	if i >= len(tokens) {
		return ""
	}
	return tokens[i]
}

// parseDimension parses a positive integer dimension.
func parseDimension(tok string) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("non-positive dimension %d", v)
	}
	return v, nil
}

// parseTriplet parses three channel tokens into a Color. Each must be
// an integer in [0, maxChannel].
func parseTriplet(r, g, b string) (Color, bool) {
	cr, okR := parseChannel(r)
	cg, okG := parseChannel(g)
	cb, okB := parseChannel(b)
	if !okR || !okG || !okB {
		return Color{}, false
	}
	return Color{R: cr, G: cg, B: cb}, true
}

func parseChannel(tok string) (int32, bool) {
	v, err := strconv.Atoi(tok)
	if err != nil || v < 0 || v > maxChannel {
		return 0, false
	}
	return int32(v), true
}
