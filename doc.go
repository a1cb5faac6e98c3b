// Package ppmfx decodes plain-text pixel-map (PPM "P3") images, applies
// one of four fixed filters, and re-encodes the result.
//
// # Overview
//
// ppmfx is a small, pure-Go image pipeline. It parses the whitespace-
// tokenized P3 format with strict validation, represents the image as a
// flat row-major grid of RGB triplets, and provides four pure filters:
// emboss (3×3 convolution), invert, grayscale, and horizontal motion
// blur. Filters never mutate their input; each builds a fresh output.
//
// # Quick Start
//
//	import "github.com/pixfx/ppmfx"
//
//	out, err := ppmfx.Run(text, "emboss")
//	if err != nil {
//	    // one of the Err* sentinels, inspect with errors.Is
//	}
//	// out is the filtered image, re-encoded as P3 text
//
// Individual stages are exported for callers that need them:
//
//	img, err := ppmfx.Decode(text)
//	inv := ppmfx.Invert(img)
//	text = ppmfx.Encode(inv)
//
// # Format
//
// Only the plain-text P3 variant is supported, and only a maximum
// channel value of 255. Tokens are separated by any run of whitespace;
// spaces, tabs, and newlines are interchangeable. Tokens beyond the
// declared pixel count are ignored.
//
// # Logging
//
// By default ppmfx produces no log output. Call [SetLogger] to receive
// pipeline status (which filter ran, image dimensions) via log/slog.
package ppmfx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
