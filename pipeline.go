package ppmfx

// Run executes the full pipeline on the raw text of a pixel-map file:
// validate the filter name, decode, apply the filter, re-encode.
//
// The filter name is validated first, before any decode work, so an
// unknown name never touches the image data. Errors are returned, not
// logged; the caller owns reporting. On success the applied filter and
// image dimensions are logged at Info level through the package logger
// (silent unless SetLogger was called).
func Run(text, filterName string) (string, error) {
	kind, err := ParseKind(filterName)
	if err != nil {
		return "", err
	}

	src, err := Decode(text)
	if err != nil {
		return "", err
	}

	out := Apply(src, kind)

	Logger().Info("filter applied",
		"filter", kind.String(),
		"width", src.Width(),
		"height", src.Height(),
	)

	return Encode(out), nil
}
