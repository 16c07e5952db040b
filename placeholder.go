package fmtcheck

// placeholder is the result of one attempted parse at a '%' position.
type placeholder struct {
	categories []ArgumentCategory
	length     int
}

// parsePlaceholder tries to recognize one complete
// %[flags][width][.precision][length]specifier placeholder at the start of
// 'format'. Every stage between the '%' and the specifier is optional. On
// success the categories come back in call order: the width's '*' argument if
// any, then the precision's, then the specifier's own. On failure the caller
// is expected to advance by a single byte and keep scanning.
func parsePlaceholder(format string) (placeholder, bool) {
	rest, ok := consumeChar(format, '%')
	if !ok {
		return placeholder{}, false
	}

	var categories []ArgumentCategory

	rest = consumeFlags(rest)

	rest, starWidth := consumeWidth(rest)
	if starWidth {
		categories = append(categories, UnsignedInteger)
	}

	rest, starPrecision := consumePrecision(rest)
	if starPrecision {
		categories = append(categories, UnsignedInteger)
	}

	rest, legal := consumeLength(rest)

	rest, cat, ok := consumeSpecifier(rest, legal)
	if !ok {
		return placeholder{}, false
	}

	categories = append(categories, cat)

	return placeholder{
		categories: categories,
		length:     len(format) - len(rest),
	}, true
}
