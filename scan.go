package fmtcheck

import "strings"

// Expectations walks 'format' and returns, in call order, the argument
// categories its placeholders demand. Literal text, "%%" escapes, and
// malformed placeholders contribute nothing: a '%' that does not begin a
// valid placeholder is treated as ordinary text and scanning resumes at the
// next byte. The result depends only on 'format', so it can be computed once
// per literal and reused for every call sharing it.
func Expectations(format string) []ArgumentCategory {
	var expected []ArgumentCategory

	for len(format) > 0 {
		// "%%" must be ruled out before attempting a placeholder, or its
		// second '%' would start one.
		if strings.HasPrefix(format, "%%") {
			format = format[2:]
			continue
		}

		if ph, ok := parsePlaceholder(format); ok {
			expected = append(expected, ph.categories...)
			format = format[ph.length:]
			continue
		}

		format = format[1:]
	}

	return expected
}
