package fmtcheck

// Prefix consumers. Each attempts to strip a known prefix from the front of
// format and returns the remainder plus whether anything matched; on no match
// the input comes back unchanged. All of them treat an empty input as no
// match rather than reading past the end.

func consumeChar(format string, c byte) (string, bool) {
	if len(format) > 0 && format[0] == c {
		return format[1:], true
	}
	return format, false
}

func consumeCharInRange(format string, lo, hi byte) (string, bool) {
	if len(format) > 0 && format[0] >= lo && format[0] <= hi {
		return format[1:], true
	}
	return format, false
}

func consumeCharInSet(format string, set string) (string, bool) {
	if len(format) == 0 {
		return format, false
	}

	for i := 0; i < len(set); i++ {
		if format[0] == set[i] {
			return format[1:], true
		}
	}

	return format, false
}

func consumeLiteral(format, literal string) (string, bool) {
	if len(format) >= len(literal) && format[:len(literal)] == literal {
		return format[len(literal):], true
	}
	return format, false
}

// consumeRepeatedly applies step until it stops making progress. Zero matches
// is a valid outcome, so it never fails. Every accepted step strictly shrinks
// the input, which bounds the loop by the input length.
func consumeRepeatedly(format string, step func(string) (string, bool)) string {
	for {
		rest, ok := step(format)
		if !ok || rest == format {
			return format
		}

		format = rest
	}
}
