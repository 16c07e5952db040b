package fmtcheck

// Legal specifier sets. A length modifier narrows which of the sixteen
// terminal conversion characters remain legal; no modifier leaves the full
// set.
const (
	allSpecifiers      = "diuoxXfFeEgGaAcspn"
	integerSpecifiers  = "diuoxXn"
	longSpecifiers     = "diuoxXcsn"
	floatingSpecifiers = "fFeEgGaA"

	flagChars = "+- #0"
)

// specifierCategory maps a consumed specifier character to the category its
// argument must satisfy. 'n' carries no constraint.
func specifierCategory(c byte) ArgumentCategory {
	switch c {
	case 'd', 'i':
		return SignedInteger
	case 'u', 'o', 'x', 'X':
		return UnsignedInteger
	case 'f', 'F', 'e', 'E', 'g', 'G', 'a', 'A':
		return Floating
	case 'c':
		return Char
	case 's':
		return String
	case 'p':
		return Pointer
	}

	return Unspecified
}

// consumeFlags takes at most one flag character. Repeated flags are not part
// of the recognized grammar, so "%-+5d" fails later at the specifier stage.
func consumeFlags(format string) string {
	rest, _ := consumeCharInSet(format, flagChars)
	return rest
}

// consumeWidth handles either a literal '*', which demands one extra unsigned
// argument at the call site, or a run of digits embedded in the text.
func consumeWidth(format string) (rest string, starArg bool) {
	if rest, ok := consumeChar(format, '*'); ok {
		return rest, true
	}

	rest = consumeRepeatedly(format, func(s string) (string, bool) {
		return consumeCharInRange(s, '0', '9')
	})

	return rest, false
}

// consumePrecision engages only on a leading '.'. Zero digits after the dot
// still succeed: "%.f" is valid and means explicit zero precision.
func consumePrecision(format string) (rest string, starArg bool) {
	afterDot, ok := consumeChar(format, '.')
	if !ok {
		return format, false
	}

	if rest, ok := consumeChar(afterDot, '*'); ok {
		return rest, true
	}

	rest = consumeRepeatedly(afterDot, func(s string) (string, bool) {
		return consumeCharInRange(s, '0', '9')
	})

	return rest, false
}

// consumeLength recognizes one length modifier and returns the specifier set
// it leaves legal. "hh" and "ll" must be tried before their single-character
// prefixes.
func consumeLength(format string) (rest string, legal string) {
	if rest, ok := consumeLiteral(format, "hh"); ok {
		return rest, integerSpecifiers
	}

	if rest, ok := consumeLiteral(format, "ll"); ok {
		return rest, integerSpecifiers
	}

	if rest, ok := consumeChar(format, 'l'); ok {
		return rest, longSpecifiers
	}

	if rest, ok := consumeChar(format, 'L'); ok {
		return rest, floatingSpecifiers
	}

	if rest, ok := consumeCharInSet(format, "hjzt"); ok {
		return rest, integerSpecifiers
	}

	return format, allSpecifiers
}

// consumeSpecifier takes exactly one character from the legal set. This is
// the only required stage: failure here invalidates the whole placeholder.
func consumeSpecifier(format string, legal string) (rest string, cat ArgumentCategory, ok bool) {
	rest, ok = consumeCharInSet(format, legal)
	if !ok {
		return format, Unspecified, false
	}

	return rest, specifierCategory(format[0]), true
}
