package fmtcheck

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrArgumentCount reports that the number of arguments supplied does not
	// match the number the format's placeholders demand.
	ErrArgumentCount = errors.New("argument count mismatch")

	// ErrArgumentType reports an argument whose type does not satisfy its
	// placeholder's category.
	ErrArgumentType = errors.New("argument type mismatch")
)

// Verify checks 'args' against the placeholders in 'format'. It fails if the
// argument count differs from the placeholder count, or if any argument's
// dynamic type does not satisfy the category its placeholder demands.
func Verify(format string, args ...interface{}) error {
	return verify(format, Expectations(format), args)
}

func verify(format string, expected []ArgumentCategory, args []interface{}) error {
	if len(args) != len(expected) {
		return fmt.Errorf("%w: format %q expects %d arguments, got %d", ErrArgumentCount, format, len(expected), len(args))
	}

	for i, cat := range expected {
		if !cat.Matches(reflect.TypeOf(args[i])) {
			return fmt.Errorf("%w: argument %d (%T) does not satisfy %s placeholder of format %q", ErrArgumentType, i, args[i], cat, format)
		}
	}

	return nil
}

// Checker stores the expectations of a format string for the verification of
// multiple argument lists against it.
type Checker struct {
	format   string
	expected []ArgumentCategory
}

// NewChecker scans 'format' once so that repeated verifications share the
// work.
func NewChecker(format string) Checker {
	return Checker{
		format:   format,
		expected: Expectations(format),
	}
}

// Verify checks 'args' against the Checker's precomputed expectations.
func (c Checker) Verify(args ...interface{}) error {
	return verify(c.format, c.expected, args)
}

// Expectations returns a copy of the categories the Checker's format demands.
func (c Checker) Expectations() []ArgumentCategory {
	out := make([]ArgumentCategory, len(c.expected))
	copy(out, c.expected)
	return out
}
