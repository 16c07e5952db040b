package fmtcheck

import "reflect"

// ArgumentCategory classifies the call-site argument a placeholder demands.
type ArgumentCategory int

const (
	// Unspecified places no constraint on the argument. The 'n' specifier
	// maps here: the grammar recognizes it but does not pin its argument
	// down to a pointer-to-count type.
	Unspecified ArgumentCategory = iota
	SignedInteger
	UnsignedInteger
	Floating
	Char
	String
	Pointer
)

var categoryNames = [...]string{
	Unspecified:     "unspecified",
	SignedInteger:   "signed integer",
	UnsignedInteger: "unsigned integer",
	Floating:        "floating-point",
	Char:            "char",
	String:          "string",
	Pointer:         "pointer",
}

func (c ArgumentCategory) String() string {
	if c >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// Matches reports whether a value of type t satisfies category c. A nil type,
// meaning an untyped nil argument, satisfies Pointer and Unspecified only.
func (c ArgumentCategory) Matches(t reflect.Type) bool {
	if t == nil {
		return c == Pointer || c == Unspecified
	}

	switch c {
	case Unspecified:
		return true
	case SignedInteger:
		switch t.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return true
		}
	case UnsignedInteger:
		switch t.Kind() {
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return true
		}
	case Floating:
		switch t.Kind() {
		case reflect.Float32, reflect.Float64:
			return true
		}
	case Char:
		// rune and byte are the Go spellings of a char argument.
		return t.Kind() == reflect.Int32 || t.Kind() == reflect.Uint8
	case String:
		return t.Kind() == reflect.String
	case Pointer:
		return t.Kind() == reflect.Pointer || t.Kind() == reflect.UnsafePointer
	}

	return false
}
