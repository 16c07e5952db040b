// Package fmtcheck validates printf-style format strings against the
// argument lists call sites intend to supply.
//
// It recognizes placeholders of the form
//
//	%[flags][width][.precision][length]specifier
//
// where flags is at most one of '+', '-', ' ', '#', '0'; width and precision
// are digit runs or '*' (a '*' demands an extra unsigned integer argument
// ahead of the specifier's own); length is one of "hh", "ll", "l", "L", "h",
// "j", "z", "t" and narrows the legal specifier set; and specifier is one of
// d i u o x X f F e E g G a A c s p n. "%%" is the literal escape. A '%'
// that does not begin a valid placeholder is treated as ordinary text.
//
// The scanner reduces a format string to the ordered list of argument
// categories it demands. Verify and Checker compare that list against actual
// arguments; the analyzer subpackage performs the same comparison at build
// time for call sites with constant format strings.
package fmtcheck
