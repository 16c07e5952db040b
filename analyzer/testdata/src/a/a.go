package a

func logf(format string, args ...interface{}) {
	_ = format
	_ = args
}

type logger struct{}

func (logger) Logf(format string, args ...interface{}) {
	_ = format
	_ = args
}

func clean() {
	logf("no placeholders")
	logf("progress: %d%%", 50)
	logf("value: %d", 7)
	logf("%*.*s", uint(5), uint(2), "hello")
	logf("%Lf", 2.5)
	logf("%p", nil)

	var l logger
	l.Logf("ok %s", "yes")
}

func dirty() {
	logf("value: %d")       // want `format "value: %d" expects 1 arguments, got 0`
	logf("value: %d", 1, 2) // want `format "value: %d" expects 1 arguments, got 2`
	logf("name: %s", 42)    // want `argument 0 is int, but format "name: %s" demands a string value`
	logf("%Ld", 1)          // want `format "%Ld" expects 0 arguments, got 1`

	var l logger
	l.Logf("count %d", "nope") // want `argument 0 is string, but format "count %d" demands a signed integer value`
}

func outOfReach() {
	format := "%d"
	logf(format, "not statically checkable")

	args := []interface{}{1}
	logf("%d %d", args...)
}
