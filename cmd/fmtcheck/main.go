// Command fmtcheck runs the format-string analyzer standalone or as a
// "go vet -vettool" binary.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"fmtcheck/analyzer"
)

func main() {
	singlechecker.Main(analyzer.Analyzer)
}
