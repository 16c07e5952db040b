// Package analyzer reports printf-style format/argument mismatches at build
// time. It applies the fmtcheck scanner to every call of a configured
// printf-like function whose format argument is a compile-time string
// constant.
package analyzer

import (
	"go/ast"
	"go/constant"
	"go/types"
	"sort"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/astutil"

	"fmtcheck"
)

// Analyzer checks calls to printf-like functions. A printf-like function is
// variadic with a string parameter immediately ahead of the variadic one,
// e.g. func(format string, args ...interface{}).
var Analyzer = &analysis.Analyzer{
	Name: "fmtcheck",
	Doc:  "check printf-style format strings against their arguments",
	Run:  run,
}

var funcs = stringSet{}

func init() {
	Analyzer.Flags.Var(funcs, "funcs", "comma-separated names of printf-like functions to check; bare, pkgpath-qualified, and method full names are all recognized")
}

func run(pass *analysis.Pass) (interface{}, error) {
	if len(funcs) == 0 {
		return nil, nil
	}

	for _, file := range pass.Files {
		ast.Inspect(file, func(n ast.Node) bool {
			if call, ok := n.(*ast.CallExpr); ok {
				checkCall(pass, call)
			}
			return true
		})
	}

	return nil, nil
}

func checkCall(pass *analysis.Pass, call *ast.CallExpr) {
	fn := callee(pass, call)
	if fn == nil || !funcs.contains(fn) {
		return
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok || !sig.Variadic() || sig.Params().Len() < 2 {
		return
	}

	formatIndex := sig.Params().Len() - 2
	if basic, ok := sig.Params().At(formatIndex).Type().Underlying().(*types.Basic); !ok || basic.Info()&types.IsString == 0 {
		return
	}

	// Forwarded args... and non-constant formats are out of static reach.
	if call.Ellipsis.IsValid() || len(call.Args) <= formatIndex {
		return
	}

	value := pass.TypesInfo.Types[call.Args[formatIndex]].Value
	if value == nil || value.Kind() != constant.String {
		return
	}

	format := constant.StringVal(value)
	expected := fmtcheck.Expectations(format)
	args := call.Args[formatIndex+1:]

	if len(args) != len(expected) {
		pass.Reportf(call.Lparen, "format %q expects %d arguments, got %d", format, len(expected), len(args))
		return
	}

	for i, cat := range expected {
		argType := pass.TypesInfo.Types[args[i]].Type
		if !categoryMatches(cat, argType) {
			pass.Reportf(args[i].Pos(), "argument %d is %s, but format %q demands a %s value", i, argType, format, cat)
		}
	}
}

func callee(pass *analysis.Pass, call *ast.CallExpr) *types.Func {
	var id *ast.Ident

	switch fun := astutil.Unparen(call.Fun).(type) {
	case *ast.Ident:
		id = fun
	case *ast.SelectorExpr:
		id = fun.Sel
	default:
		return nil
	}

	fn, _ := pass.TypesInfo.ObjectOf(id).(*types.Func)
	return fn
}

// categoryMatches mirrors ArgumentCategory.Matches over static go/types
// information instead of reflection.
func categoryMatches(cat fmtcheck.ArgumentCategory, t types.Type) bool {
	if t == nil {
		return false
	}

	if cat == fmtcheck.Unspecified {
		return true
	}

	t = types.Default(t)

	switch cat {
	case fmtcheck.SignedInteger:
		info := basicInfo(t)
		return info&types.IsInteger != 0 && info&types.IsUnsigned == 0
	case fmtcheck.UnsignedInteger:
		return basicInfo(t)&types.IsUnsigned != 0
	case fmtcheck.Floating:
		return basicInfo(t)&types.IsFloat != 0
	case fmtcheck.Char:
		basic, ok := t.Underlying().(*types.Basic)
		return ok && (basic.Kind() == types.Int32 || basic.Kind() == types.Uint8)
	case fmtcheck.String:
		return basicInfo(t)&types.IsString != 0
	case fmtcheck.Pointer:
		switch u := t.Underlying().(type) {
		case *types.Pointer:
			return true
		case *types.Basic:
			return u.Kind() == types.UnsafePointer || u.Kind() == types.UntypedNil
		}
		return false
	}

	return false
}

func basicInfo(t types.Type) types.BasicInfo {
	basic, ok := t.Underlying().(*types.Basic)
	if !ok {
		return 0
	}
	return basic.Info()
}

type stringSet map[string]bool

func (s stringSet) String() string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}

func (s stringSet) Set(value string) error {
	for _, name := range strings.Split(value, ",") {
		if name = strings.TrimSpace(name); name != "" {
			s[name] = true
		}
	}
	return nil
}

// contains matches a function by bare name, by pkgpath-qualified name, or by
// its full name (which covers methods).
func (s stringSet) contains(fn *types.Func) bool {
	if s[fn.Name()] || s[fn.FullName()] {
		return true
	}

	if pkg := fn.Pkg(); pkg != nil && s[pkg.Path()+"."+fn.Name()] {
		return true
	}

	return false
}
