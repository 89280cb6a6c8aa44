// Package sigs catalogs function signatures the error-handling rules need
// to recognize: error wrappers, logging calls and execution-abandoning
// calls. Every catalog ships a predefined set and merges user-supplied
// entries on top.
package sigs

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/types/typeutil"
)

// PackagedFunc identifies a package-level function.
type PackagedFunc struct {
	PkgPath string
	Name    string
}

// Callee resolves a call expression to the packaged function it invokes.
// Builtins resolve with the pseudo package path "builtin". Method calls and
// closures are not supported.
func Callee(info *types.Info, call *ast.CallExpr) (PackagedFunc, bool) {
	fn := typeutil.Callee(info, call)
	if fn == nil {
		// Because using "raw" closures to handle error processing is a huge overcomplication.
		return PackagedFunc{}, false
	}

	switch v := fn.(type) {
	case *types.Func:
		pkg := v.Pkg()
		if pkg == nil {
			return PackagedFunc{}, false
		}

		return PackagedFunc{PkgPath: pkg.Path(), Name: v.Name()}, true

	case *types.Builtin:
		return PackagedFunc{PkgPath: "builtin", Name: v.Name()}, true

	default:
		return PackagedFunc{}, false
	}
}
