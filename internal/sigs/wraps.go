package sigs

import (
	"go/ast"
	"go/types"
	"maps"
)

// Wraps recognizes calls that wrap an error value with context.
type Wraps struct {
	known map[PackagedFunc]WrapKind
}

// KnownWraps builds the wrap catalog, merging custom entries over the
// predefined set. Custom entries win on conflict.
func KnownWraps(custom map[PackagedFunc]WrapKind) *Wraps {
	predefined := map[PackagedFunc]WrapKind{
		{PkgPath: "fmt", Name: "Errorf"}: WrapKindErrorf,

		// I have my bias!
		{PkgPath: "github.com/sirkon/errors", Name: "Wrap"}:  WrapKindWrap,
		{PkgPath: "github.com/sirkon/errors", Name: "Wrapf"}: WrapKindWrap,

		// Were widely used before. I am sure they still are, at least in older codebases.
		{PkgPath: "github.com/pkg/errors", Name: "Wrap"}:         WrapKindWrap,
		{PkgPath: "github.com/pkg/errors", Name: "Wrapf"}:        WrapKindWrap,
		{PkgPath: "github.com/pkg/errors", Name: "WithMessage"}:  WrapKindWrap,
		{PkgPath: "github.com/pkg/errors", Name: "WithMessagef"}: WrapKindWrap,

		// Some more…
		{PkgPath: "golang.org/x/xerrors", Name: "Errorf"}: WrapKindErrorf,
	}

	merged := maps.Clone(predefined)
	maps.Insert(merged, maps.All(custom))

	return &Wraps{known: merged}
}

// Len returns the number of catalogued wrap functions.
func (w *Wraps) Len() int { return len(w.known) }

// Kind reports the wrap signature kind of the given function.
func (w *Wraps) Kind(fn PackagedFunc) (WrapKind, bool) {
	k, ok := w.known[fn]
	return k, ok
}

// IsErrorWrap checks if the given call expression wraps the given error.
func (w *Wraps) IsErrorWrap(info *types.Info, call *ast.CallExpr, err *ast.Ident) bool {
	kind, ok := w.callKind(info, call)
	if !ok {
		return false
	}

	switch kind {
	case WrapKindWrap:
		return w.checkWrapSignatureCall(info, call, err)
	case WrapKindErrorf:
		return w.checkErrorfSignatureCall(info, call, err)
	default:
		return false
	}
}

func (w *Wraps) callKind(info *types.Info, call *ast.CallExpr) (WrapKind, bool) {
	fn, ok := Callee(info, call)
	if !ok {
		return WrapKindInvalid, false
	}

	return w.Kind(fn)
}

func (w *Wraps) checkErrorfSignatureCall(info *types.Info, call *ast.CallExpr, err *ast.Ident) bool {
	if len(call.Args) == 0 {
		return false
	}

	for _, arg := range call.Args {
		switch v := arg.(type) {
		case *ast.Ident:
			if v.Name == err.Name {
				return true
			}

		case *ast.CallExpr:
			// An error can be wrapped. Checking…
			if w.IsErrorWrap(info, v, err) {
				return true
			}
		}
	}

	return false
}

func (w *Wraps) checkWrapSignatureCall(info *types.Info, call *ast.CallExpr, err *ast.Ident) bool {
	if len(call.Args) < 2 {
		return false
	}

	switch v := call.Args[0].(type) {
	case *ast.Ident:
		return v.Name == err.Name

	case *ast.CallExpr:
		// An error can be wrapped. Let's do deep dive.
		return w.IsErrorWrap(info, v, err)

	default:
		return false
	}
}
