package argkind

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/types/typeutil"
)

// Resolver gives read-only access to static type information of the code being rewritten.
// Implementations never fail: whatever they cannot resolve is reported as unknown.
type Resolver interface {
	// Universe reports whether id refers to a predeclared object or its object is unknown.
	Universe(id *ast.Ident) bool

	// Constant reports whether expr refers to a declared constant and whether the
	// type of that constant is a named one.
	Constant(expr ast.Expr) (named bool, ok bool)

	// IsConversion reports whether call is a type conversion.
	IsConversion(call *ast.CallExpr) bool

	// Type returns the type of expr or nil if it is not known.
	Type(expr ast.Expr) types.Type

	// Callee returns the import path and the name of a package level function or a
	// builtin (with an empty path) called by call.
	Callee(call *ast.CallExpr) (pkgPath, name string, ok bool)

	// ImportPath returns the import path of the package referenced by id.
	ImportPath(id *ast.Ident) (string, bool)
}

// Types returns a Resolver backed by the result of type checking.
func Types(info *types.Info) Resolver {
	if info == nil {
		return Syntax()
	}

	return typesResolver{info: info}
}

type typesResolver struct {
	info *types.Info
}

func (r typesResolver) Universe(id *ast.Ident) bool {
	obj := r.info.ObjectOf(id)
	if obj == nil {
		return true
	}

	return obj.Parent() == types.Universe
}

func (r typesResolver) Constant(expr ast.Expr) (bool, bool) {
	var id *ast.Ident
	switch x := ast.Unparen(expr).(type) {
	case *ast.Ident:
		id = x
	case *ast.SelectorExpr:
		id = x.Sel
	default:
		return false, false
	}

	obj, ok := r.info.ObjectOf(id).(*types.Const)
	if !ok || obj.Parent() == types.Universe {
		return false, false
	}

	_, named := types.Unalias(obj.Type()).(*types.Named)
	return named, true
}

func (r typesResolver) IsConversion(call *ast.CallExpr) bool {
	tv, ok := r.info.Types[call.Fun]
	return ok && tv.IsType()
}

func (r typesResolver) Type(expr ast.Expr) types.Type {
	return r.info.TypeOf(expr)
}

func (r typesResolver) Callee(call *ast.CallExpr) (string, string, bool) {
	switch obj := typeutil.Callee(r.info, call).(type) {
	case *types.Builtin:
		return "", obj.Name(), true
	case *types.Func:
		if obj.Pkg() == nil || obj.Signature().Recv() != nil {
			return "", "", false
		}
		return obj.Pkg().Path(), obj.Name(), true
	default:
		return "", "", false
	}
}

func (r typesResolver) ImportPath(id *ast.Ident) (string, bool) {
	pkg, ok := r.info.Uses[id].(*types.PkgName)
	if !ok {
		return "", false
	}

	return pkg.Imported().Path(), true
}

// Syntax returns a Resolver that knows nothing beyond the syntax tree itself. Calls of
// qualified functions are reported with the qualifier as their import path, which
// holds for the standard library packages recipes look for.
func Syntax() Resolver {
	return syntaxResolver{}
}

type syntaxResolver struct{}

var numericTypeNames = map[string]struct{}{
	"int": {}, "int8": {}, "int16": {}, "int32": {}, "int64": {},
	"uint": {}, "uint8": {}, "uint16": {}, "uint32": {}, "uint64": {}, "uintptr": {},
	"float32": {}, "float64": {}, "complex64": {}, "complex128": {},
	"byte": {}, "rune": {},
}

var builtinNames = map[string]struct{}{
	"len": {}, "cap": {},
}

func (syntaxResolver) Universe(*ast.Ident) bool { return true }

func (syntaxResolver) Constant(ast.Expr) (bool, bool) { return false, false }

func (syntaxResolver) IsConversion(call *ast.CallExpr) bool {
	id, ok := call.Fun.(*ast.Ident)
	if !ok {
		return false
	}

	_, ok = numericTypeNames[id.Name]
	return ok
}

func (syntaxResolver) Type(ast.Expr) types.Type { return nil }

func (syntaxResolver) Callee(call *ast.CallExpr) (string, string, bool) {
	switch fn := ast.Unparen(call.Fun).(type) {
	case *ast.Ident:
		if _, ok := builtinNames[fn.Name]; ok {
			return "", fn.Name, true
		}
	case *ast.SelectorExpr:
		if pkg, ok := fn.X.(*ast.Ident); ok {
			return pkg.Name, fn.Sel.Name, true
		}
	}

	return "", "", false
}

func (syntaxResolver) ImportPath(id *ast.Ident) (string, bool) {
	// The parser leaves package qualifiers unresolved.
	if id.Obj != nil {
		return "", false
	}

	return id.Name, true
}
