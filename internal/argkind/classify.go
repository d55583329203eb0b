package argkind

import (
	"go/ast"
	"go/token"
	"go/types"
)

// Classify derives the kind of an operand expression. It looks at the immediate shape
// only, the resolver is consulted for predeclared identifiers, constants and
// conversions. Expressions it cannot tell anything about are KindOther.
func Classify(expr ast.Expr, r Resolver) Kind {
	if r == nil {
		r = Syntax()
	}

	switch x := ast.Unparen(expr).(type) {
	case *ast.BasicLit:
		if x.Kind == token.STRING {
			return KindStringLiteral
		}
		return KindNumericLiteral

	case *ast.UnaryExpr:
		if isSignedNumber(x) {
			return KindNumericLiteral
		}
		return KindOther

	case *ast.Ident:
		switch x.Name {
		case "true", "false":
			if r.Universe(x) {
				return KindBoolLiteral
			}
		case "nil":
			if r.Universe(x) {
				return KindNullLiteral
			}
		}
		return constantKind(x, r)

	case *ast.SelectorExpr:
		return constantKind(x, r)

	case *ast.CallExpr:
		if len(x.Args) == 1 && r.IsConversion(x) && Classify(x.Args[0], r) == KindNumericLiteral {
			return KindNumericLiteral
		}
		return KindNestedCall

	default:
		return KindOther
	}
}

func constantKind(expr ast.Expr, r Resolver) Kind {
	named, ok := r.Constant(expr)
	switch {
	case !ok:
		return KindIdentifier
	case named:
		return KindEnumMember
	default:
		return KindConstReference
	}
}

func isSignedNumber(x *ast.UnaryExpr) bool {
	if x.Op != token.SUB && x.Op != token.ADD {
		return false
	}

	lit, ok := ast.Unparen(x.X).(*ast.BasicLit)
	return ok && lit.Kind != token.STRING
}

// Pure reports whether evaluating expr has no side effects, so the expression may be
// evaluated in another order or more than once without changing program behavior.
func Pure(expr ast.Expr) bool {
	switch x := ast.Unparen(expr).(type) {
	case *ast.BasicLit, *ast.Ident:
		return true
	case *ast.SelectorExpr:
		return Pure(x.X)
	case *ast.UnaryExpr:
		switch x.Op {
		case token.SUB, token.ADD, token.NOT, token.XOR:
			return Pure(x.X)
		default:
			return false
		}
	default:
		return false
	}
}

// IsString reports whether expr has exactly the predeclared string type, or is an
// untyped string constant.
func IsString(r Resolver, expr ast.Expr) bool {
	t := typeOf(r, expr)
	if t == nil {
		return false
	}

	b, ok := t.(*types.Basic)
	return ok && (b.Kind() == types.String || b.Kind() == types.UntypedString)
}

// IsNumeric reports whether the type of expr is numeric.
func IsNumeric(r Resolver, expr ast.Expr) bool {
	return hasBasicInfo(r, expr, types.IsNumeric)
}

// IsBool reports whether the type of expr is boolean.
func IsBool(r Resolver, expr ast.Expr) bool {
	return hasBasicInfo(r, expr, types.IsBoolean)
}

// IsFunc reports whether expr is known to be a function value, like a method value.
func IsFunc(r Resolver, expr ast.Expr) bool {
	t := typeOf(r, expr)
	if t == nil {
		return false
	}

	_, ok := t.Underlying().(*types.Signature)
	return ok
}

func hasBasicInfo(r Resolver, expr ast.Expr, info types.BasicInfo) bool {
	t := typeOf(r, expr)
	if t == nil {
		return false
	}

	b, ok := t.Underlying().(*types.Basic)
	return ok && b.Info()&info != 0
}

func typeOf(r Resolver, expr ast.Expr) types.Type {
	if r == nil {
		return nil
	}

	return r.Type(expr)
}
