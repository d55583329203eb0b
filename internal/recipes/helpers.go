package recipes

import (
	"go/ast"
	"go/token"

	"github.com/sirkon/fluentify/internal/argkind"
	"github.com/sirkon/fluentify/internal/constraint"
)

var (
	is   = constraint.RootIs
	has  = constraint.RootHas
	does = constraint.RootDoes
)

func prop(name string) constraint.Step {
	return constraint.Prop(name)
}

func call(name string, operands ...ast.Expr) constraint.Step {
	return constraint.Call(name, operands...)
}

// fused returns a single operand predicate for a boolean or nil literal.
func fused(expected ast.Expr) constraint.Expression {
	id, _ := ast.Unparen(expected).(*ast.Ident)
	switch {
	case id == nil:
		return constraint.Expression{}
	case id.Name == "true":
		return constraint.Build(is, prop(constraint.StepTrue))
	case id.Name == "false":
		return constraint.Build(is, prop(constraint.StepFalse))
	default:
		return constraint.Build(is, prop(constraint.StepNull))
	}
}

// predicate returns the constraint of the expected operand picked by role inference.
func predicate(roles Roles, identity string) constraint.Expression {
	if roles.Fused {
		return fused(roles.Expected.Expr)
	}

	return constraint.Build(is, call(identity, roles.Expected.Expr))
}

// negate negates e, the subject decides whether True and False may swap.
func negate(c *Call, subject ast.Expr, e constraint.Expression) (constraint.Expression, bool) {
	return constraint.Negate(e, argkind.IsBool(c.Resolver, subject))
}

// peelCount moves a count access of the subject into the constraint:
//
//	list.Count, Is.EqualTo(3)  → list, Has.Count.EqualTo(3)
//	len(s), Is.GreaterThan(0)  → s, Has.Length.GreaterThan(0)
func peelCount(r argkind.Resolver, subject ast.Expr, e constraint.Expression) (ast.Expr, constraint.Expression) {
	if e.Root != is {
		return subject, e
	}
	switch constraint.CategoryOf(e.Head()) {
	case constraint.CategoryIdentity, constraint.CategoryOrdering:
	default:
		return subject, e
	}
	if e.Head() == constraint.StepSameAs || e.Head() == constraint.StepEquivalent || e.Contains(constraint.CategoryModifier) {
		return subject, e
	}

	switch x := ast.Unparen(subject).(type) {
	case *ast.SelectorExpr:
		if x.Sel.Name != constraint.StepCount && x.Sel.Name != constraint.StepLength {
			break
		}
		if argkind.IsFunc(r, x) {
			break
		}
		return x.X, e.Prefix(has, prop(x.Sel.Name))

	case *ast.CallExpr:
		if len(x.Args) != 1 || x.Ellipsis.IsValid() {
			break
		}
		if path, name, ok := r.Callee(x); ok && path == "" && name == "len" {
			return x.Args[0], e.Prefix(has, prop(constraint.StepLength))
		}
	}

	return subject, e
}

// tolerance looks at the argument following the two operands of an equality check.
// It returns the argument when it is a tolerance, nil when it is a message argument or
// there is none, and false when its type is unknown, so it could be either.
func tolerance(c *Call) (ast.Expr, bool) {
	if len(c.Args) < 3 {
		return nil, true
	}

	arg := c.Args[2]
	switch arg.Kind {
	case argkind.KindNumericLiteral:
		return arg.Expr, true
	case argkind.KindStringLiteral, argkind.KindBoolLiteral, argkind.KindNullLiteral:
		return nil, true
	}

	if argkind.IsNumeric(c.Resolver, arg.Expr) {
		return arg.Expr, true
	}

	// A member of a predefined numeric package, like math.SmallestNonzeroFloat64.
	if sel, ok := ast.Unparen(arg.Expr).(*ast.SelectorExpr); ok {
		if pkg, ok := sel.X.(*ast.Ident); ok {
			if path, ok := c.Resolver.ImportPath(pkg); ok && path == "math" {
				return arg.Expr, true
			}
		}
	}

	if c.Resolver.Type(arg.Expr) == nil {
		// Untyped, only a numeric conversion like float64(eps) tells a tolerance.
		if call, ok := ast.Unparen(arg.Expr).(*ast.CallExpr); ok && c.Resolver.IsConversion(call) {
			return arg.Expr, true
		}
		return nil, false
	}

	return nil, true
}

// swapSafe reports whether two operands may be evaluated in the reverse order.
func swapSafe(a, b argkind.Argument) bool {
	return argkind.Pure(a.Expr) || argkind.Pure(b.Expr)
}

var mirrored = map[token.Token]token.Token{
	token.GTR: token.LSS,
	token.LSS: token.GTR,
	token.GEQ: token.LEQ,
	token.LEQ: token.GEQ,
}

var orderingSteps = map[token.Token]string{
	token.GTR: constraint.StepGreater,
	token.GEQ: constraint.StepGreaterOrEq,
	token.LSS: constraint.StepLess,
	token.LEQ: constraint.StepLessOrEq,
}

// comparison builds the constraint of "subject op expected" for an ordering operator,
// picking roles among the two operands first.
func comparison(r argkind.Resolver, op token.Token, left, right argkind.Argument) (ast.Expr, constraint.Expression) {
	roles := InferRoles(left, right, OrderingPolicies)
	if roles.Side == SideLeft {
		op = mirrored[op]
	}

	e := constraint.Build(is, call(orderingSteps[op], roles.Expected.Expr))
	return peelCount(r, roles.Subject.Expr, e)
}
