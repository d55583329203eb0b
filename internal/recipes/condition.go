package recipes

import (
	"go/ast"
	"go/token"

	"github.com/go-toolsmith/astequal"

	"github.com/sirkon/fluentify/internal/argkind"
	"github.com/sirkon/fluentify/internal/constraint"
)

// condition covers IsTrue and IsFalse. The condition is decomposed into a subject and a
// constraint when its shape allows:
//
//	IsTrue(x == nil)              → That(x, Is.Null)
//	IsFalse(len(s) > 3)           → That(s, Has.Length.Not.GreaterThan(3))
//	IsTrue(strings.HasPrefix(s, "a")) → That(s, Does.StartWith("a"))
//	IsTrue(x > 0 && x < 10)       → That(x, Is.GreaterThan(0).And.LessThan(10))
//	IsTrue(x > 0 && (x < 10 || x == 20))
//	    → That(x, Is.GreaterThan(0).And.Matches(Is.LessThan(10).Or.EqualTo(20)))
//
// Otherwise the condition itself is the subject of Is.True or Is.False.
func condition(polarity bool) Recipe {
	return func(c *Call) (Result, bool) {
		cond := c.Args[0].Expr
		if subject, e, ok := decompose(c.Resolver, cond, polarity); ok {
			return Result{Subject: subject, Constraint: e, Consumed: 1}, true
		}

		step := constraint.StepTrue
		if !polarity {
			step = constraint.StepFalse
		}
		return Result{Subject: cond, Constraint: constraint.Build(is, prop(step)), Consumed: 1}, true
	}
}

func decompose(r argkind.Resolver, cond ast.Expr, polarity bool) (ast.Expr, constraint.Expression, bool) {
	switch x := ast.Unparen(cond).(type) {
	case *ast.UnaryExpr:
		if x.Op == token.NOT {
			return decompose(r, x.X, !polarity)
		}

	case *ast.BinaryExpr:
		switch x.Op {
		case token.EQL, token.NEQ:
			return equalityCondition(r, x, polarity)
		case token.LSS, token.GTR, token.LEQ, token.GEQ:
			return orderingCondition(r, x, polarity)
		case token.LAND, token.LOR:
			return junction(r, x, polarity)
		}

	case *ast.CallExpr:
		return predicateCall(r, x, polarity)
	}

	return nil, constraint.Expression{}, false
}

// equalityCondition negates by flipping the operator, a != b under negation is a == b.
func equalityCondition(r argkind.Resolver, x *ast.BinaryExpr, polarity bool) (ast.Expr, constraint.Expression, bool) {
	op := x.Op
	if !polarity {
		op = flipEquality(op)
	}

	roles := InferRoles(argkind.New(x.X, 0, r), argkind.New(x.Y, 1, r), EqualityPolicies)
	e := predicate(roles, constraint.StepEqualTo)
	subject := roles.Subject.Expr
	if !roles.Fused {
		subject, e = peelCount(r, subject, e)
	}

	if op == token.NEQ {
		var ok bool
		if e, ok = constraint.Negate(e, argkind.IsBool(r, subject)); !ok {
			return nil, constraint.Expression{}, false
		}
	}

	return subject, e, true
}

func flipEquality(op token.Token) token.Token {
	if op == token.EQL {
		return token.NEQ
	}

	return token.EQL
}

// orderingCondition keeps negations explicit, !(a < b) is not a >= b for NaN.
func orderingCondition(r argkind.Resolver, x *ast.BinaryExpr, polarity bool) (ast.Expr, constraint.Expression, bool) {
	subject, e := comparison(r, x.Op, argkind.New(x.X, 0, r), argkind.New(x.Y, 1, r))
	if polarity {
		return subject, e, true
	}

	e, ok := constraint.Negate(e, false)
	return subject, e, ok
}

// junction joins constraints of both operands when they check the same subject. Under
// negation De Morgan's laws swap the conjunction.
func junction(r argkind.Resolver, x *ast.BinaryExpr, polarity bool) (ast.Expr, constraint.Expression, bool) {
	ls, le, ok := decompose(r, x.X, polarity)
	if !ok {
		return nil, constraint.Expression{}, false
	}
	rs, re, ok := decompose(r, x.Y, polarity)
	if !ok {
		return nil, constraint.Expression{}, false
	}

	if !argkind.Pure(ls) || !astequal.Expr(ls, rs) {
		return nil, constraint.Expression{}, false
	}

	// The right operand is evaluated conditionally in the original, so it must not have
	// effects the constraint would trigger unconditionally.
	for _, v := range append(le.Values(), re.Values()...) {
		if !argkind.Pure(v) {
			return nil, constraint.Expression{}, false
		}
	}

	conj := constraint.StepOr
	if (x.Op == token.LAND) == polarity {
		conj = constraint.StepAnd
	}

	return ls, constraint.Join(group(le, conj), conj, group(re, conj)), true
}

// group wraps an operand chain joined by the other conjunction. Steps of a chain apply
// left to right, so a flat Is.A.And.B.Or.C would check (A and B) or C.
func group(e constraint.Expression, conj string) constraint.Expression {
	for _, s := range e.Steps {
		if constraint.CategoryOf(s.Name) == constraint.CategoryConjunction && s.Name != conj {
			return constraint.Group(e)
		}
	}

	return e
}

type packagedFunc struct {
	pkgPath string
	name    string
}

type predicateFunc struct {
	root constraint.Root
	step string

	// modifier is appended after the step.
	modifier string

	// operands says how many arguments the function takes: the subject first and the
	// expected operand second, if any.
	operands int
}

var knownPredicates = map[packagedFunc]predicateFunc{
	{"strings", "Contains"}:  {root: does, step: constraint.StepContain, operands: 2},
	{"strings", "HasPrefix"}: {root: does, step: constraint.StepStartWith, operands: 2},
	{"strings", "HasSuffix"}: {root: does, step: constraint.StepEndWith, operands: 2},
	{"strings", "EqualFold"}: {root: is, step: constraint.StepEqualTo, modifier: constraint.StepIgnoreCase, operands: 2},
	{"slices", "Contains"}:   {root: has, step: constraint.StepMember, operands: 2},
	{"math", "IsNaN"}:        {root: is, step: constraint.StepNaN, operands: 1},
}

func predicateCall(r argkind.Resolver, x *ast.CallExpr, polarity bool) (ast.Expr, constraint.Expression, bool) {
	path, name, ok := r.Callee(x)
	if !ok || x.Ellipsis.IsValid() {
		return nil, constraint.Expression{}, false
	}
	p, ok := knownPredicates[packagedFunc{pkgPath: path, name: name}]
	if !ok || len(x.Args) != p.operands {
		return nil, constraint.Expression{}, false
	}

	var (
		subject ast.Expr
		e       constraint.Expression
	)
	switch p.operands {
	case 1:
		subject = x.Args[0]
		e = constraint.Build(p.root, prop(p.step))
	default:
		subject = x.Args[0]
		expected := x.Args[1]
		if p.step == constraint.StepEqualTo {
			// EqualFold is symmetric, so the expected side is free to choose.
			roles := InferRoles(argkind.New(x.Args[0], 0, r), argkind.New(x.Args[1], 1, r), OrderingPolicies)
			subject, expected = roles.Subject.Expr, roles.Expected.Expr
		}
		e = chain(p.root, p.step, nonEmpty(p.modifier)...)(expected)
	}

	if !polarity {
		if e, ok = constraint.Negate(e, false); !ok {
			return nil, constraint.Expression{}, false
		}
	}

	return subject, e, true
}

func nonEmpty(s string) []string {
	if s == "" {
		return nil
	}

	return []string{s}
}
