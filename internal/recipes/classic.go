package recipes

import (
	"go/ast"
	"go/token"

	"github.com/sirkon/fluentify/internal/argkind"
	"github.com/sirkon/fluentify/internal/constraint"
	"github.com/sirkon/fluentify/internal/fluentrules"
)

func registerClassic(t *Table) {
	const d = DialectClassic

	t.register(d, fluentrules.ClassicEquality(), 2, "Assert.That(x, Is.EqualTo(42))",
		equality(constraint.StepEqualTo, false, true), "AreEqual")
	t.register(d, fluentrules.ClassicEquality(), 2, "Assert.That(x, Is.Not.EqualTo(42))",
		equality(constraint.StepEqualTo, true, false), "AreNotEqual")
	t.register(d, fluentrules.ClassicEquality(), 2, "Assert.That(actual, Is.SameAs(expected))",
		equality(constraint.StepSameAs, false, false), "AreSame")
	t.register(d, fluentrules.ClassicEquality(), 2, "Assert.That(actual, Is.Not.SameAs(expected))",
		equality(constraint.StepSameAs, true, false), "AreNotSame")

	t.register(d, fluentrules.ClassicCondition(), 1, "Assert.That(x, Is.True)",
		condition(true), "IsTrue", "True")
	t.register(d, fluentrules.ClassicCondition(), 1, "Assert.That(x, Is.False)",
		condition(false), "IsFalse", "False")

	t.register(d, fluentrules.ClassicState(), 1, "Assert.That(x, Is.Null)",
		unary(is, constraint.StepNull), "IsNull", "Null")
	t.register(d, fluentrules.ClassicState(), 1, "Assert.That(x, Is.Not.Null)",
		unary(is, constraint.StepNot, constraint.StepNull), "IsNotNull", "NotNull")
	t.register(d, fluentrules.ClassicState(), 1, "Assert.That(x, Is.NaN)",
		unary(is, constraint.StepNaN), "IsNaN")
	t.register(d, fluentrules.ClassicState(), 1, "Assert.That(x, Is.Empty)",
		unary(is, constraint.StepEmpty), "IsEmpty")
	t.register(d, fluentrules.ClassicState(), 1, "Assert.That(x, Is.Not.Empty)",
		unary(is, constraint.StepNot, constraint.StepEmpty), "IsNotEmpty")
	t.register(d, fluentrules.ClassicState(), 1, "Assert.That(x, Is.Zero)",
		unary(is, constraint.StepZero), "Zero")
	t.register(d, fluentrules.ClassicState(), 1, "Assert.That(x, Is.Not.Zero)",
		unary(is, constraint.StepNot, constraint.StepZero), "NotZero")
	t.register(d, fluentrules.ClassicState(), 1, "Assert.That(x, Is.Positive)",
		unary(is, constraint.StepPositive), "Positive")
	t.register(d, fluentrules.ClassicState(), 1, "Assert.That(x, Is.Negative)",
		unary(is, constraint.StepNegative), "Negative")

	t.register(d, fluentrules.ClassicComparison(), 2, "Assert.That(a, Is.GreaterThan(b))",
		ordering(token.GTR), "Greater")
	t.register(d, fluentrules.ClassicComparison(), 2, "Assert.That(a, Is.GreaterThanOrEqualTo(b))",
		ordering(token.GEQ), "GreaterOrEqual")
	t.register(d, fluentrules.ClassicComparison(), 2, "Assert.That(a, Is.LessThan(b))",
		ordering(token.LSS), "Less")
	t.register(d, fluentrules.ClassicComparison(), 2, "Assert.That(a, Is.LessThanOrEqualTo(b))",
		ordering(token.LEQ), "LessOrEqual")

	t.register(d, fluentrules.ClassicTypeMembership(), 1, "Assert.That(x, Is.InstanceOf(expectedType))",
		typeMembership(constraint.StepInstanceOf, false), "IsInstanceOf")
	t.register(d, fluentrules.ClassicTypeMembership(), 1, "Assert.That(x, Is.Not.InstanceOf(expectedType))",
		typeMembership(constraint.StepInstanceOf, true), "IsNotInstanceOf")
	t.register(d, fluentrules.ClassicTypeMembership(), 1, "Assert.That(x, Is.AssignableFrom(expectedType))",
		typeMembership(constraint.StepAssignable, false), "IsAssignableFrom")
	t.register(d, fluentrules.ClassicTypeMembership(), 1, "Assert.That(x, Is.Not.AssignableFrom(expectedType))",
		typeMembership(constraint.StepAssignable, true), "IsNotAssignableFrom")

	t.register(d, fluentrules.ClassicContainment(), 2, "Assert.That(collection, Has.Member(item))",
		membership, "Contains")

	t.register(d, fluentrules.PositionalMessage(), 0, `Assert.Fail("bad " + fmt.Sprint(x))`,
		messageOnly, "Fail", "Pass", "Ignore", "Inconclusive", "Warn")
}

// equality covers two-operand equality and identity checks. Roles are inferred, a
// boolean or nil literal folds into Is.True, Is.False or Is.Null.
func equality(identity string, negated, tolerant bool) Recipe {
	return func(c *Call) (Result, bool) {
		roles := InferRoles(c.Args[0], c.Args[1], EqualityPolicies)
		e := predicate(roles, identity)
		subject := roles.Subject.Expr
		consumed := 2

		tol, ok := tolerance(c)
		if !ok {
			return Result{}, false
		}
		if tol != nil {
			if !tolerant || roles.Fused {
				return Result{}, false
			}
			e = e.Append(call(constraint.StepWithin, tol))
			consumed = 3
		}

		if !roles.Fused && identity == constraint.StepEqualTo {
			subject, e = peelCount(c.Resolver, subject, e)
		}

		if negated {
			var ok bool
			if e, ok = negate(c, subject, e); !ok {
				return Result{}, false
			}
		}

		return Result{Subject: subject, Constraint: e, Consumed: consumed}, true
	}
}

// ordering covers Greater and its relatives, op is the relation of the first operand
// to the second one.
func ordering(op token.Token) Recipe {
	return func(c *Call) (Result, bool) {
		subject, e := comparison(c.Resolver, op, c.Args[0], c.Args[1])
		return Result{Subject: subject, Constraint: e, Consumed: 2}, true
	}
}

// unary checks the single operand with a chain of property steps.
func unary(root constraint.Root, steps ...string) Recipe {
	chain := make([]constraint.Step, len(steps))
	for i, s := range steps {
		chain[i] = prop(s)
	}
	e := constraint.Build(root, chain...)

	return func(c *Call) (Result, bool) {
		return Result{Subject: c.Args[0].Expr, Constraint: e, Consumed: 1}, true
	}
}

// typeMembership supports both the generic form
//
//	IsInstanceOf[T](actual)
//
// and the type value form
//
//	IsInstanceOf(expectedType, actual)
func typeMembership(step string, negated bool) Recipe {
	return func(c *Call) (Result, bool) {
		var res Result
		switch {
		case len(c.TypeArgs) > 0:
			res = Result{
				Subject:    c.Args[0].Expr,
				Constraint: constraint.Build(is, constraint.Generic(step, c.TypeArgs...)),
				Consumed:   1,
			}
		case len(c.Args) >= 2:
			if !swapSafe(c.Args[0], c.Args[1]) {
				return Result{}, false
			}
			res = Result{
				Subject:    c.Args[1].Expr,
				Constraint: constraint.Build(is, call(step, c.Args[0].Expr)),
				Consumed:   2,
			}
		default:
			return Result{}, false
		}

		if negated {
			var ok bool
			if res.Constraint, ok = negate(c, res.Subject, res.Constraint); !ok {
				return Result{}, false
			}
		}

		return res, true
	}
}

// membership is Contains(expected, actual): string subjects contain a substring,
// anything else has a member.
func membership(c *Call) (Result, bool) {
	expected, actual := c.Args[0], c.Args[1]
	if !swapSafe(expected, actual) {
		return Result{}, false
	}

	e := constraint.Build(has, call(constraint.StepMember, expected.Expr))
	if argkind.IsString(c.Resolver, actual.Expr) {
		e = constraint.Build(does, call(constraint.StepContain, expected.Expr))
	}

	return Result{Subject: actual.Expr, Constraint: e, Consumed: 2}, true
}

func messageOnly(*Call) (Result, bool) {
	return Result{Passthrough: true}, true
}

// order tells where the value under test is among the two operands of a fixed-role
// assertion.
type order int

const (
	actualFirst order = iota
	expectedFirst
)

// binary covers assertions whose operand roles are fixed by the method itself.
func binary(o order, negated bool, build func(expected ast.Expr) constraint.Expression) Recipe {
	return func(c *Call) (Result, bool) {
		actual, expected := c.Args[0], c.Args[1]
		if o == expectedFirst {
			if !swapSafe(actual, expected) {
				return Result{}, false
			}
			actual, expected = expected, actual
		}

		e := build(expected.Expr)
		if negated {
			var ok bool
			if e, ok = negate(c, actual.Expr, e); !ok {
				return Result{}, false
			}
		}

		return Result{Subject: actual.Expr, Constraint: e, Consumed: 2}, true
	}
}

// chain returns a builder of a single step constraint with optional property modifiers.
func chain(root constraint.Root, step string, modifiers ...string) func(ast.Expr) constraint.Expression {
	return func(expected ast.Expr) constraint.Expression {
		steps := []constraint.Step{call(step, expected)}
		for _, m := range modifiers {
			steps = append(steps, prop(m))
		}

		return constraint.Build(root, steps...)
	}
}
