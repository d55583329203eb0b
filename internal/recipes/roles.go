package recipes

import (
	"github.com/sirkon/fluentify/internal/argkind"
)

// Side tells which operand of a two-operand check holds the expected value.
type Side int

const (
	SideRight Side = iota
	SideLeft
)

// Roles is the outcome of role inference.
type Roles struct {
	Subject  argkind.Argument
	Expected argkind.Argument
	Side     Side

	// Fused is true when the expected operand is a boolean or nil literal folded into a
	// single operand predicate, like Is.True or Is.Null.
	Fused bool

	// Policy is the name of the policy that decided, empty for the default.
	Policy string
}

// Policy decides whether an operand is the expected one.
type Policy struct {
	Name  string
	Match func(arg argkind.Argument) bool
	Fuse  bool
}

var (
	// PredicateLiteral picks true, false and nil. They turn into Is.True, Is.False and Is.Null.
	PredicateLiteral = Policy{
		Name: "predicate-literal",
		Match: func(arg argkind.Argument) bool {
			return arg.Kind == argkind.KindBoolLiteral || arg.Kind == argkind.KindNullLiteral
		},
		Fuse: true,
	}

	// ConstantOperand picks numeric and string literals, enum members and constants.
	ConstantOperand = Policy{
		Name: "constant-operand",
		Match: func(arg argkind.Argument) bool {
			return arg.Kind.ConstantLike()
		},
	}
)

// EqualityPolicies are used by equality and identity checks.
var EqualityPolicies = []Policy{PredicateLiteral, ConstantOperand}

// OrderingPolicies are used by ordering checks, where predicate literals make no sense.
var OrderingPolicies = []Policy{ConstantOperand}

// InferRoles chooses the expected operand. Policies are tried in order, each one on the
// right operand first and then on the left one, the first match wins. With no match
// the right operand is the expected one.
func InferRoles(left, right argkind.Argument, policies []Policy) Roles {
	for _, p := range policies {
		if p.Match(right) {
			return Roles{Subject: left, Expected: right, Side: SideRight, Fused: p.Fuse, Policy: p.Name}
		}
		if p.Match(left) {
			return Roles{Subject: right, Expected: left, Side: SideLeft, Fused: p.Fuse, Policy: p.Name}
		}
	}

	return Roles{Subject: left, Expected: right, Side: SideRight}
}
