package argkind

import (
	"fmt"
	"go/ast"
)

// Kind is a coarse classification of an assertion operand.
type Kind int

const (
	kindInvalid Kind = iota

	// KindBoolLiteral is the predeclared true or false.
	KindBoolLiteral

	// KindNullLiteral is the predeclared nil.
	KindNullLiteral

	// KindNumericLiteral covers integer, float, imaginary and rune literals, their
	// signed forms and numeric conversions of them, like float64(1).
	KindNumericLiteral

	// KindStringLiteral is an interpreted or raw string literal.
	KindStringLiteral

	// KindEnumMember is a reference to a typed constant of a named type, like time.Monday.
	KindEnumMember

	// KindConstReference is a reference to any other declared constant.
	KindConstReference

	// KindIdentifier is a plain identifier or a selector chain.
	KindIdentifier

	// KindNestedCall is a function or method invocation.
	KindNestedCall

	// KindOther is everything else.
	KindOther
)

var kindValueMap = map[Kind]string{
	KindBoolLiteral:    "bool-literal",
	KindNullLiteral:    "null-literal",
	KindNumericLiteral: "numeric-literal",
	KindStringLiteral:  "string-literal",
	KindEnumMember:     "enum-member",
	KindConstReference: "const-reference",
	KindIdentifier:     "identifier",
	KindNestedCall:     "nested-call",
	KindOther:          "other",
}

func (k Kind) String() string {
	v, ok := kindValueMap[k]
	if !ok {
		return fmt.Sprintf("invalid(%d)", k)
	}

	return v
}

// Literal reports whether the kind is one of the literal kinds.
func (k Kind) Literal() bool {
	switch k {
	case KindBoolLiteral, KindNullLiteral, KindNumericLiteral, KindStringLiteral:
		return true
	default:
		return false
	}
}

// ConstantLike reports whether the operand of this kind reads as an expected value:
// a numeric or string literal, an enum member or a constant reference.
func (k Kind) ConstantLike() bool {
	switch k {
	case KindNumericLiteral, KindStringLiteral, KindEnumMember, KindConstReference:
		return true
	default:
		return false
	}
}

// Argument is a classified operand of an assertion call.
type Argument struct {
	Expr     ast.Expr
	Kind     Kind
	Position int
}

// New classifies expr found at the given position of an argument list.
func New(expr ast.Expr, position int, r Resolver) Argument {
	return Argument{
		Expr:     expr,
		Kind:     Classify(expr, r),
		Position: position,
	}
}

// List classifies every expression of an argument list.
func List(exprs []ast.Expr, r Resolver) []Argument {
	res := make([]Argument, len(exprs))
	for i, expr := range exprs {
		res[i] = New(expr, i, r)
	}

	return res
}
