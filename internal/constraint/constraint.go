package constraint

import (
	"fmt"
	"go/ast"
	"slices"
)

// Root is the entry point of a constraint chain.
type Root int

const (
	rootInvalid Root = iota
	RootIs
	RootHas
	RootDoes
)

var rootValueMap = map[Root]string{
	RootIs:   "Is",
	RootHas:  "Has",
	RootDoes: "Does",
}

func (r Root) String() string {
	v, ok := rootValueMap[r]
	if !ok {
		return fmt.Sprintf("invalid(%d)", r)
	}

	return v
}

// Operand is a tagged variant of step operands. It is one of:
//
//   - Value: an argument expression taken from the assertion call.
//   - Nested: a whole constraint expression passed as an argument.
type Operand interface {
	isOperand()
}

// Value is an operand given by an expression of the rewritten call.
type Value struct {
	Expr ast.Expr
}

// Nested is an operand given by another constraint expression.
type Nested struct {
	Expression Expression
}

// Step is a single link of a constraint chain.
type Step struct {
	Name     string
	TypeArgs []ast.Expr
	Operands []Operand
}

// Expression is a constraint chain.
type Expression struct {
	Root  Root
	Steps []Step
}

// Append returns a copy of e extended with steps.
func (e Expression) Append(steps ...Step) Expression {
	return Expression{
		Root:  e.Root,
		Steps: append(slices.Clip(e.Steps), steps...),
	}
}

// Prefix returns a copy of e with its steps following the given root and leading steps,
// like Count in Has.Count.EqualTo(3).
func (e Expression) Prefix(root Root, steps ...Step) Expression {
	return Expression{
		Root:  root,
		Steps: append(slices.Clone(steps), e.Steps...),
	}
}

// Head returns the name of the first step.
func (e Expression) Head() string {
	if len(e.Steps) == 0 {
		return ""
	}

	return e.Steps[0].Name
}

// Contains reports whether e has a step of the given category.
func (e Expression) Contains(cat Category) bool {
	for _, s := range e.Steps {
		if catalogue[s.Name].category == cat {
			return true
		}
	}

	return false
}

// Values returns expressions of all Value operands, nested expressions included.
func (e Expression) Values() []ast.Expr {
	var res []ast.Expr
	for _, s := range e.Steps {
		for _, o := range s.Operands {
			switch v := o.(type) {
			case Value:
				res = append(res, v.Expr)
			case Nested:
				res = append(res, v.Expression.Values()...)
			}
		}
	}

	return res
}

func (Value) isOperand()  {}
func (Nested) isOperand() {}
