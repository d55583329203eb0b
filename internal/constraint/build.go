package constraint

import (
	"fmt"
	"go/ast"
)

// Build assembles a constraint expression. Steps are validated against the catalogue,
// a violation is a defect of the recipe that asked for it and panics.
func Build(root Root, steps ...Step) Expression {
	e := Expression{Root: root, Steps: steps}
	if err := e.Validate(); err != nil {
		panic(fmt.Errorf("build constraint: %w", err))
	}

	return e
}

// Validate checks every step of e against the catalogue.
func (e Expression) Validate() error {
	if _, ok := rootValueMap[e.Root]; !ok {
		return fmt.Errorf("invalid root %s", e.Root)
	}
	if len(e.Steps) == 0 {
		return fmt.Errorf("empty %s chain", e.Root)
	}

	for i, s := range e.Steps {
		spec, ok := catalogue[s.Name]
		if !ok {
			return fmt.Errorf("step %d: unknown constraint step %q", i, s.Name)
		}

		if spec.property && (len(s.Operands) > 0 || len(s.TypeArgs) > 0) {
			return fmt.Errorf("step %d: %s is a property and takes no operands", i, s.Name)
		}
		if len(s.TypeArgs) > 0 && !spec.typeArgs {
			return fmt.Errorf("step %d: %s takes no type arguments", i, s.Name)
		}
		if n := len(s.Operands); n < spec.minOperands || n > spec.maxOperands {
			return fmt.Errorf("step %d: %s takes %d..%d operands, got %d", i, s.Name, spec.minOperands, spec.maxOperands, n)
		}
		if spec.typeArgs && len(s.TypeArgs) == 0 && len(s.Operands) == 0 {
			return fmt.Errorf("step %d: %s needs either a type argument or an operand", i, s.Name)
		}

		for _, o := range s.Operands {
			n, ok := o.(Nested)
			if ok != spec.nested {
				if spec.nested {
					return fmt.Errorf("step %d: %s takes a constraint expression", i, s.Name)
				}
				return fmt.Errorf("step %d: %s takes no constraint expression", i, s.Name)
			}
			if !ok {
				continue
			}
			if err := n.Expression.Validate(); err != nil {
				return fmt.Errorf("step %d: nested %s: %w", i, s.Name, err)
			}
		}
	}

	return nil
}

// Prop returns a property step like Null or Count.
func Prop(name string) Step {
	return Step{Name: name}
}

// Call returns a step called with the given expressions, like EqualTo(x).
func Call(name string, operands ...ast.Expr) Step {
	s := Step{Name: name}
	for _, o := range operands {
		s.Operands = append(s.Operands, Value{Expr: o})
	}

	return s
}

// Generic returns a step instantiated with type arguments, like InstanceOf[T]().
func Generic(name string, typeArgs ...ast.Expr) Step {
	return Step{Name: name, TypeArgs: typeArgs}
}

// With returns a step taking another constraint expression as its operand.
func With(name string, nested Expression) Step {
	return Step{Name: name, Operands: []Operand{Nested{Expression: nested}}}
}

// Group wraps e into a single Matches step, so that a conjunction appended after it
// does not mix with the conjunctions of e:
//
//	Is.EqualTo(20).Or.LessThan(0) → Is.Matches(Is.EqualTo(20).Or.LessThan(0))
func Group(e Expression) Expression {
	return Build(RootIs, With(StepMatches, e))
}

// Join connects two expressions with a conjunction step (StepAnd or StepOr). The root
// of the second expression is dropped, its chain continues after the conjunction.
func Join(a Expression, conj string, b Expression) Expression {
	if CategoryOf(conj) != CategoryConjunction {
		panic(fmt.Errorf("join constraints: %q is not a conjunction", conj))
	}

	return a.Append(Prop(conj)).Append(b.Steps...)
}
