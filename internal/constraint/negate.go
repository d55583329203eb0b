package constraint

import "slices"

// Negate returns the negation of e.
//
// The negation is placed right after the quantifier and count prefix:
//
//	Is.All.Null        → Is.All.Not.Null
//	Has.Count.EqualTo  → Has.Count.Not.EqualTo
//
// and uses a direct negated form where one exists:
//
//	Is.Not.Null  → Is.Null
//	Has.Member   → Has.No.Member
//	Is.True      → Is.False (boolean subjects only, Is.Not.True otherwise)
//
// Expressions with a conjunction cannot be negated by a prefix and yield false.
func Negate(e Expression, boolSubject bool) (Expression, bool) {
	if e.Contains(CategoryConjunction) {
		return e, false
	}

	i := 0
	for i < len(e.Steps) && isPrefix(e.Steps[i].Name) {
		i++
	}
	if i == len(e.Steps) {
		return e, false
	}

	steps := slices.Clone(e.Steps)
	switch steps[i].Name {
	case StepNot, StepNo:
		return Expression{Root: e.Root, Steps: slices.Delete(steps, i, i+1)}, true

	case StepTrue, StepFalse:
		if boolSubject {
			steps[i] = Prop(oppositeBool(steps[i].Name))
			return Expression{Root: e.Root, Steps: steps}, true
		}

	case StepMember:
		if e.Root == RootHas && i == 0 {
			return Expression{Root: e.Root, Steps: slices.Insert(steps, i, Prop(StepNo))}, true
		}
	}

	return Expression{Root: e.Root, Steps: slices.Insert(steps, i, Prop(StepNot))}, true
}

func isPrefix(name string) bool {
	switch CategoryOf(name) {
	case CategoryQuantifier, CategoryCount:
		return true
	default:
		return false
	}
}

func oppositeBool(name string) string {
	if name == StepTrue {
		return StepFalse
	}

	return StepTrue
}
