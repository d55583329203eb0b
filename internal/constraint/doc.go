// Package constraint models fluent constraint expressions and renders them as Go syntax.
//
// An expression is a root (Is, Has or Does) followed by a chain of steps:
//
//	Is.EqualTo(42)                // Root: Is, Steps: EqualTo(42)
//	Has.Count.GreaterThan(3)      // Root: Has, Steps: Count, GreaterThan(3)
//	Is.Not.Null                   // Root: Is, Steps: Not, Null
//	Is.EqualTo(a).Within(0.01)    // modifiers are steps too
//	Is.GreaterThan(0).And.LessThan(10)
//
// Every step name is validated against a fixed catalogue. The catalogue tells whether a
// step renders as a property (no call) or as a call, how many operands it takes and
// whether it has a direct negated form.
package constraint
