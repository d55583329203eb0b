package recipes

import (
	"github.com/sirkon/fluentify/internal/constraint"
	"github.com/sirkon/fluentify/internal/fluentrules"
)

// All string assertions take the expected operand first.
func registerString(t *Table) {
	const d = DialectString
	rule := fluentrules.StringAssertion()

	t.register(d, rule, 2, `Assert.That(s, Does.Contain("sub"))`,
		binary(expectedFirst, false, chain(does, constraint.StepContain)), "Contains")
	t.register(d, rule, 2, `Assert.That(s, Does.Not.Contain("sub"))`,
		binary(expectedFirst, true, chain(does, constraint.StepContain)), "DoesNotContain")
	t.register(d, rule, 2, `Assert.That(s, Does.StartWith("pre"))`,
		binary(expectedFirst, false, chain(does, constraint.StepStartWith)), "StartsWith")
	t.register(d, rule, 2, `Assert.That(s, Does.Not.StartWith("pre"))`,
		binary(expectedFirst, true, chain(does, constraint.StepStartWith)), "DoesNotStartWith")
	t.register(d, rule, 2, `Assert.That(s, Does.EndWith("suf"))`,
		binary(expectedFirst, false, chain(does, constraint.StepEndWith)), "EndsWith")
	t.register(d, rule, 2, `Assert.That(s, Does.Not.EndWith("suf"))`,
		binary(expectedFirst, true, chain(does, constraint.StepEndWith)), "DoesNotEndWith")
	t.register(d, rule, 2, `Assert.That(s, Is.EqualTo("text").IgnoreCase)`,
		binary(expectedFirst, false, chain(is, constraint.StepEqualTo, constraint.StepIgnoreCase)), "AreEqualIgnoringCase")
	t.register(d, rule, 2, `Assert.That(s, Is.Not.EqualTo("text").IgnoreCase)`,
		binary(expectedFirst, true, chain(is, constraint.StepEqualTo, constraint.StepIgnoreCase)), "AreNotEqualIgnoringCase")
	t.register(d, rule, 2, `Assert.That(s, Does.Match("^a+$"))`,
		binary(expectedFirst, false, chain(does, constraint.StepMatch)), "IsMatch")
	t.register(d, rule, 2, `Assert.That(s, Does.Not.Match("^a+$"))`,
		binary(expectedFirst, true, chain(does, constraint.StepMatch)), "DoesNotMatch")
}
