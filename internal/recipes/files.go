package recipes

import (
	"github.com/sirkon/fluentify/internal/constraint"
	"github.com/sirkon/fluentify/internal/fluentrules"
)

func registerFile(t *Table) {
	const d = DialectFile
	rule := fluentrules.FileAssertion()

	t.register(d, rule, 1, "Assert.That(path, Does.Exist)",
		unary(does, constraint.StepExist), "Exists")
	t.register(d, rule, 1, "Assert.That(path, Does.Not.Exist)",
		unary(does, constraint.StepNot, constraint.StepExist), "DoesNotExist")
	t.register(d, rule, 2, "Assert.That(actual, Is.EqualTo(expected))",
		binary(expectedFirst, false, chain(is, constraint.StepEqualTo)), "AreEqual")
	t.register(d, rule, 2, "Assert.That(actual, Is.Not.EqualTo(expected))",
		binary(expectedFirst, true, chain(is, constraint.StepEqualTo)), "AreNotEqual")
}
