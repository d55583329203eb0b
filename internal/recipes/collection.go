package recipes

import (
	"go/ast"

	"github.com/sirkon/fluentify/internal/constraint"
	"github.com/sirkon/fluentify/internal/fluentrules"
)

func registerCollection(t *Table) {
	const d = DialectCollection
	rule := fluentrules.CollectionAssertion()

	t.register(d, rule, 2, "Assert.That(collection, Is.All.InstanceOf(expectedType))",
		binary(actualFirst, false, func(typ ast.Expr) constraint.Expression {
			return constraint.Build(is, prop(constraint.StepAll), call(constraint.StepInstanceOf, typ))
		}), "AllItemsAreInstancesOfType")
	t.register(d, rule, 1, "Assert.That(collection, Is.All.Not.Null)",
		unary(is, constraint.StepAll, constraint.StepNot, constraint.StepNull), "AllItemsAreNotNull")
	t.register(d, rule, 1, "Assert.That(collection, Is.Unique)",
		unary(is, constraint.StepUnique), "AllItemsAreUnique")

	t.register(d, rule, 2, "Assert.That(actual, Is.EqualTo(expected))",
		binary(expectedFirst, false, chain(is, constraint.StepEqualTo)), "AreEqual")
	t.register(d, rule, 2, "Assert.That(actual, Is.Not.EqualTo(expected))",
		binary(expectedFirst, true, chain(is, constraint.StepEqualTo)), "AreNotEqual")
	t.register(d, rule, 2, "Assert.That(actual, Is.EquivalentTo(expected))",
		binary(expectedFirst, false, chain(is, constraint.StepEquivalent)), "AreEquivalent")
	t.register(d, rule, 2, "Assert.That(actual, Is.Not.EquivalentTo(expected))",
		binary(expectedFirst, true, chain(is, constraint.StepEquivalent)), "AreNotEquivalent")

	t.register(d, rule, 2, "Assert.That(collection, Has.Member(item))",
		binary(actualFirst, false, chain(has, constraint.StepMember)), "Contains")
	t.register(d, rule, 2, "Assert.That(collection, Has.No.Member(item))",
		binary(actualFirst, true, chain(has, constraint.StepMember)), "DoesNotContain")

	t.register(d, rule, 1, "Assert.That(collection, Is.Empty)",
		unary(is, constraint.StepEmpty), "IsEmpty")
	t.register(d, rule, 1, "Assert.That(collection, Is.Not.Empty)",
		unary(is, constraint.StepNot, constraint.StepEmpty), "IsNotEmpty")
	t.register(d, rule, 1, "Assert.That(collection, Is.Ordered)",
		unary(is, constraint.StepOrdered), "IsOrdered")

	t.register(d, rule, 2, "Assert.That(subset, Is.SubsetOf(superset))",
		binary(actualFirst, false, chain(is, constraint.StepSubsetOf)), "IsSubsetOf")
	t.register(d, rule, 2, "Assert.That(subset, Is.Not.SubsetOf(superset))",
		binary(actualFirst, true, chain(is, constraint.StepSubsetOf)), "IsNotSubsetOf")
	t.register(d, rule, 2, "Assert.That(superset, Is.SupersetOf(subset))",
		binary(actualFirst, false, chain(is, constraint.StepSupersetOf)), "IsSupersetOf")
	t.register(d, rule, 2, "Assert.That(superset, Is.Not.SupersetOf(subset))",
		binary(actualFirst, true, chain(is, constraint.StepSupersetOf)), "IsNotSupersetOf")
}
