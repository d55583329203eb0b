package example

import "strings"

type Color int

const ColorRed Color = 1

type List struct{ Count int }

func probe(x int, c Color, list List, ok bool, s, name string, items []int, ptr *int) {
	Assert.AreEqual(42, x) // want `FLU000: ClassicEquality: use Assert\.That\(x, Is\.EqualTo\(42\)\)`

	Assert.AreEqual(c, ColorRed) // want `FLU000: ClassicEquality: use Assert\.That\(c, Is\.EqualTo\(ColorRed\)\)`

	Assert.IsTrue(ptr == nil) // want `FLU001: ClassicCondition: use Assert\.That\(ptr, Is\.Null\)`

	Assert.Greater(x, 0) // want `FLU002: ClassicComparison: use Assert\.That\(x, Is\.GreaterThan\(0\)\)`

	Assert.AreEqual(list.Count, 3) // want `FLU000: ClassicEquality: use Assert\.That\(list, Has\.Count\.EqualTo\(3\)\)`

	Assert.IsFalse(strings.HasPrefix(s, "a")) // want `FLU001: ClassicCondition: use Assert\.That\(s, Does\.Not\.StartWith\("a"\)\)`

	Assert.AreNotEqual(true, ok) // want `FLU000: ClassicEquality: use Assert\.That\(ok, Is\.False\)`

	CollectionAssert.Contains(items, 3) // want `FLU010: CollectionAssertion: use Assert\.That\(items, Has\.Member\(3\)\)`

	StringAssert.EndsWith("z", s) // want `FLU020: StringAssertion: use Assert\.That\(s, Does\.EndWith\("z"\)\)`

	Assert.Fail("bad {0} at {1}", name, x) // want `FLU100: PositionalMessage: use Assert\.Fail\("bad " \+ name \+ " at " \+ fmt\.Sprint\(x\)\)`

	Assert.AreEqual(x, 42, "x is {0}", x) // want `FLU000: ClassicEquality: use Assert\.That\(x, Is\.EqualTo\(42\), "x is "\+fmt\.Sprint\(x\)\)`

	Assert.IsTrue(ok, "plain") // want `FLU001: ClassicCondition: use Assert\.That\(ok, Is\.True, "plain"\)`

	Assert.Pass("done")

	Assert.AreNotEqual(x, 1.5, 0.1)

	Assert.AreEqual( // want `FLU000: ClassicEquality: use Assert\.That\(x, Is\.EqualTo\(42\)\)`
		42, // kept as is
		x,
	)
}
