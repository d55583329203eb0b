package testsonly

import "testing"

func TestProbe(t *testing.T) {
	x := 1
	Assert.AreEqual(42, x) // want `FLU000: ClassicEquality: use Assert\.That\(x, Is\.EqualTo\(42\)\)`
}
