package example

type assertions struct{}

func (assertions) AreEqual(expected, actual any, args ...any)    {}
func (assertions) AreNotEqual(expected, actual any, args ...any) {}
func (assertions) IsTrue(condition bool, args ...any)            {}
func (assertions) IsFalse(condition bool, args ...any)           {}
func (assertions) Greater(a, b any, args ...any)                 {}
func (assertions) Contains(expected, actual any, args ...any)    {}
func (assertions) EndsWith(expected, actual string, args ...any) {}
func (assertions) Fail(args ...any)                              {}
func (assertions) Pass(args ...any)                              {}

var (
	Assert           assertions
	CollectionAssert assertions
	StringAssert     assertions
)
