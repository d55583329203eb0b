package fluentrules

import "fmt"

// Rule represents a fluentify rule code (FLU-series).
type Rule int

const (
	ruleInvalid Rule = iota

	FLU000ClassicEquality
	FLU001ClassicCondition
	FLU002ClassicComparison
	FLU003ClassicState
	FLU004ClassicTypeMembership
	FLU005ClassicContainment
	FLU010CollectionAssertion
	FLU020StringAssertion
	FLU030FileAssertion
	FLU100PositionalMessage
)

var ruleCodeMap = map[Rule]string{
	FLU000ClassicEquality:       "FLU000",
	FLU001ClassicCondition:      "FLU001",
	FLU002ClassicComparison:     "FLU002",
	FLU003ClassicState:          "FLU003",
	FLU004ClassicTypeMembership: "FLU004",
	FLU005ClassicContainment:    "FLU005",
	FLU010CollectionAssertion:   "FLU010",
	FLU020StringAssertion:       "FLU020",
	FLU030FileAssertion:         "FLU030",
	FLU100PositionalMessage:     "FLU100",
}

// Code returns the bare rule code, like "FLU000".
func (r Rule) Code() string {
	v, ok := ruleCodeMap[r]
	if !ok {
		return fmt.Sprintf("FLU?(%d)", int(r))
	}

	return v
}

// String returns the canonical code and short name of the rule.
// Example: "FLU000: ClassicEquality"
func (r Rule) String() string {
	switch r {
	case FLU000ClassicEquality:
		return "FLU000: ClassicEquality"
	case FLU001ClassicCondition:
		return "FLU001: ClassicCondition"
	case FLU002ClassicComparison:
		return "FLU002: ClassicComparison"
	case FLU003ClassicState:
		return "FLU003: ClassicState"
	case FLU004ClassicTypeMembership:
		return "FLU004: ClassicTypeMembership"
	case FLU005ClassicContainment:
		return "FLU005: ClassicContainment"
	case FLU010CollectionAssertion:
		return "FLU010: CollectionAssertion"
	case FLU020StringAssertion:
		return "FLU020: StringAssertion"
	case FLU030FileAssertion:
		return "FLU030: FileAssertion"
	case FLU100PositionalMessage:
		return "FLU100: PositionalMessage"
	default:
		return fmt.Sprintf("rule-unknown(%d)", r)
	}
}

// Description returns the human-readable explanation of the rule.
func (r Rule) Description() string {
	switch r {
	case FLU000ClassicEquality:
		return "Classic equality assertion can be expressed as a constraint."
	case FLU001ClassicCondition:
		return "Boolean condition assertion can state the checked relation as a constraint."
	case FLU002ClassicComparison:
		return "Classic ordering assertion can be expressed as a comparison constraint."
	case FLU003ClassicState:
		return "Single-operand state assertion (null, empty, NaN, sign) can be expressed as a constraint."
	case FLU004ClassicTypeMembership:
		return "Type membership assertion can be expressed as a type constraint."
	case FLU005ClassicContainment:
		return "Classic containment assertion can be expressed as a membership constraint."
	case FLU010CollectionAssertion:
		return "Collection assertion can be expressed as a collection constraint."
	case FLU020StringAssertion:
		return "String assertion can be expressed as a string constraint."
	case FLU030FileAssertion:
		return "File or directory assertion can be expressed as a constraint."
	case FLU100PositionalMessage:
		return "Positional message format can be replaced with plain string concatenation."
	default:
		return fmt.Sprintf("unknown-rule(%d)", r)
	}
}

// Canonical constructors, for readability at call sites.

func ClassicEquality() Rule       { return FLU000ClassicEquality }
func ClassicCondition() Rule      { return FLU001ClassicCondition }
func ClassicComparison() Rule     { return FLU002ClassicComparison }
func ClassicState() Rule          { return FLU003ClassicState }
func ClassicTypeMembership() Rule { return FLU004ClassicTypeMembership }
func ClassicContainment() Rule    { return FLU005ClassicContainment }
func CollectionAssertion() Rule   { return FLU010CollectionAssertion }
func StringAssertion() Rule       { return FLU020StringAssertion }
func FileAssertion() Rule         { return FLU030FileAssertion }
func PositionalMessage() Rule     { return FLU100PositionalMessage }
