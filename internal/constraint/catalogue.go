package constraint

import "fmt"

// Category groups constraint steps by what they check.
type Category int

const (
	categoryInvalid Category = iota
	CategoryIdentity
	CategoryExistence
	CategoryContainment
	CategoryOrdering
	CategoryCount
	CategoryTypeMembership
	CategoryNegation
	CategoryModifier
	CategoryConjunction
	CategoryQuantifier
)

var categoryValueMap = map[Category]string{
	CategoryIdentity:       "identity",
	CategoryExistence:      "existence",
	CategoryContainment:    "containment",
	CategoryOrdering:       "ordering",
	CategoryCount:          "count",
	CategoryTypeMembership: "type-membership",
	CategoryNegation:       "negation",
	CategoryModifier:       "modifier",
	CategoryConjunction:    "conjunction",
	CategoryQuantifier:     "quantifier",
}

func (c Category) String() string {
	v, ok := categoryValueMap[c]
	if !ok {
		return fmt.Sprintf("invalid(%d)", c)
	}

	return v
}

// Step names.
const (
	StepEqualTo     = "EqualTo"
	StepSameAs      = "SameAs"
	StepEquivalent  = "EquivalentTo"
	StepMatches     = "Matches"
	StepNull        = "Null"
	StepEmpty       = "Empty"
	StepTrue        = "True"
	StepFalse       = "False"
	StepNaN         = "NaN"
	StepZero        = "Zero"
	StepPositive    = "Positive"
	StepNegative    = "Negative"
	StepExist       = "Exist"
	StepUnique      = "Unique"
	StepOrdered     = "Ordered"
	StepContain     = "Contain"
	StepStartWith   = "StartWith"
	StepEndWith     = "EndWith"
	StepMatch       = "Match"
	StepMember      = "Member"
	StepSubsetOf    = "SubsetOf"
	StepSupersetOf  = "SupersetOf"
	StepGreater     = "GreaterThan"
	StepGreaterOrEq = "GreaterThanOrEqualTo"
	StepLess        = "LessThan"
	StepLessOrEq    = "LessThanOrEqualTo"
	StepCount       = "Count"
	StepLength      = "Length"
	StepInstanceOf  = "InstanceOf"
	StepAssignable  = "AssignableFrom"
	StepNot         = "Not"
	StepNo          = "No"
	StepWithin      = "Within"
	StepIgnoreCase  = "IgnoreCase"
	StepAnd         = "And"
	StepOr          = "Or"
	StepAll         = "All"
)

type stepSpec struct {
	category    Category
	property    bool
	minOperands int
	maxOperands int
	typeArgs    bool

	// nested steps take a constraint expression rather than a value.
	nested bool
}

func property(cat Category) stepSpec {
	return stepSpec{category: cat, property: true}
}

func call(cat Category, operands int) stepSpec {
	return stepSpec{category: cat, minOperands: operands, maxOperands: operands}
}

var catalogue = map[string]stepSpec{
	StepEqualTo:    call(CategoryIdentity, 1),
	StepSameAs:     call(CategoryIdentity, 1),
	StepEquivalent: call(CategoryIdentity, 1),
	StepMatches:    {category: CategoryIdentity, minOperands: 1, maxOperands: 1, nested: true},

	StepNull:     property(CategoryExistence),
	StepEmpty:    property(CategoryExistence),
	StepTrue:     property(CategoryExistence),
	StepFalse:    property(CategoryExistence),
	StepNaN:      property(CategoryExistence),
	StepZero:     property(CategoryExistence),
	StepPositive: property(CategoryExistence),
	StepNegative: property(CategoryExistence),
	StepExist:    property(CategoryExistence),
	StepUnique:   property(CategoryExistence),
	StepOrdered:  property(CategoryExistence),

	StepContain:    call(CategoryContainment, 1),
	StepStartWith:  call(CategoryContainment, 1),
	StepEndWith:    call(CategoryContainment, 1),
	StepMatch:      call(CategoryContainment, 1),
	StepMember:     call(CategoryContainment, 1),
	StepSubsetOf:   call(CategoryContainment, 1),
	StepSupersetOf: call(CategoryContainment, 1),

	StepGreater:     call(CategoryOrdering, 1),
	StepGreaterOrEq: call(CategoryOrdering, 1),
	StepLess:        call(CategoryOrdering, 1),
	StepLessOrEq:    call(CategoryOrdering, 1),

	StepCount:  property(CategoryCount),
	StepLength: property(CategoryCount),

	StepInstanceOf: {category: CategoryTypeMembership, maxOperands: 1, typeArgs: true},
	StepAssignable: {category: CategoryTypeMembership, maxOperands: 1, typeArgs: true},

	StepNot: property(CategoryNegation),
	StepNo:  property(CategoryNegation),

	StepWithin:     call(CategoryModifier, 1),
	StepIgnoreCase: property(CategoryModifier),

	StepAnd: property(CategoryConjunction),
	StepOr:  property(CategoryConjunction),

	StepAll: property(CategoryQuantifier),
}

// CategoryOf returns the category of a step name, zero for unknown names.
func CategoryOf(name string) Category {
	return catalogue[name].category
}
