package fluentrules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRuleIdentity(t *testing.T) {
	rules := []Rule{
		ClassicEquality(),
		ClassicCondition(),
		ClassicComparison(),
		ClassicState(),
		ClassicTypeMembership(),
		ClassicContainment(),
		CollectionAssertion(),
		StringAssertion(),
		FileAssertion(),
		PositionalMessage(),
	}

	seen := map[string]bool{}
	for _, r := range rules {
		t.Run(r.Code(), func(t *testing.T) {
			require.False(t, seen[r.Code()], "duplicate code")
			seen[r.Code()] = true

			require.True(t, strings.HasPrefix(r.String(), r.Code()+": "))
			require.NotContains(t, r.Description(), "unknown")
		})
	}
}

func TestRuleInvalid(t *testing.T) {
	require.Equal(t, "rule-unknown(0)", ruleInvalid.String())
	require.Equal(t, "FLU?(0)", ruleInvalid.Code())
	require.Equal(t, "unknown-rule(99)", Rule(99).Description())
}
