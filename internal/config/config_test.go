package config

import (
	"go/ast"
	"go/parser"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sirkon/fluentify/internal/constraint"
	"github.com/sirkon/fluentify/internal/recipes"
	"github.com/sirkon/fluentify/internal/rewrite"
)

const sample = `receivers:
  Verify: classic
  Strings: string
packages:
  github.com/acme/collassert: collection
target:
  that: Expect.That
disable:
  - classic.AreSame
tests-only: true
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	require.Equal(t, map[string]recipes.Dialect{
		"Verify":  recipes.DialectClassic,
		"Strings": recipes.DialectString,
	}, cfg.Receivers)
	require.Equal(t, map[string]recipes.Dialect{
		"github.com/acme/collassert": recipes.DialectCollection,
	}, cfg.Packages)
	require.Equal(t, []recipes.Key{{Dialect: recipes.DialectClassic, Method: "AreSame"}}, cfg.Disable)
	require.True(t, cfg.TestsOnly)

	v, err := cfg.Vocabulary()
	require.NoError(t, err)
	require.Equal(t, constraint.Vocabulary{That: "Expect.That", Is: "Is", Has: "Has", Does: "Does"}, v)

	recv := cfg.ReceiverSet()
	require.Equal(t, recipes.DialectClassic, recv["Assert"])
	require.Equal(t, recipes.DialectString, recv["Strings"])

	table, err := cfg.Table()
	require.NoError(t, err)
	_, ok := table.Lookup(recipes.DialectClassic, "AreSame")
	require.False(t, ok)
	require.Equal(t, recipes.Default().Len()-1, table.Len())

	require.True(t, cfg.Includes("value_test.go"))
	require.False(t, cfg.Includes("value.go"))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown dialect", "receivers:\n  Verify: fancy\n"},
		{"unknown field", "receiver:\n  Verify: classic\n"},
		{"malformed key", "disable:\n  - AreEqual\n"},
		{"unknown recipe", "disable:\n  - classic.AreAlmostEqual\n"},
		{"bad vocabulary", "target:\n  is: 'Is Not'\n"},
		{"not a mapping", "- classic\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
		})
	}
}

func TestDefaults(t *testing.T) {
	for _, data := range []string{"", "# nothing\n"} {
		cfg, err := Parse([]byte(data))
		require.NoError(t, err)
		require.True(t, cfg.Includes("main.go"))

		v, err := cfg.Vocabulary()
		require.NoError(t, err)
		require.Equal(t, constraint.DefaultVocabulary(), v)

		table, err := cfg.Table()
		require.NoError(t, err)
		require.Same(t, recipes.Default(), table)
	}

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, recipes.Receivers(), cfg.ReceiverSet())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fluentify.yaml")
	require.NoError(t, os.WriteFile(path, []byte("replace-receivers: true\nreceivers:\n  Verify: classic\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, map[string]recipes.Dialect{"Verify": recipes.DialectClassic}, cfg.ReceiverSet())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRewriter(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)
	rw, err := cfg.Rewriter()
	require.NoError(t, err)

	call := func(src string) *ast.CallExpr {
		x, err := parser.ParseExpr(src)
		require.NoError(t, err)
		return x.(*ast.CallExpr)
	}

	out := rw.Rewrite(call("Verify.AreEqual(42, x)"), rewrite.Context{})
	require.True(t, out.Changed())
	require.Equal(t, "Expect.That(x, Is.EqualTo(42))", constraint.Format(out.Replacement))

	out = rw.Rewrite(call(`Strings.EndsWith("suf", s)`), rewrite.Context{})
	require.True(t, out.Changed())

	require.False(t, rw.Rewrite(call("Assert.AreSame(a, b)"), rewrite.Context{}).Changed())
}
