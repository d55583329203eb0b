package fileedit

import (
	"context"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sirkon/fluentify/internal/fluentrules"
	"github.com/sirkon/fluentify/internal/recipes"
	"github.com/sirkon/fluentify/internal/report"
	"github.com/sirkon/fluentify/internal/rewrite"
)

const stubs = `
type assert struct{}

func (assert) AreEqual(expected, actual any, args ...any) {}
func (assert) Contains(expected, actual any, args ...any) {}
func (assert) IsTrue(cond bool, args ...any)              {}
func (assert) Fail(args ...any)                           {}

var Assert assert

type List struct{ Count int }

func check(f func() bool) bool { return f() }
`

const values = `package probe

import "testing"
` + stubs + `
func TestValues(t *testing.T) {
	var (
		x    int
		s    string
		list List
		name = "n"
	)

	// the answer
	Assert.AreEqual(42, x)
	Assert.AreEqual(list.Count, 3)
	Assert.IsTrue(x > 0, "positive {0}", name)
	Assert.Contains("b", s)
	Assert.Fail("bad {0} at {1}", x, 1)
	Assert.Fail("kept")
}
`

func imports(t *testing.T, src []byte) []string {
	t.Helper()

	file, err := parser.ParseFile(token.NewFileSet(), "probe_test.go", src, parser.ImportsOnly)
	require.NoError(t, err)

	var res []string
	for _, imp := range file.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		require.NoError(t, err)
		if imp.Name != nil {
			path = imp.Name.Name + " " + path
		}
		res = append(res, path)
	}
	return res
}

func TestRewriteSource(t *testing.T) {
	var rep report.Reporter
	res, err := RewriteSource(context.Background(), "probe_test.go", []byte(values), rewrite.New(), WithReporter(&rep))
	require.NoError(t, err)
	require.True(t, res.Changed())

	got := string(res.Source)
	for _, line := range []string{
		"\t// the answer\n\tAssert.That(x, Is.EqualTo(42))\n",
		"\tAssert.That(list, Has.Count.EqualTo(3))\n",
		"\tAssert.That(x, Is.GreaterThan(0), \"positive \"+name)\n",
		"\tAssert.That(s, Does.Contain(\"b\"))\n",
		"\tAssert.Fail(\"bad \" + fmt.Sprint(x) + \" at \" + fmt.Sprint(1))\n",
		"\tAssert.Fail(\"kept\")\n",
	} {
		require.Contains(t, got, line)
	}
	require.Equal(t, []string{"fmt", "testing"}, imports(t, res.Source))

	require.Len(t, res.Changes, 5)
	first := res.Changes[0]
	require.Equal(t, "Assert.AreEqual(42, x)", first.Before)
	require.Equal(t, "Assert.That(x, Is.EqualTo(42))", first.After)
	require.Equal(t, fluentrules.ClassicEquality(), first.Rule)
	require.Equal(t, recipes.Key{Dialect: recipes.DialectClassic, Method: "AreEqual"}, first.Key)
	require.Equal(t, "probe_test.go", first.Pos.Filename)
	require.Equal(t, "the answer", first.Comment)
	require.Empty(t, res.Changes[1].Comment)
	require.Equal(t, strings.Count(values[:strings.Index(values, first.Before)], "\n")+1, first.Pos.Line)

	require.Equal(t, 5, rep.Count(report.PhaseRewrite))
	require.Equal(t, 1, rep.Count(report.PhaseScan), "kept Fail must be reported")

	again, err := RewriteSource(context.Background(), "probe_test.go", res.Source, rewrite.New())
	require.NoError(t, err)
	require.False(t, again.Changed())
	require.Equal(t, string(res.Source), string(again.Source))
}

func TestRewriteSourceFmtAlias(t *testing.T) {
	src := `package probe

import (
	format "fmt"
	"testing"
)
` + stubs + `
var _ = format.Sprint

func TestValues(t *testing.T) {
	var x int
	Assert.AreEqual(1, x, "{0}", x)
}
`

	res, err := RewriteSource(context.Background(), "probe_test.go", []byte(src), rewrite.New())
	require.NoError(t, err)
	require.Contains(t, string(res.Source), `Assert.That(x, Is.EqualTo(1), format.Sprint(x))`)
	require.Equal(t, []string{"format fmt", "testing"}, imports(t, res.Source))
}

func TestRewriteSourceNested(t *testing.T) {
	src := `package probe
` + stubs + `
func probe(x int) {
	Assert.IsTrue(check(func() bool { Assert.AreEqual(1, x); return true }))
}
`

	var rep report.Reporter
	res, err := RewriteSource(context.Background(), "probe.go", []byte(src), rewrite.New(), WithReporter(&rep))
	require.NoError(t, err)
	require.Len(t, res.Changes, 1)
	require.Equal(t, fluentrules.ClassicCondition(), res.Changes[0].Rule)
	require.Contains(t, string(res.Source), "Assert.AreEqual(1, x)")
	require.Equal(t, 1, rep.Count(report.PhaseApply))

	// The inner call is rewritten by the next run.
	res, err = RewriteSource(context.Background(), "probe.go", res.Source, rewrite.New())
	require.NoError(t, err)
	require.Len(t, res.Changes, 1)
	require.Equal(t, fluentrules.ClassicEquality(), res.Changes[0].Rule)
	require.Contains(t, string(res.Source), "Assert.That(x, Is.EqualTo(1))")

	res, err = RewriteSource(context.Background(), "probe.go", res.Source, rewrite.New())
	require.NoError(t, err)
	require.False(t, res.Changed())
}

func TestRewriteSourceKeepsInnerComments(t *testing.T) {
	src := `package probe
` + stubs + `
func probe(x int) {
	Assert.AreEqual(
		42, // the answer
		x,
	)
}
`

	var rep report.Reporter
	res, err := RewriteSource(context.Background(), "probe.go", []byte(src), rewrite.New(), WithReporter(&rep))
	require.NoError(t, err)
	require.False(t, res.Changed())
	require.Equal(t, src, string(res.Source))
	require.Equal(t, 1, rep.Count(report.PhaseApply))
}

func TestRewriteSourceErrors(t *testing.T) {
	_, err := RewriteSource(context.Background(), "broken.go", []byte("package probe\nfunc {"), rewrite.New())
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = RewriteSource(ctx, "probe_test.go", []byte(values), rewrite.New())
	require.ErrorIs(t, err, context.Canceled)
}

func TestRewriteSourceUntyped(t *testing.T) {
	// Assert comes from another file of the package: the checker fails, syntax
	// guesses still work.
	src := `package probe

func probe(x int) {
	Assert.AreEqual(42,   x)
}
`

	res, err := RewriteSource(context.Background(), "probe.go", []byte(src), rewrite.New())
	require.NoError(t, err)
	require.Contains(t, string(res.Source), "\tAssert.That(x, Is.EqualTo(42))\n")
}

func TestSplice(t *testing.T) {
	src := []byte("0123456789")

	got, err := splice(src, []edit{
		{start: 1, end: 3, text: "ab"},
		{start: 5, end: 9, text: "X"},
		{start: 0, end: 0, text: ">"},
	})
	require.NoError(t, err)
	require.Equal(t, ">0ab34X9", string(got))
	require.Equal(t, "0123456789", string(src))

	_, err = splice(src, []edit{
		{start: 1, end: 5, text: "a"},
		{start: 4, end: 6, text: "b"},
	})
	require.Error(t, err)

	_, err = splice(src, []edit{{start: 8, end: 12, text: "a"}})
	require.Error(t, err)
}

func TestFmtName(t *testing.T) {
	tests := []struct {
		name     string
		imports  string
		want     string
		imported bool
	}{
		{"plain", `import "fmt"`, "fmt", true},
		{"alias", `import f "fmt"`, "f", true},
		{"blank", `import _ "fmt"`, "fmt", false},
		{"dot", `import . "fmt"`, "fmt", false},
		{"missing", `import "strings"`, "fmt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := parser.ParseFile(token.NewFileSet(), "probe.go", "package probe\n"+tt.imports+"\n", parser.ImportsOnly)
			require.NoError(t, err)

			name, ok := FmtName(file)
			require.Equal(t, tt.want, name)
			require.Equal(t, tt.imported, ok)
		})
	}
}
