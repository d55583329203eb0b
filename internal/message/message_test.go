package message

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sirkon/fluentify/internal/argkind"
	"github.com/sirkon/fluentify/internal/constraint"
)

// stringVars types listed identifiers as string and knows nothing else.
type stringVars map[string]bool

func (stringVars) Universe(*ast.Ident) bool                   { return true }
func (stringVars) Constant(ast.Expr) (bool, bool)             { return false, false }
func (stringVars) IsConversion(*ast.CallExpr) bool            { return false }
func (stringVars) Callee(*ast.CallExpr) (string, string, bool) { return "", "", false }
func (stringVars) ImportPath(*ast.Ident) (string, bool)       { return "", false }

func (s stringVars) Type(expr ast.Expr) types.Type {
	id, ok := expr.(*ast.Ident)
	if ok && s[id.Name] {
		return types.Typ[types.String]
	}

	return nil
}

func trailing(t *testing.T, r argkind.Resolver, src string) []argkind.Argument {
	t.Helper()

	call, err := parser.ParseExpr("f(" + src + ")")
	require.NoError(t, err)
	return argkind.List(call.(*ast.CallExpr).Args, r)
}

func render(res Result) []string {
	out := make([]string, len(res.Args))
	for i, arg := range res.Args {
		out[i] = constraint.Format(constraint.Clone(arg))
	}

	return out
}

func TestConvert(t *testing.T) {
	r := stringVars{"name": true, "other": true}

	tests := []struct {
		name      string
		args      string
		fmtName   string
		want      []string
		converted bool
		consumed  int
		needsFmt  bool
	}{
		{
			name:      "two placeholders",
			args:      `"bad {0} at {1}", name, index`,
			want:      []string{`"bad " + name + " at " + fmt.Sprint(index)`},
			converted: true,
			consumed:  3,
			needsFmt:  true,
		},
		{
			name:      "leftover arguments are kept",
			args:      `"value {0}", x, extra, more`,
			want:      []string{`"value " + fmt.Sprint(x)`, "extra", "more"},
			converted: true,
			consumed:  2,
			needsFmt:  true,
		},
		{
			name:      "escaped braces",
			args:      `"{{{0}}}", name`,
			want:      []string{`"{" + name + "}"`},
			converted: true,
			consumed:  2,
		},
		{
			name:      "repeated pure argument",
			args:      `"{0} and {0}", x`,
			want:      []string{`fmt.Sprint(x) + " and " + fmt.Sprint(x)`},
			converted: true,
			consumed:  2,
			needsFmt:  true,
		},
		{
			name:      "reordered pure arguments",
			args:      `"{1} before {0}", x, y`,
			want:      []string{`fmt.Sprint(y) + " before " + fmt.Sprint(x)`},
			converted: true,
			consumed:  3,
			needsFmt:  true,
		},
		{
			name:      "renamed fmt import",
			args:      `"got {0}", x`,
			fmtName:   "stdfmt",
			want:      []string{`"got " + stdfmt.Sprint(x)`},
			converted: true,
			consumed:  2,
			needsFmt:  true,
		},
		{
			name:      "raw string literal",
			args:      "`path {0}`, name",
			want:      []string{`"path " + name`},
			converted: true,
			consumed:  2,
		},
		{
			name:      "quotes survive",
			args:      `"say \"{0}\"", name`,
			want:      []string{`"say \"" + name + "\""`},
			converted: true,
			consumed:  2,
		},
		{
			name: "plain identifier message",
			args: `msg, x`,
			want: []string{"msg", "x"},
		},
		{
			name: "concatenation message",
			args: `"a" + b, x`,
			want: []string{`"a" + b`, "x"},
		},
		{
			name: "no placeholders",
			args: `"nothing here", x`,
			want: []string{`"nothing here"`, "x"},
		},
		{
			name: "no arguments",
			args: `"value {0}"`,
			want: []string{`"value {0}"`},
		},
		{
			name: "index out of range",
			args: `"value {1}", x`,
			want: []string{`"value {1}"`, "x"},
		},
		{
			name: "format specifier",
			args: `"value {0:N2}", x`,
			want: []string{`"value {0:N2}"`, "x"},
		},
		{
			name: "alignment",
			args: `"value {0,5}", x`,
			want: []string{`"value {0,5}"`, "x"},
		},
		{
			name: "unbalanced",
			args: `"value {0", x`,
			want: []string{`"value {0"`, "x"},
		},
		{
			name: "impure argument used twice",
			args: `"{0} {0}", next()`,
			want: []string{`"{0} {0}"`, "next()"},
		},
		{
			name: "impure arguments reordered",
			args: `"{1} {0}", a(), b()`,
			want: []string{`"{1} {0}"`, "a()", "b()"},
		},
		{
			name: "impure argument skipped",
			args: `"{1}", a(), b`,
			want: []string{`"{1}"`, "a()", "b"},
		},
		{
			name:      "impure arguments in order",
			args:      `"{0} then {1}", a(), b()`,
			want:      []string{`fmt.Sprint(a()) + " then " + fmt.Sprint(b())`},
			converted: true,
			consumed:  3,
			needsFmt:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Convert(trailing(t, r, tt.args), Env{Resolver: r, FmtName: tt.fmtName})

			require.Equal(t, tt.want, render(res))
			require.Equal(t, tt.converted, res.Converted)
			require.Equal(t, tt.consumed, res.Consumed)
			require.Equal(t, tt.needsFmt, res.NeedsFmt)
		})
	}
}

func TestConvertEmpty(t *testing.T) {
	res := Convert(nil, Env{})
	require.False(t, res.Converted)
	require.Empty(t, res.Args)
}

func TestParse(t *testing.T) {
	segs, err := Parse("a {0} b {{c}} {12}")
	require.NoError(t, err)
	require.Equal(t, []Segment{
		{Text: "a ", Slot: -1},
		{Slot: 0},
		{Text: " b {c} ", Slot: -1},
		{Slot: 12},
	}, segs)

	for _, bad := range []string{"{", "}", "{x}", "{-1}", "{0:x}", "{}", "a } b"} {
		t.Run(bad, func(t *testing.T) {
			_, err := Parse(bad)
			require.Error(t, err)
		})
	}
}

// eval computes the runtime value of a converted message given values of identifiers.
func eval(t *testing.T, expr ast.Expr, values map[string]any) string {
	t.Helper()

	switch x := expr.(type) {
	case *ast.BasicLit:
		require.Equal(t, token.STRING, x.Kind)
		s, err := strconv.Unquote(x.Value)
		require.NoError(t, err)
		return s
	case *ast.ParenExpr:
		return eval(t, x.X, values)
	case *ast.BinaryExpr:
		require.Equal(t, token.ADD, x.Op)
		return eval(t, x.X, values) + eval(t, x.Y, values)
	case *ast.Ident:
		return values[x.Name].(string)
	case *ast.CallExpr:
		require.Equal(t, "fmt.Sprint", constraint.Format(x.Fun))
		require.Len(t, x.Args, 1)
		return fmt.Sprint(values[x.Args[0].(*ast.Ident).Name])
	default:
		t.Fatalf("unexpected %T in converted message", expr)
		return ""
	}
}

func TestConvertRoundTrip(t *testing.T) {
	type point struct{ X, Y int }

	names := []string{"s0", "v1", "v2", "s3"}
	values := map[string]any{
		"s0": "alpha",
		"v1": 42,
		"v2": point{X: 1, Y: -2},
		"s3": "{0} literal braces",
	}
	r := stringVars{"s0": true, "s3": true}

	formats := []string{
		"{0}",
		"{1}{2}",
		"value {0} vs {1}",
		"{{{3}}} and {2}",
		"{2} {1} {0} {1}",
		"prefix {0}",
		"{0} suffix",
		"[{3}] {{escaped}} [{2}]",
		"multi\nline {1}\t{0}",
		"юникод {0} ✓ {3}",
	}

	for _, format := range formats {
		t.Run(format, func(t *testing.T) {
			args := trailing(t, r, strconv.Quote(format)+", "+strings.Join(names, ", "))
			res := Convert(args, Env{Resolver: r})
			require.True(t, res.Converted)

			segs, err := Parse(format)
			require.NoError(t, err)
			ordered := make([]any, len(names))
			for i, name := range names {
				ordered[i] = values[name]
			}

			require.Equal(t, Render(segs, ordered...), eval(t, res.Args[0], values))
			require.Len(t, res.Args, 1+len(names)-(res.Consumed-1))
		})
	}
}
