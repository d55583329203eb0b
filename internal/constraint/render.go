package constraint

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"strings"
)

// Vocabulary names the identifiers of the target assertion API. Every name is a dotted
// path of identifiers, like "Assert.That" or "nunit.Is".
type Vocabulary struct {
	That string `yaml:"that"`
	Is   string `yaml:"is"`
	Has  string `yaml:"has"`
	Does string `yaml:"does"`
}

// DefaultVocabulary returns the identifiers of the default target API.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		That: "Assert.That",
		Is:   "Is",
		Has:  "Has",
		Does: "Does",
	}
}

// Validate checks all names are dotted identifier paths.
func (v Vocabulary) Validate() error {
	names := []struct {
		field string
		value string
	}{
		{"that", v.That},
		{"is", v.Is},
		{"has", v.Has},
		{"does", v.Does},
	}

	for _, n := range names {
		if n.value == "" {
			return fmt.Errorf("%s: missing name", n.field)
		}
		for _, part := range strings.Split(n.value, ".") {
			if !token.IsIdentifier(part) {
				return fmt.Errorf("%s: %q is not an identifier path", n.field, n.value)
			}
		}
	}

	return nil
}

// ThatExpr returns the callee of the target assertion.
func (v Vocabulary) ThatExpr() ast.Expr {
	return path(v.That)
}

// RootExpr returns the expression a chain with the given root starts with.
func (v Vocabulary) RootExpr(root Root) ast.Expr {
	switch root {
	case RootIs:
		return path(v.Is)
	case RootHas:
		return path(v.Has)
	case RootDoes:
		return path(v.Does)
	default:
		panic(fmt.Errorf("render constraint: invalid root %s", root))
	}
}

func path(name string) ast.Expr {
	parts := strings.Split(name, ".")
	var res ast.Expr = ast.NewIdent(parts[0])
	for _, part := range parts[1:] {
		res = &ast.SelectorExpr{X: res, Sel: ast.NewIdent(part)}
	}

	return res
}

// Render serializes e into a selector and call chain. Operand expressions are copied,
// the result shares no nodes with the source tree.
func Render(e Expression, v Vocabulary) ast.Expr {
	res := v.RootExpr(e.Root)
	for _, s := range e.Steps {
		var fn ast.Expr = &ast.SelectorExpr{X: res, Sel: ast.NewIdent(s.Name)}
		switch len(s.TypeArgs) {
		case 0:
		case 1:
			fn = &ast.IndexExpr{X: fn, Index: Clone(s.TypeArgs[0])}
		default:
			indices := make([]ast.Expr, len(s.TypeArgs))
			for i, arg := range s.TypeArgs {
				indices[i] = Clone(arg)
			}
			fn = &ast.IndexListExpr{X: fn, Indices: indices}
		}

		if catalogue[s.Name].property {
			res = fn
			continue
		}

		args := make([]ast.Expr, 0, len(s.Operands))
		for _, o := range s.Operands {
			switch x := o.(type) {
			case Value:
				args = append(args, Clone(x.Expr))
			case Nested:
				args = append(args, Render(x.Expression, v))
			default:
				panic(fmt.Errorf("render constraint: unsupported operand %T", o))
			}
		}
		res = &ast.CallExpr{Fun: fn, Args: args}
	}

	return res
}

// Source renders e into Go source text.
func (e Expression) Source(v Vocabulary) string {
	return Format(Render(e, v))
}

// Format prints a node built outside of any file set.
func Format(node ast.Node) string {
	var buf bytes.Buffer
	if err := format.Node(&buf, token.NewFileSet(), node); err != nil {
		panic(fmt.Errorf("format synthesized node: %w", err))
	}

	return buf.String()
}
