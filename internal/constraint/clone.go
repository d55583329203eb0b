package constraint

import (
	"go/ast"
	"go/token"
	"reflect"

	"github.com/go-toolsmith/astcopy"
)

// Clone returns a deep copy of expr with all positions zeroed, so that the copy can be
// printed detached from the source it came from.
func Clone(expr ast.Expr) ast.Expr {
	if expr == nil {
		return nil
	}

	cp := astcopy.Expr(expr)
	StripPos(cp)
	return cp
}

var posType = reflect.TypeFor[token.Pos]()

// StripPos zeroes every token.Pos field of the tree rooted at n in place.
func StripPos(n ast.Node) {
	ast.Inspect(n, func(n ast.Node) bool {
		if n == nil {
			return false
		}

		v := reflect.ValueOf(n)
		if v.Kind() != reflect.Pointer || v.IsNil() {
			return true
		}
		v = v.Elem()
		if v.Kind() != reflect.Struct {
			return true
		}

		for i := range v.NumField() {
			f := v.Field(i)
			if f.Type() == posType && f.CanSet() {
				f.SetInt(0)
			}
		}
		return true
	})
}
