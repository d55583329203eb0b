// Package message converts trailing diagnostic message arguments of classic assertions.
//
// A classic message is a positional format followed by its arguments:
//
//	Assert.Fail("bad {0} at {1}", name, index)
//
// and is converted into a string concatenation evaluated in place:
//
//	Assert.Fail("bad " + fmt.Sprint(name) + " at " + fmt.Sprint(index))
//
// Arguments with the string type are embedded as they are.
package message

import (
	"go/ast"
	"go/token"
	"strconv"

	"github.com/sirkon/fluentify/internal/argkind"
)

// Env is what the converter needs to know about the file being rewritten.
type Env struct {
	Resolver argkind.Resolver

	// FmtName is the name package fmt is visible under, "fmt" when empty.
	FmtName string
}

// Result of a conversion.
type Result struct {
	// Args are the trailing arguments to emit.
	Args []ast.Expr

	// Converted is true when the message was rewritten.
	Converted bool

	// Consumed is the number of original trailing arguments the new message replaces.
	Consumed int

	// NeedsFmt is true when the new message refers to package fmt.
	NeedsFmt bool
}

// Convert converts trailing arguments. Anything it cannot convert without changing the
// rendered text or the evaluation of arguments passes through unchanged.
func Convert(trailing []argkind.Argument, env Env) Result {
	if env.FmtName == "" {
		env.FmtName = "fmt"
	}

	res, ok := convert(trailing, env)
	if !ok {
		return passthrough(trailing)
	}

	return res
}

func convert(trailing []argkind.Argument, env Env) (Result, bool) {
	if len(trailing) < 2 || trailing[0].Kind != argkind.KindStringLiteral {
		return Result{}, false
	}

	lit, ok := ast.Unparen(trailing[0].Expr).(*ast.BasicLit)
	if !ok {
		return Result{}, false
	}
	format, err := strconv.Unquote(lit.Value)
	if err != nil {
		return Result{}, false
	}
	segs, err := Parse(format)
	if err != nil {
		return Result{}, false
	}

	args := trailing[1:]
	refs := make([]int, len(args))
	highest := -1
	for _, s := range segs {
		if !s.IsSlot() {
			continue
		}
		if s.Slot >= len(args) {
			return Result{}, false
		}
		refs[s.Slot]++
		highest = max(highest, s.Slot)
	}
	if highest < 0 || !evaluationPreserved(segs, args[:highest+1], refs) {
		return Result{}, false
	}

	msg, needsFmt := concat(segs, args, env)
	res := Result{
		Args:      []ast.Expr{msg},
		Converted: true,
		Consumed:  highest + 2,
		NeedsFmt:  needsFmt,
	}
	for _, arg := range args[highest+1:] {
		res.Args = append(res.Args, arg.Expr)
	}

	return res, true
}

// evaluationPreserved checks the concatenation evaluates the arguments with side
// effects exactly once and in the original order.
func evaluationPreserved(segs []Segment, used []argkind.Argument, refs []int) bool {
	for i, arg := range used {
		if !argkind.Pure(arg.Expr) && refs[i] != 1 {
			return false
		}
	}

	prev := -1
	for _, s := range segs {
		if !s.IsSlot() || argkind.Pure(used[s.Slot].Expr) {
			continue
		}
		if s.Slot < prev {
			return false
		}
		prev = s.Slot
	}

	return true
}

func concat(segs []Segment, args []argkind.Argument, env Env) (ast.Expr, bool) {
	var (
		res      ast.Expr
		needsFmt bool
	)
	for _, s := range segs {
		var part ast.Expr
		switch {
		case !s.IsSlot():
			part = &ast.BasicLit{Kind: token.STRING, Value: strconv.Quote(s.Text)}
		case argkind.IsString(env.Resolver, args[s.Slot].Expr):
			part = args[s.Slot].Expr
			if _, ok := ast.Unparen(part).(*ast.BinaryExpr); ok {
				part = &ast.ParenExpr{X: part}
			}
		default:
			part = &ast.CallExpr{
				Fun: &ast.SelectorExpr{
					X:   ast.NewIdent(env.FmtName),
					Sel: ast.NewIdent("Sprint"),
				},
				Args: []ast.Expr{args[s.Slot].Expr},
			}
			needsFmt = true
		}

		if res == nil {
			res = part
			continue
		}
		res = &ast.BinaryExpr{X: res, Op: token.ADD, Y: part}
	}

	return res, needsFmt
}

func passthrough(trailing []argkind.Argument) Result {
	res := Result{Args: make([]ast.Expr, len(trailing))}
	for i, arg := range trailing {
		res.Args[i] = arg.Expr
	}

	return res
}
