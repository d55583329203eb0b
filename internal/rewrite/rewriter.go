package rewrite

import (
	"fmt"
	"go/ast"
	"go/token"
	"maps"

	"github.com/sirkon/fluentify/internal/argkind"
	"github.com/sirkon/fluentify/internal/constraint"
	"github.com/sirkon/fluentify/internal/fluentrules"
	"github.com/sirkon/fluentify/internal/message"
	"github.com/sirkon/fluentify/internal/recipes"
)

// Context is what the rewriter knows about the file of the call.
type Context struct {
	// Resolver answers type questions, syntax only guesses are used when it is nil.
	Resolver argkind.Resolver

	// FmtName is the name package fmt is visible under in the file, "fmt" when empty.
	FmtName string

	// Fset and Comments are optional. They let the outcome report the comment group
	// leading the call.
	Fset     *token.FileSet
	Comments []*ast.CommentGroup
}

func (ctx Context) resolver() argkind.Resolver {
	if ctx.Resolver == nil {
		return argkind.Syntax()
	}

	return ctx.Resolver
}

// Outcome of a rewrite attempt.
type Outcome struct {
	State State

	// Path lists every state the call went through, the last one is State.
	Path []State

	Key  recipes.Key
	Rule fluentrules.Rule

	// Replacement is the new call, nil unless the state is StateReconstructed.
	Replacement ast.Expr

	// Consumed is the number of leading arguments taken by the recipe.
	Consumed int

	// Message is the number of trailing arguments replaced by the converted message.
	Message int

	// NeedsFmt is set when the replacement refers to package fmt.
	NeedsFmt bool

	// Leading is the comment group ending on the line right above the call, if any.
	Leading *ast.CommentGroup
}

// Changed reports whether the call was rewritten.
func (o Outcome) Changed() bool {
	return o.State == StateReconstructed
}

func (o *Outcome) enter(s State) {
	o.State = s
	o.Path = append(o.Path, s)
}

func (o *Outcome) unchanged() Outcome {
	o.enter(StateUnchanged)
	o.Replacement = nil
	o.NeedsFmt = false
	return *o
}

// Rewriter rewrites classic assertion calls. It is immutable and safe for concurrent use.
type Rewriter struct {
	table     *recipes.Table
	receivers map[string]recipes.Dialect
	packages  map[string]recipes.Dialect
	vocab     constraint.Vocabulary
}

// Option configures a Rewriter.
type Option func(rw *Rewriter)

// WithTable sets the recipe table, recipes.Default() is used otherwise.
func WithTable(t *recipes.Table) Option {
	return func(rw *Rewriter) {
		rw.table = t
	}
}

// WithReceivers sets receiver names recognized as assertion families. It replaces the
// predefined set, merge with recipes.Receivers() to extend it.
func WithReceivers(receivers map[string]recipes.Dialect) Option {
	return func(rw *Rewriter) {
		rw.receivers = maps.Clone(receivers)
	}
}

// WithPackages sets import paths whose package level functions are assertions.
func WithPackages(packages map[string]recipes.Dialect) Option {
	return func(rw *Rewriter) {
		rw.packages = maps.Clone(packages)
	}
}

// WithVocabulary sets the names of the target assertion API.
func WithVocabulary(v constraint.Vocabulary) Option {
	return func(rw *Rewriter) {
		rw.vocab = v
	}
}

// New creates a rewriter. The vocabulary is trusted, validate it before when it comes
// from the user.
func New(opts ...Option) *Rewriter {
	rw := &Rewriter{
		table:     recipes.Default(),
		receivers: recipes.Receivers(),
		packages:  map[string]recipes.Dialect{},
		vocab:     constraint.DefaultVocabulary(),
	}
	for _, opt := range opts {
		opt(rw)
	}

	return rw
}

// Table returns the recipe table in use.
func (rw *Rewriter) Table() *recipes.Table {
	return rw.table
}

// Vocabulary returns the target vocabulary.
func (rw *Rewriter) Vocabulary() constraint.Vocabulary {
	return rw.vocab
}

// Match recognizes a classic assertion call and returns its view.
func (rw *Rewriter) Match(call *ast.CallExpr, ctx Context) (*recipes.Call, bool) {
	r := ctx.resolver()

	fun := ast.Unparen(call.Fun)
	var typeArgs []ast.Expr
	switch f := fun.(type) {
	case *ast.IndexExpr:
		fun, typeArgs = f.X, []ast.Expr{f.Index}
	case *ast.IndexListExpr:
		fun, typeArgs = f.X, f.Indices
	}

	sel, ok := fun.(*ast.SelectorExpr)
	if !ok {
		return nil, false
	}
	d, ok := rw.dialectOf(sel.X, r)
	if !ok {
		return nil, false
	}

	return &recipes.Call{
		Dialect:  d,
		Method:   sel.Sel.Name,
		Args:     argkind.List(call.Args, r),
		TypeArgs: typeArgs,
		Pos:      call.Pos(),
		Resolver: r,
	}, true
}

// dialectOf maps the receiver of a selector callee to a dialect. Package qualifiers
// are looked up by import path first, then the terminal identifier is checked against
// receiver names.
func (rw *Rewriter) dialectOf(recv ast.Expr, r argkind.Resolver) (recipes.Dialect, bool) {
	var name string
	switch x := ast.Unparen(recv).(type) {
	case *ast.Ident:
		if path, ok := r.ImportPath(x); ok {
			if d, ok := rw.packages[path]; ok {
				return d, true
			}
		}
		name = x.Name
	case *ast.SelectorExpr:
		name = x.Sel.Name
	default:
		return 0, false
	}

	d, ok := rw.receivers[name]
	return d, ok
}

// Rewrite runs the call through the pipeline.
func (rw *Rewriter) Rewrite(call *ast.CallExpr, ctx Context) Outcome {
	var o Outcome
	o.enter(StateScanning)

	if call.Ellipsis.IsValid() {
		return o.unchanged()
	}
	c, ok := rw.Match(call, ctx)
	if !ok {
		return o.unchanged()
	}
	o.enter(StateClassified)

	entry, ok := rw.table.Lookup(c.Dialect, c.Method)
	if !ok {
		o.enter(StateRecipeNotFound)
		return o.unchanged()
	}
	o.enter(StateRecipeFound)
	o.Key = entry.Key
	o.Rule = entry.Rule

	if len(c.Args) < entry.Arity {
		return o.unchanged()
	}
	// Only type membership recipes know what to do with explicit type arguments.
	if len(c.TypeArgs) > 0 && entry.Rule != fluentrules.ClassicTypeMembership() {
		return o.unchanged()
	}

	res, ok := entry.Recipe(c)
	if !ok {
		return o.unchanged()
	}
	checkResult(entry, c, res)
	o.enter(StateBuilt)
	o.Consumed = res.Consumed

	msg := message.Convert(c.Args[res.Consumed:], message.Env{
		Resolver: c.Resolver,
		FmtName:  ctx.FmtName,
	})
	if res.Passthrough && !msg.Converted {
		return o.unchanged()
	}
	if msg.Converted {
		o.Message = msg.Consumed
	}
	o.NeedsFmt = msg.NeedsFmt

	o.Replacement = rw.reconstruct(call, res, msg)
	o.Leading = leading(call, ctx)
	o.enter(StateReconstructed)
	return o
}

// checkResult panics on results violating the recipe contract.
func checkResult(entry recipes.Entry, c *recipes.Call, res recipes.Result) {
	if res.Consumed < entry.Arity || res.Consumed > len(c.Args) {
		panic(fmt.Errorf(
			"recipe %s consumed %d arguments out of %d, at least %d expected",
			entry.Key, res.Consumed, len(c.Args), entry.Arity,
		))
	}
	if res.Passthrough {
		return
	}

	if res.Subject == nil {
		panic(fmt.Errorf("recipe %s produced no subject", entry.Key))
	}
	if err := res.Constraint.Validate(); err != nil {
		panic(fmt.Errorf("recipe %s produced invalid constraint: %w", entry.Key, err))
	}
}

// reconstruct emits That(subject, constraint, message...) or, for message-only
// assertions, the original callee with the converted message.
func (rw *Rewriter) reconstruct(call *ast.CallExpr, res recipes.Result, msg message.Result) ast.Expr {
	var (
		fun  ast.Expr
		args []ast.Expr
	)
	if res.Passthrough {
		fun = constraint.Clone(call.Fun)
	} else {
		fun = rw.vocab.ThatExpr()
		args = append(args, constraint.Clone(res.Subject), constraint.Render(res.Constraint, rw.vocab))
	}

	for _, arg := range msg.Args {
		args = append(args, constraint.Clone(arg))
	}

	return &ast.CallExpr{Fun: fun, Args: args}
}

// leading finds the comment group ending on the line above the call. The group must be
// indented like the call, a trailing comment of the previous statement is not leading.
func leading(call *ast.CallExpr, ctx Context) *ast.CommentGroup {
	if ctx.Fset == nil {
		return nil
	}

	pos := ctx.Fset.Position(call.Pos())
	for _, cg := range ctx.Comments {
		if cg.End() >= call.Pos() {
			break
		}
		if ctx.Fset.Position(cg.End()).Line == pos.Line-1 && ctx.Fset.Position(cg.Pos()).Column == pos.Column {
			return cg
		}
	}

	return nil
}
