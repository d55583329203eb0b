// Package fileedit rewrites classic assertions of a whole Go source file.
//
// All candidates are computed against the original tree, nested candidates under a
// rewritten call are dropped and the remaining replacements are spliced into the
// source in one pass. The result is gofmt-ed.
package fileedit

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"go/ast"
	"go/format"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/sirkon/fluentify/internal/argkind"
	"github.com/sirkon/fluentify/internal/constraint"
	"github.com/sirkon/fluentify/internal/fluentrules"
	"github.com/sirkon/fluentify/internal/recipes"
	"github.com/sirkon/fluentify/internal/report"
	"github.com/sirkon/fluentify/internal/rewrite"
	"github.com/sirkon/fluentify/internal/spans"
)

// Change is a single rewritten call.
type Change struct {
	Pos    token.Position
	Key    recipes.Key
	Rule   fluentrules.Rule
	Before string
	After  string

	// Comment is the text of the comment right above the call. It stays in place.
	Comment string
}

// Result of a file rewrite.
type Result struct {
	// Source is the new file content. It equals the input when nothing changed.
	Source []byte

	Changes []Change
}

// Changed reports whether anything was rewritten.
func (r *Result) Changed() bool {
	return len(r.Changes) > 0
}

// Option of RewriteSource.
type Option func(e *editor)

// WithReporter sends records about candidates to the reporter.
func WithReporter(r *report.Reporter) Option {
	return func(e *editor) {
		e.scan = r.Phase(report.PhaseScan)
		e.rewrite = r.Phase(report.PhaseRewrite)
		e.apply = r.Phase(report.PhaseApply)
	}
}

type editor struct {
	scan    *report.PhaseReporter
	rewrite *report.PhaseReporter
	apply   *report.PhaseReporter
}

type candidate struct {
	call *ast.CallExpr
	out  rewrite.Outcome
}

type edit struct {
	start int
	end   int
	text  string
}

// RewriteSource rewrites classic assertions in src. Type check errors are tolerated,
// operand types the checker could not infer fall back to syntax guesses.
func RewriteSource(ctx context.Context, filename string, src []byte, rw *rewrite.Rewriter, opts ...Option) (*Result, error) {
	var e editor
	for _, opt := range opts {
		opt(&e)
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
	}
	conf := types.Config{
		Importer: importer.Default(),
		Error:    func(error) {},
	}
	_, _ = conf.Check(file.Name.Name, fset, []*ast.File{file}, info)

	fmtName, fmtImported := FmtName(file)
	rctx := rewrite.Context{
		Resolver: argkind.Types(info),
		FmtName:  fmtName,
		Fset:     fset,
		Comments: file.Comments,
	}

	var (
		cands   []*candidate
		walkErr error
	)
	ast.Inspect(file, func(n ast.Node) bool {
		if walkErr != nil {
			return false
		}
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		if err := ctx.Err(); err != nil {
			walkErr = err
			return false
		}

		out := rw.Rewrite(call, rctx)
		switch {
		case out.Changed():
			cands = append(cands, &candidate{call: call, out: out})
		case slices.Contains(out.Path, rewrite.StateRecipeFound):
			e.scan.Report(out.Rule, fmt.Sprintf("%s left as is: no behavior preserving rewrite", out.Key), fset.Position(call.Pos()))
		}
		return true
	})
	if walkErr != nil {
		return nil, fmt.Errorf("rewrite %s: %w", filename, walkErr)
	}

	cands, err = e.outermost(fset, cands)
	if err != nil {
		return nil, fmt.Errorf("select candidates of %s: %w", filename, err)
	}
	cands = e.withoutInnerComments(fset, file, cands)

	res := &Result{Source: src}
	if len(cands) == 0 {
		return res, nil
	}

	tokFile := fset.File(file.Pos())
	edits := make([]edit, 0, len(cands))
	needsFmt := false
	for _, c := range cands {
		start, end := tokFile.Offset(c.call.Pos()), tokFile.Offset(c.call.End())
		after := constraint.Format(c.out.Replacement)
		edits = append(edits, edit{start: start, end: end, text: after})
		needsFmt = needsFmt || c.out.NeedsFmt

		pos := fset.Position(c.call.Pos())
		res.Changes = append(res.Changes, Change{
			Pos:    pos,
			Key:    c.out.Key,
			Rule:   c.out.Rule,
			Before: string(src[start:end]),
			After:  after,
		})
		if c.out.Leading != nil {
			res.Changes[len(res.Changes)-1].Comment = strings.TrimSpace(c.out.Leading.Text())
		}
		e.rewrite.Report(c.out.Rule, after, pos)
	}

	spliced, err := splice(src, edits)
	if err != nil {
		return nil, fmt.Errorf("apply edits to %s: %w", filename, err)
	}

	res.Source, err = finish(filename, spliced, needsFmt && !fmtImported)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// FmtName returns the name package fmt is visible under in the file and whether it is
// imported in a usable way.
func FmtName(file *ast.File) (string, bool) {
	for _, imp := range file.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil || path != "fmt" {
			continue
		}

		switch {
		case imp.Name == nil:
			return "fmt", true
		case imp.Name.Name != "_" && imp.Name.Name != ".":
			return imp.Name.Name, true
		}
	}

	return "fmt", false
}

// outermost drops candidates nested in other candidates. Candidates come in the
// traversal order, so containers are indexed before their contents.
func (e *editor) outermost(fset *token.FileSet, cands []*candidate) ([]*candidate, error) {
	ix := spans.New[*candidate]()
	for _, c := range cands {
		if err := ix.Add(c, c.call.Pos(), c.call.End()); err != nil {
			return nil, err
		}
	}

	res := cands[:0:0]
	for _, c := range cands {
		if top, _ := ix.Outermost(c.call.Pos()); top != c {
			e.apply.Report(c.out.Rule, "nested in a rewritten call, left for the next run", fset.Position(c.call.Pos()))
			continue
		}
		res = append(res, c)
	}

	return res, nil
}

// withoutInnerComments drops candidates with comments inside the call, a replacement
// would lose them.
func (e *editor) withoutInnerComments(fset *token.FileSet, file *ast.File, cands []*candidate) []*candidate {
	res := cands[:0:0]
	for _, c := range cands {
		inner := slices.ContainsFunc(file.Comments, func(cg *ast.CommentGroup) bool {
			return cg.Pos() > c.call.Pos() && cg.End() < c.call.End()
		})
		if inner {
			e.apply.Report(c.out.Rule, "comments inside the call, left as is", fset.Position(c.call.Pos()))
			continue
		}
		res = append(res, c)
	}

	return res
}

// splice applies edits with non overlapping spans, from the last one to the first one.
func splice(src []byte, edits []edit) ([]byte, error) {
	slices.SortFunc(edits, func(a, b edit) int {
		return cmp.Compare(b.start, a.start)
	})

	for i := 1; i < len(edits); i++ {
		if edits[i].end > edits[i-1].start {
			return nil, fmt.Errorf(
				"edit [%d,%d) overlaps edit [%d,%d)",
				edits[i].start, edits[i].end, edits[i-1].start, edits[i-1].end,
			)
		}
	}

	res := bytes.Clone(src)
	for _, ed := range edits {
		if ed.start < 0 || ed.end < ed.start || ed.end > len(res) {
			return nil, fmt.Errorf("edit [%d,%d) is out of range", ed.start, ed.end)
		}
		res = slices.Concat(res[:ed.start], []byte(ed.text), res[ed.end:])
	}

	return res, nil
}

// finish adds the fmt import when needed and formats the source.
func finish(filename string, src []byte, addFmt bool) ([]byte, error) {
	if !addFmt {
		res, err := format.Source(src)
		if err != nil {
			return nil, fmt.Errorf("format rewritten %s: %w", filename, err)
		}
		return res, nil
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse rewritten %s: %w", filename, err)
	}
	astutil.AddImport(fset, file, "fmt")

	var buf bytes.Buffer
	if err := format.Node(&buf, fset, file); err != nil {
		return nil, fmt.Errorf("format rewritten %s: %w", filename, err)
	}

	return buf.Bytes(), nil
}
