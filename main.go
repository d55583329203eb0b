package main

import (
	"fmt"
	"go/ast"
	"slices"
	"sync"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/analysis/singlechecker"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/sirkon/fluentify/internal/argkind"
	"github.com/sirkon/fluentify/internal/config"
	"github.com/sirkon/fluentify/internal/constraint"
	"github.com/sirkon/fluentify/internal/fileedit"
	"github.com/sirkon/fluentify/internal/rewrite"
)

const doc = `fluentify rewrites classic assertions into constraint based ones

Calls like Assert.AreEqual(42, x) are reported with a suggested fix turning them
into Assert.That(x, Is.EqualTo(42)). Rewrites never change which assertions fail.`

// Analyzer is the main entry point for the linter
var Analyzer = &analysis.Analyzer{
	Name:     "fluentify",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var (
	configPath string
	testsOnly  bool
)

func init() {
	Analyzer.Flags.StringVar(&configPath, "config", "", "path to the YAML config")
	Analyzer.Flags.BoolVar(&testsOnly, "tests-only", false, "only check _test.go files")
}

type setupKey struct {
	config    string
	testsOnly bool
}

type setupResult struct {
	cfg *config.Config
	rw  *rewrite.Rewriter
}

var (
	setupMu sync.Mutex
	setups  = map[setupKey]*setupResult{}
)

// setup loads the config named by flags, once per flag values.
func setup() (*setupResult, error) {
	key := setupKey{config: configPath, testsOnly: testsOnly}

	setupMu.Lock()
	defer setupMu.Unlock()
	if s, ok := setups[key]; ok {
		return s, nil
	}

	cfg, err := config.Load(key.config)
	if err != nil {
		return nil, err
	}
	cfg.TestsOnly = cfg.TestsOnly || key.testsOnly

	rw, err := cfg.Rewriter()
	if err != nil {
		return nil, fmt.Errorf("setup rewriter: %w", err)
	}

	s := &setupResult{cfg: cfg, rw: rw}
	setups[key] = s
	return s, nil
}

func main() {
	singlechecker.Main(Analyzer)
}

func run(pass *analysis.Pass) (any, error) {
	s, err := setup()
	if err != nil {
		return nil, err
	}

	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	resolver := argkind.Types(pass.TypesInfo)

	nodeFilter := []ast.Node{
		(*ast.File)(nil),
		(*ast.CallExpr)(nil),
	}

	var (
		rctx        rewrite.Context
		fmtImported bool
	)
	pector.WithStack(nodeFilter, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}

		switch n := n.(type) {
		case *ast.File:
			if !s.cfg.Includes(pass.Fset.Position(n.Package).Filename) {
				return false
			}

			var fmtName string
			fmtName, fmtImported = fileedit.FmtName(n)
			rctx = rewrite.Context{
				Resolver: resolver,
				FmtName:  fmtName,
				Fset:     pass.Fset,
				Comments: n.Comments,
			}
			return true

		case *ast.CallExpr:
			out := s.rw.Rewrite(n, rctx)
			if !out.Changed() {
				return true
			}

			pass.Report(diagnostic(stack[0].(*ast.File), n, out, !fmtImported))
			// Calls nested in a rewritten one are checked again after the fix.
			return false
		}

		return true
	})

	return nil, nil
}

func diagnostic(file *ast.File, call *ast.CallExpr, out rewrite.Outcome, addFmt bool) analysis.Diagnostic {
	after := constraint.Format(out.Replacement)
	d := analysis.Diagnostic{
		Pos:      call.Pos(),
		End:      call.End(),
		Category: out.Rule.Code(),
		Message:  fmt.Sprintf("%s: use %s", out.Rule, after),
	}

	// A fix would drop comments placed inside the call.
	inner := slices.ContainsFunc(file.Comments, func(cg *ast.CommentGroup) bool {
		return cg.Pos() > call.Pos() && cg.End() < call.End()
	})
	if inner {
		return d
	}

	edits := []analysis.TextEdit{{
		Pos:     call.Pos(),
		End:     call.End(),
		NewText: []byte(after),
	}}
	if out.NeedsFmt && addFmt {
		edits = append(edits, analysis.TextEdit{
			Pos:     file.Name.End(),
			End:     file.Name.End(),
			NewText: []byte("\n\nimport \"fmt\""),
		})
	}
	d.SuggestedFixes = []analysis.SuggestedFix{{
		Message:   fmt.Sprintf("Rewrite %s into a constraint assertion", out.Key),
		TextEdits: edits,
	}}

	return d
}
