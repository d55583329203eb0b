package report

import (
	"bytes"
	"go/token"
	"sync"
	"testing"

	"github.com/sirkon/fluentify/internal/fluentrules"
)

func TestReporter_ReportPhases(t *testing.T) {
	tests := []struct {
		name     string
		phase    Phase
		rule     fluentrules.Rule
		message  string
		filename string
		line     int
	}{
		{
			name:     "scan-phase type error",
			phase:    PhaseScan,
			rule:     fluentrules.ClassicEquality(),
			message:  "undefined: x",
			filename: "main_test.go",
			line:     10,
		},
		{
			name:     "rewrite-phase equality",
			phase:    PhaseRewrite,
			rule:     fluentrules.ClassicEquality(),
			message:  "Assert.That(x, Is.EqualTo(42))",
			filename: "value_test.go",
			line:     20,
		},
		{
			name:     "apply-phase conflict",
			phase:    PhaseApply,
			rule:     fluentrules.PositionalMessage(),
			message:  "overlapping edit skipped",
			filename: "file_test.go",
			line:     42,
		},
	}

	var r Reporter

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phase := r.Phase(tt.phase)
			phase.Report(tt.rule, tt.message, token.Position{
				Filename: tt.filename,
				Line:     tt.line,
			})
		})
	}

	reps := r.Reports()
	if len(reps) != len(tests) {
		t.Fatalf("expected %d reports, got %d", len(tests), len(reps))
	}

	for i, rep := range reps {
		want := tests[i]
		if rep.Phase != want.phase {
			t.Errorf("[%s] phase mismatch: got %v, want %v", want.name, rep.Phase, want.phase)
		}
		if rep.Rule != want.rule {
			t.Errorf("[%s] rule mismatch: got %v, want %v", want.name, rep.Rule, want.rule)
		}
		if rep.Message != want.message {
			t.Errorf("[%s] message mismatch: got %q, want %q", want.name, rep.Message, want.message)
		}
		if rep.Pos.Filename != want.filename || rep.Pos.Line != want.line {
			t.Errorf("[%s] position mismatch: got %s:%d, want %s:%d",
				want.name, rep.Pos.Filename, rep.Pos.Line, want.filename, want.line)
		}
	}

	if n := r.Count(PhaseRewrite); n != 1 {
		t.Errorf("one rewrite report expected, got %d", n)
	}

	var buf bytes.Buffer
	if err := r.PrintSummary(&buf); err != nil {
		t.Fatal(err)
	}
	const wantLine = "[rewrite] FLU000: Assert.That(x, Is.EqualTo(42)) (value_test.go:20)\n"
	if !bytes.Contains(buf.Bytes(), []byte(wantLine)) {
		t.Errorf("summary lacks %q:\n%s", wantLine, buf.String())
	}
}

func TestReporter_NilPhase(t *testing.T) {
	var rp *PhaseReporter
	rp.Report(fluentrules.ClassicState(), "dropped", token.Position{})

	if s := phaseInvalid.String(); s != "unknown-phase(0)" {
		t.Errorf("unexpected invalid phase name %q", s)
	}
}

func TestReporter_ConcurrencySafety(t *testing.T) {
	const n = 500
	var (
		r    Reporter
		wg   sync.WaitGroup
		fset token.FileSet
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Report(Report{
				Phase:   PhaseRewrite,
				Rule:    fluentrules.ClassicCondition(),
				Message: "parallel add",
				Pos:     fset.Position(token.Pos(i)),
			})
		}(i)
	}
	wg.Wait()

	reps := r.Reports()
	if len(reps) != n {
		t.Fatalf("expected %d reports, got %d", n, len(reps))
	}
	reps[0].Message = "changed"
	reps2 := r.Reports()
	if reps2[0].Message == "changed" {
		t.Fatalf("Reports() returned shared slice, expected copy")
	}
}
