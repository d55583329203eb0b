// Package report collects what happened to candidate calls while files are processed.
package report

import (
	"fmt"
	"go/token"
	"io"
	"sync"

	"github.com/sirkon/fluentify/internal/fluentrules"
)

// Reporter collects records from concurrent file workers.
type Reporter struct {
	mu      sync.Mutex
	reports []Report
}

// Report represents a single record.
type Report struct {
	Phase   Phase
	Rule    fluentrules.Rule
	Pos     token.Position
	Message string
}

// Phase marks the processing stage where a report was generated.
type Phase int

const (
	phaseInvalid Phase = iota
	PhaseScan          // parsing and type checking
	PhaseRewrite       // rewriting candidate calls
	PhaseApply         // splicing replacements into the source
)

func (p Phase) String() string {
	switch p {
	case PhaseScan:
		return "scan"
	case PhaseRewrite:
		return "rewrite"
	case PhaseApply:
		return "apply"
	default:
		return fmt.Sprintf("unknown-phase(%d)", p)
	}
}

// PhaseReporter binds a Reporter to a fixed phase.
type PhaseReporter struct {
	parent *Reporter
	phase  Phase
}

// Phase returns a reporter that sets the given phase for all reports produced through it.
func (r *Reporter) Phase(p Phase) *PhaseReporter {
	return &PhaseReporter{parent: r, phase: p}
}

// Report adds a new record.
func (r *Reporter) Report(rep Report) {
	r.mu.Lock()
	r.reports = append(r.reports, rep)
	r.mu.Unlock()
}

// Report records a new entry under the bound phase. A nil reporter drops it.
func (rp *PhaseReporter) Report(rule fluentrules.Rule, message string, pos token.Position) {
	if rp == nil || rp.parent == nil {
		return
	}

	rp.parent.Report(Report{
		Phase:   rp.phase,
		Rule:    rule,
		Message: message,
		Pos:     pos,
	})
}

// Reports returns a snapshot of all collected records.
func (r *Reporter) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Report, len(r.reports))
	copy(out, r.reports)
	return out
}

// Count returns the number of records of the phase.
func (r *Reporter) Count(p Phase) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int
	for _, rep := range r.reports {
		if rep.Phase == p {
			n++
		}
	}
	return n
}

// PrintSummary prints all collected reports in a compact form.
func (r *Reporter) PrintSummary(w io.Writer) error {
	for _, rep := range r.Reports() {
		if _, err := fmt.Fprintf(w, "[%s] %s: %s (%s:%d)\n",
			rep.Phase,
			rep.Rule.Code(),
			rep.Message,
			rep.Pos.Filename,
			rep.Pos.Line,
		); err != nil {
			return fmt.Errorf("print summary: %w", err)
		}
	}

	return nil
}
