// Package fluentrules defines the canonical FLU-series rule codes reported by fluentify.
//
// Every rewrite fluentify proposes belongs to exactly one rule. The code gives the
// rewrite a stable identity, so findings can be filtered and traced the same way in
// analyzer diagnostics, CLI output and the rule listing.
//
// # Structure
//
// Rule codes follow the format “FLU<NNN>: <Name>” and are grouped by the classic
// assertion family they rewrite:
//
//	000–009  classic assertions (Assert, ClassicAssert)
//	010–019  collection assertions
//	020–029  string assertions
//	030–039  file and directory assertions
//	100–109  message-only conversions
//
// Example:
//
//	fluentrules.FLU000ClassicEquality.String()      → "FLU000: ClassicEquality"
//	fluentrules.FLU000ClassicEquality.Description() → "Classic equality assertion can be expressed as a constraint."
//
// # Usage
//
// The analyzer uses the code as the diagnostic category:
//
//	pass.Report(analysis.Diagnostic{Category: rule.Code(), ...})
//
// # Notes
//
//   - Codes are stable, never renumber existing ones.
//   - New rules take the next free slot of their family range.
package fluentrules
