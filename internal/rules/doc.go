// Package rules holds the built-in rule set of relint.
//
// Every rule here represents a verifiable invariant of error handling and
// code shape discipline. Rules exist in two forms: the registered rule
// type (identifier, summary, kind, capability flags, triggering examples)
// and the constructible instance carrying effective parameters after
// project configuration is applied.
//
// # Structure
//
// One file per rule. Each rule type:
//   - implements rule.Rule;
//   - registers itself through the package init in register.go;
//   - keeps its identifier in Description() equal to the registered one.
//
// Rules needing full type information additionally implement
// rule.AnalyzerRule and expose a go/analysis Analyzer built over the
// instance's effective parameters.
//
// # Notes
//
//   - Rule identifiers are stable; never rename existing ones.
//   - New rules must register at the end of their functional group.
//   - The custom_rules container is the only composite rule: it holds
//     user-defined regex sub-rules and never reports on its own.
package rules
