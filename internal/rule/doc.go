// Package rule defines the descriptor and capability model shared by every
// relint rule.
//
// A rule participates in two worlds: the checking machinery (go/analysis
// passes, configuration parsing) and the catalog surface (the `relint rules`
// command). This package holds only what the catalog surface and the
// configuration layer need to know about a rule:
//
//   - Description
//     The static identity of a rule type: identifier, summary, kind and
//     triggering examples. Owned by the registry, never mutated.
//
//   - Capabilities
//     A closed set of boolean facts about a rule type, attached at
//     registration time and queried by value. No runtime type inspection
//     is ever needed to answer "is this rule opt-in / correctable /
//     analyzer-only".
//
//   - Rule, Collector, AnalyzerRule
//     The constructible instance contracts. Collector marks composite
//     rules that expand into named sub-rules; AnalyzerRule marks rules
//     backed by a golang.org/x/tools go/analysis Analyzer.
//
// Rule numbering or severity policy does not live here; a rule is free to
// keep whatever knobs it likes behind Configure.
package rule
