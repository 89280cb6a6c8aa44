// Package catalog implements the rule catalog query and presentation
// pipeline behind the `relint rules` command.
//
// The pipeline is a chain of pure transformations:
//
//	Filter → Expand → RenderTable
//
// Filter selects rule identifiers from the registry by their activation
// state. Expand flattens each identifier into one or more presentable
// rows, unfolding composite rules into their named sub-rules. RenderTable
// sorts the rows and lays them into a fixed seven-column text table,
// truncating descriptions to the terminal width.
//
// The single-rule path bypasses the pipeline entirely: RenderDetail
// prints one rule's full configuration description and its triggering
// examples without any truncation.
//
// Nothing here touches the file system, the network or global state, and
// no step can fail: degenerate inputs (empty registry, zero matching
// rows, zero-width terminals) produce degenerate but well-formed output.
package catalog
