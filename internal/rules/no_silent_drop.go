package rules

import (
	"fmt"
	"go/ast"
	"go/types"

	"github.com/sirkon/relint/internal/rule"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"gopkg.in/yaml.v3"
)

// NoSilentDrop reports error values assigned to the blank identifier.
type NoSilentDrop struct {
	Severity Severity `yaml:"severity"`
}

// NewNoSilentDrop returns the rule with its default parameters.
func NewNoSilentDrop() *NoSilentDrop {
	return &NoSilentDrop{Severity: SeverityError}
}

func (r *NoSilentDrop) Description() rule.Description {
	return rule.Description{
		Identifier:   "no_silent_drop",
		Summary:      "Error values must never be dropped silently.",
		Kind:         rule.KindLint,
		Capabilities: rule.Capabilities{AnalyzerOnly: true},
		TriggeringExamples: []string{
			`_ = process(task)`,
			`res, _ := client.Do(req)
use(res)`,
		},
	}
}

func (r *NoSilentDrop) ConfigurationDescription() string {
	return fmt.Sprintf("severity: %s", r.Severity)
}

func (r *NoSilentDrop) Configure(params *yaml.Node) error {
	return decodeParams(params, r)
}

// Analyzer builds the go/analysis pass over the instance's parameters.
func (r *NoSilentDrop) Analyzer() *analysis.Analyzer {
	return &analysis.Analyzer{
		Name:     "nosilentdrop",
		Doc:      "reports error values assigned to the blank identifier",
		Requires: []*analysis.Analyzer{inspect.Analyzer},
		Run:      r.run,
	}
}

func (r *NoSilentDrop) run(pass *analysis.Pass) (any, error) {
	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.AssignStmt)(nil),
	}

	pector.Preorder(nodeFilter, func(node ast.Node) {
		assign := node.(*ast.AssignStmt) // No need to assert check since we only get assignments.

		switch {
		case len(assign.Lhs) == len(assign.Rhs):
			for i, lhs := range assign.Lhs {
				if !isBlank(lhs) {
					continue
				}

				if isErrorType(pass.TypesInfo.TypeOf(assign.Rhs[i])) {
					pass.Reportf(lhs.Pos(), "error value dropped without handling")
				}
			}

		case len(assign.Rhs) == 1:
			// Multi-value assignment from a single call.
			tuple, ok := pass.TypesInfo.TypeOf(assign.Rhs[0]).(*types.Tuple)
			if !ok {
				return
			}

			for i, lhs := range assign.Lhs {
				if !isBlank(lhs) || i >= tuple.Len() {
					continue
				}

				if isErrorType(tuple.At(i).Type()) {
					pass.Reportf(lhs.Pos(), "error value dropped without handling")
				}
			}
		}
	})

	return nil, nil
}
