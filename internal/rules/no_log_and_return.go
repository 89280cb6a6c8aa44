package rules

import (
	"fmt"
	"go/ast"
	"go/token"

	"github.com/sirkon/relint/internal/rule"
	"github.com/sirkon/relint/internal/sigs"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"gopkg.in/yaml.v3"
)

// NoLogAndReturn reports errors that are both logged and returned within
// the same function. An error is either handled in place or propagated,
// never both.
type NoLogAndReturn struct {
	severity Severity
	logging  *sigs.Logging
	custom   int
}

// NewNoLogAndReturn returns the rule with the predefined logging catalog.
func NewNoLogAndReturn() *NoLogAndReturn {
	return &NoLogAndReturn{
		severity: SeverityWarning,
		logging:  sigs.KnownLogging(nil),
	}
}

func (r *NoLogAndReturn) Description() rule.Description {
	return rule.Description{
		Identifier:   "no_log_and_return",
		Summary:      "An error must be either logged or returned, never both.",
		Kind:         rule.KindLint,
		Capabilities: rule.Capabilities{AnalyzerOnly: true},
		TriggeringExamples: []string{
			`if err != nil {
	log.Printf("update failed: %v", err)
	return err
}`,
		},
	}
}

func (r *NoLogAndReturn) ConfigurationDescription() string {
	return fmt.Sprintf(
		"severity: %s, known logging functions: %d (%d custom)",
		r.severity, r.logging.Len(), r.custom,
	)
}

func (r *NoLogAndReturn) Configure(params *yaml.Node) error {
	if rule.NullParams(params) {
		return nil
	}

	var p struct {
		Severity     *Severity         `yaml:"severity"`
		LogFunctions map[string]string `yaml:"log_functions"`
	}
	if err := params.Decode(&p); err != nil {
		return fmt.Errorf("decode rule parameters: %w", err)
	}

	if p.Severity != nil {
		r.severity = *p.Severity
	}

	custom := make(map[sigs.PackagedFunc]sigs.LogKind, len(p.LogFunctions))
	for name, kindText := range p.LogFunctions {
		fn, err := splitPackagedFunc(name)
		if err != nil {
			return err
		}

		var kind sigs.LogKind
		if err := kind.UnmarshalText([]byte(kindText)); err != nil {
			return fmt.Errorf("log function %q: %w", name, err)
		}

		custom[fn] = kind
	}

	r.logging = sigs.KnownLogging(custom)
	r.custom = len(custom)

	return nil
}

// Analyzer builds the go/analysis pass over the instance's parameters.
func (r *NoLogAndReturn) Analyzer() *analysis.Analyzer {
	return &analysis.Analyzer{
		Name:     "nologandreturn",
		Doc:      "reports errors that are both logged and returned",
		Requires: []*analysis.Analyzer{inspect.Analyzer},
		Run:      r.run,
	}
}

func (r *NoLogAndReturn) run(pass *analysis.Pass) (any, error) {
	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.FuncDecl)(nil),
	}

	pector.Preorder(nodeFilter, func(node ast.Node) {
		fn := node.(*ast.FuncDecl)
		if fn.Body == nil {
			return
		}

		r.checkFunc(pass, fn.Body)
	})

	return nil, nil
}

func (r *NoLogAndReturn) checkFunc(pass *analysis.Pass, body *ast.BlockStmt) {
	// First pass: error variables fed into known logging calls.
	logged := map[string]token.Pos{}
	ast.Inspect(body, func(node ast.Node) bool {
		call, ok := node.(*ast.CallExpr)
		if !ok {
			return true
		}

		callee, ok := sigs.Callee(pass.TypesInfo, call)
		if !ok {
			return true
		}

		if _, ok := r.logging.Kind(callee); !ok {
			return true
		}

		for _, arg := range call.Args {
			id, ok := arg.(*ast.Ident)
			if !ok {
				continue
			}

			if isErrorType(pass.TypesInfo.TypeOf(id)) {
				logged[id.Name] = call.Pos()
			}
		}

		return true
	})

	if len(logged) == 0 {
		return
	}

	// Second pass: returns of already logged errors.
	ast.Inspect(body, func(node ast.Node) bool {
		ret, ok := node.(*ast.ReturnStmt)
		if !ok {
			return true
		}

		for _, res := range ret.Results {
			id, ok := res.(*ast.Ident)
			if !ok {
				continue
			}

			if _, ok := logged[id.Name]; ok {
				pass.Reportf(id.Pos(), "error %s is already logged, return without logging or do not return it", id.Name)
			}
		}

		return true
	})
}
