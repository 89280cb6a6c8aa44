package rules

import (
	"fmt"
	"go/ast"

	"github.com/sirkon/relint/internal/rule"
	"github.com/sirkon/relint/internal/sigs"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"gopkg.in/yaml.v3"
)

// AnnotateExternal demands wrapping for errors obtained from calls into
// other packages before they are returned.
type AnnotateExternal struct {
	severity Severity
	wraps    *sigs.Wraps
	custom   int
}

// NewAnnotateExternal returns the rule with the predefined wrap catalog.
func NewAnnotateExternal() *AnnotateExternal {
	return &AnnotateExternal{
		severity: SeverityWarning,
		wraps:    sigs.KnownWraps(nil),
	}
}

func (r *AnnotateExternal) Description() rule.Description {
	return rule.Description{
		Identifier:   "annotate_external",
		Summary:      "Wrap errors when crossing a package boundary.",
		Kind:         rule.KindLint,
		Capabilities: rule.Capabilities{AnalyzerOnly: true},
		TriggeringExamples: []string{
			`data, err := os.ReadFile(path)
if err != nil {
	return nil, err
}`,
		},
	}
}

func (r *AnnotateExternal) ConfigurationDescription() string {
	return fmt.Sprintf(
		"severity: %s, known wrap functions: %d (%d custom)",
		r.severity, r.wraps.Len(), r.custom,
	)
}

func (r *AnnotateExternal) Configure(params *yaml.Node) error {
	if rule.NullParams(params) {
		return nil
	}

	var p struct {
		Severity      *Severity         `yaml:"severity"`
		WrapFunctions map[string]string `yaml:"wrap_functions"`
	}
	if err := params.Decode(&p); err != nil {
		return fmt.Errorf("decode rule parameters: %w", err)
	}

	if p.Severity != nil {
		r.severity = *p.Severity
	}

	custom := make(map[sigs.PackagedFunc]sigs.WrapKind, len(p.WrapFunctions))
	for name, kindText := range p.WrapFunctions {
		fn, err := splitPackagedFunc(name)
		if err != nil {
			return err
		}

		var kind sigs.WrapKind
		if err := kind.UnmarshalText([]byte(kindText)); err != nil {
			return fmt.Errorf("wrap function %q: %w", name, err)
		}

		custom[fn] = kind
	}

	r.wraps = sigs.KnownWraps(custom)
	r.custom = len(custom)

	return nil
}

// Analyzer builds the go/analysis pass over the instance's parameters.
func (r *AnnotateExternal) Analyzer() *analysis.Analyzer {
	return &analysis.Analyzer{
		Name:     "annotateexternal",
		Doc:      "reports errors returned from other packages without annotation",
		Requires: []*analysis.Analyzer{inspect.Analyzer},
		Run:      r.run,
	}
}

func (r *AnnotateExternal) run(pass *analysis.Pass) (any, error) {
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

// checkFunc tracks, per error variable name, the last call expression the
// variable was assigned from. A bare return of such a variable is reported
// when the originating call crosses the package boundary. Name-based
// tracking is an approximation: shadowing within a function body is rare
// enough in checked code to live with it.
func (r *AnnotateExternal) checkFunc(pass *analysis.Pass, body *ast.BlockStmt) {
	lastCall := map[string]*ast.CallExpr{}

	ast.Inspect(body, func(node ast.Node) bool {
		switch v := node.(type) {
		case *ast.AssignStmt:
			if len(v.Rhs) != 1 {
				return true
			}

			call, ok := v.Rhs[0].(*ast.CallExpr)
			if !ok {
				return true
			}

			wrapped := false
			if callee, ok := sigs.Callee(pass.TypesInfo, call); ok {
				if _, ok := r.wraps.Kind(callee); ok {
					wrapped = true
				}
			}

			for _, lhs := range v.Lhs {
				id, ok := lhs.(*ast.Ident)
				if !ok || id.Name == "_" {
					continue
				}

				if !isErrorType(pass.TypesInfo.TypeOf(id)) {
					continue
				}

				if wrapped {
					delete(lastCall, id.Name)
				} else {
					lastCall[id.Name] = call
				}
			}

		case *ast.ReturnStmt:
			for _, res := range v.Results {
				id, ok := res.(*ast.Ident)
				if !ok {
					continue
				}

				if !isErrorType(pass.TypesInfo.TypeOf(id)) {
					continue
				}

				call, ok := lastCall[id.Name]
				if !ok {
					continue
				}

				if !r.isExternalCall(pass, call) {
					continue
				}

				pass.Reportf(id.Pos(), "annotate errors coming from other packages before returning")
			}
		}

		return true
	})
}

func (r *AnnotateExternal) isExternalCall(pass *analysis.Pass, call *ast.CallExpr) bool {
	fn, ok := sigs.Callee(pass.TypesInfo, call)
	if !ok {
		return false
	}

	return fn.PkgPath != pass.Pkg.Path() && fn.PkgPath != "builtin"
}
