// Module literal evaluation and module instantiation. Grounded on spec
// §4.F's "Module literal" and "Module instantiation" subsections; no
// direct teacher analogue exists (funxy has no module-instantiation
// concept), so this is written fresh against the spec, reusing this
// package's own copy-with-overrides core (copy.go) for building the
// instantiated argument tuple.
package eval

import (
	"path/filepath"
	"strings"

	"github.com/jfranklin9000/ucg/internal/ast"
	"github.com/jfranklin9000/ucg/internal/config"
	"github.com/jfranklin9000/ucg/internal/evalerr"
	"github.com/jfranklin9000/ucg/internal/scope"
	"github.com/jfranklin9000/ucg/internal/value"
)

func (e *Evaluator) evalModuleLiteral(n *ast.ModuleLiteral, sc *scope.Scope) (value.Value, error) {
	dir := filepath.Dir(n.File)
	rewriteImports(n.Statements, dir)

	var defaultArgs *value.Tuple
	if n.Args != nil {
		v, err := e.evalTupleLiteral(n.Args, sc)
		if err != nil {
			return nil, err
		}
		defaultArgs = v.(*value.Tuple)
	} else {
		defaultArgs = value.NewTuple(nil)
	}

	return value.Module{
		Def: &value.ModuleDef{
			Args:       n.Args,
			Output:     n.Output,
			Statements: n.Statements,
			File:       n.File,
		},
		DefaultArgs: defaultArgs,
	}, nil
}

// instantiateModule implements spec §4.F's five-step module instantiation.
func (e *Evaluator) instantiateModule(n *ast.CopyExpr, mod *value.Module, sc *scope.Scope) (value.Value, error) {
	// Step 1: fresh evaluator marked is_module, sharing the asset cache.
	child := e.spawnSibling(filepath.Dir(mod.Def.File), true)

	// Step 2: argument tuple by copy-with-overrides from the default
	// argument tuple, with pkg/this prepended as synthetic overrides.
	order, byName, err := tupleIndex(n.Pos(), mod.DefaultArgs)
	if err != nil {
		return nil, err
	}

	pkgFn := value.Func{
		Def: &value.FuncDef{
			Params: nil,
			Body:   &ast.ImportExpr{Path: mod.Def.File},
		},
		Captured: sc,
	}
	var mergeErr error
	order, mergeErr = mergeOverride(n.Pos(), order, byName, "pkg", pkgFn)
	if mergeErr != nil {
		return nil, mergeErr
	}
	order, mergeErr = mergeOverride(n.Pos(), order, byName, "this", *mod)
	if mergeErr != nil {
		return nil, mergeErr
	}

	for _, ov := range n.Overrides {
		newVal, err := e.Eval(ov.Value, sc)
		if err != nil {
			return nil, err
		}
		order, mergeErr = mergeOverride(n.Pos(), order, byName, ov.Name, newVal)
		if mergeErr != nil {
			return nil, mergeErr
		}
	}
	argTuple := buildTuple(order, byName)

	// Step 3: bind the argument tuple under `mod` in the child's scope.
	modScope := scope.New(sc.Strict())
	if !modScope.Bind("mod", argTuple) {
		return nil, evalerr.At(evalerr.DuplicateBinding, n.Pos(), "mod is already bound")
	}

	// Step 4: execute the module's statements in the child evaluator.
	if err := child.Run(mod.Def.Statements, modScope); err != nil {
		return nil, evalerr.Wrap(evalerr.Unsupported, n.Pos(), err, "module instantiation failed")
	}

	// Step 5: explicit output wins; otherwise the child's accumulated
	// bindings, in insertion order.
	if mod.Def.Output != nil {
		return child.Eval(mod.Def.Output, modScope)
	}
	return value.NewTuple(modScope.OrderedBindings()), nil
}

// rewriteImports rewrites every ast.ImportExpr.Path reachable from stmts
// (without descending into nested module literals, which rewrite
// themselves independently when they in turn are evaluated) from a
// relative path to one rooted at dir. Idempotent: already-absolute paths
// and std/-prefixed paths are left untouched.
func rewriteImports(stmts []ast.Statement, dir string) {
	for _, s := range stmts {
		rewriteStmt(s, dir)
	}
}

func rewriteStmt(s ast.Statement, dir string) {
	switch st := s.(type) {
	case *ast.LetStatement:
		rewriteExpr(st.Value, dir)
	case *ast.ExpressionStatement:
		rewriteExpr(st.Expr, dir)
	case *ast.AssertStatement:
		rewriteExpr(st.Expr, dir)
	case *ast.OutputStatement:
		rewriteExpr(st.Expr, dir)
	}
}

func rewriteExpr(expr ast.Expression, dir string) {
	if expr == nil {
		return
	}
	switch ex := expr.(type) {
	case *ast.ImportExpr:
		ex.Path = rewriteImportPath(ex.Path, dir)
	case *ast.ListLiteral:
		for _, el := range ex.Elements {
			rewriteExpr(el, dir)
		}
	case *ast.TupleLiteral:
		for _, f := range ex.Fields {
			rewriteExpr(f.Value, dir)
		}
	case *ast.BinaryExpr:
		rewriteExpr(ex.Left, dir)
		rewriteExpr(ex.Right, dir)
	case *ast.NotExpr:
		rewriteExpr(ex.Expr, dir)
	case *ast.CopyExpr:
		rewriteExpr(ex.Selector, dir)
		for _, ov := range ex.Overrides {
			rewriteExpr(ov.Value, dir)
		}
	case *ast.RangeExpr:
		rewriteExpr(ex.Start, dir)
		rewriteExpr(ex.Step, dir)
		rewriteExpr(ex.End, dir)
	case *ast.GroupedExpr:
		rewriteExpr(ex.Inner, dir)
	case *ast.FormatExpr:
		for _, a := range ex.Args {
			rewriteExpr(a, dir)
		}
		for _, sec := range ex.Sections {
			rewriteExpr(sec.Expr, dir)
		}
	case *ast.CallExpr:
		rewriteExpr(ex.Func, dir)
		for _, a := range ex.Args {
			rewriteExpr(a, dir)
		}
	case *ast.FuncLiteral:
		rewriteExpr(ex.Body, dir)
	case *ast.SelectExpr:
		rewriteExpr(ex.Discriminator, dir)
		for _, c := range ex.Cases {
			rewriteExpr(c.Value, dir)
		}
		rewriteExpr(ex.Default, dir)
	case *ast.FuncOpExpr:
		rewriteExpr(ex.Func, dir)
		rewriteExpr(ex.Acc, dir)
		rewriteExpr(ex.Target, dir)
	case *ast.FailExpr:
		rewriteExpr(ex.Message, dir)
	case *ast.DebugExpr:
		rewriteExpr(ex.Inner, dir)
	// NullLiteral, BoolLiteral, IntLiteral, FloatLiteral, StrLiteral,
	// Symbol, IncludeExpr, and ModuleLiteral are leaves for this walk.
	}
}

func rewriteImportPath(path, dir string) string {
	if path == "" || filepath.IsAbs(path) || isStdlibPath(path) {
		return path
	}
	return filepath.Join(dir, filepath.FromSlash(path))
}

func isStdlibPath(path string) bool {
	return strings.HasPrefix(path, config.StdlibPrefix)
}
