// Package eval implements component F, the evaluator core: recursive
// reduction of an ast.Statement/ast.Expression tree to a value.Value.
// Grounded on the teacher's Eval/evalCore split
// (_examples/funvibe-funxy/internal/evaluator/evaluator.go) — a public
// Eval that tracks recursion depth and stamps error positions, delegating
// to an unexported evalCore that does the actual type-switch dispatch —
// and on apply.go's ApplyFunction calling convention for function calls.
package eval

import (
	"github.com/jfranklin9000/ucg/internal/assertion"
	"github.com/jfranklin9000/ucg/internal/ast"
	"github.com/jfranklin9000/ucg/internal/cache"
	"github.com/jfranklin9000/ucg/internal/diag"
	"github.com/jfranklin9000/ucg/internal/evalerr"
	"github.com/jfranklin9000/ucg/internal/importer"
	"github.com/jfranklin9000/ucg/internal/loader"
	"github.com/jfranklin9000/ucg/internal/scope"
	"github.com/jfranklin9000/ucg/internal/value"
)

// maxEvalDepth bounds Eval recursion to turn a runaway (accidentally
// unbounded) program into an Unsupported error instead of a Go stack
// overflow.
const maxEvalDepth = 10000

// ParseFunc parses UCG source text into a statement list. The lexer and
// parser that implement it are out of scope for this module (spec §1,
// "external collaborators") — a host wires a real one in; tests in this
// package supply a small literal-statement stub instead of parsing text.
type ParseFunc func(source []byte, filename string) ([]ast.Statement, error)

// Evaluator reduces one file's statements to values. Sub-evaluators spawned
// for imports and module instantiation share the Cache and Importers with
// their parent but get their own output lock, assertion collector, and
// working directory.
type Evaluator struct {
	WorkingDir string
	Cache      *cache.Cache
	Importers  *importer.Registry
	Loader     *loader.Loader
	Diag       *diag.Channel
	Env        *value.Env
	Parse      ParseFunc

	Validate   bool
	Assertions *assertion.Collector

	IsModule bool

	outputSet bool
	outputTag string
	outputVal value.Value

	depth int
}

// New builds a root Evaluator for a freshly opened file. workingDir is the
// directory relative imports resolve against (initially the entry file's
// directory, per spec §6). A nil diagCh is replaced by diag.Noop().
func New(workingDir string, searchPaths []string, env *value.Env, c *cache.Cache, diagCh *diag.Channel, parse ParseFunc, validate bool) *Evaluator {
	if diagCh == nil {
		diagCh = diag.Noop()
	}
	return &Evaluator{
		WorkingDir: workingDir,
		Cache:      c,
		Importers:  importer.NewRegistry(),
		Loader:     loader.New(workingDir, searchPaths),
		Diag:       diagCh,
		Env:        env,
		Parse:      parse,
		Validate:   validate,
		Assertions: assertion.NewCollector(),
	}
}

// RootScope returns a fresh root scope with `env` already bound to this
// evaluator's process-environment snapshot (spec §3 Env value; §4.F reserved
// word `env`; §6, "exposed as the env binding"). A host driver calls this
// once to get the scope it passes to Run for an entry file. Scopes for
// imported files (scope.PushImport in importresolve.go) and module
// instantiation (scope.New in module.go) are not built through RootScope
// and do not bind `env`.
func (e *Evaluator) RootScope(strict bool) *scope.Scope {
	sc := scope.New(strict)
	if e.Env != nil {
		sc.Bind("env", *e.Env)
	}
	return sc
}

// spawnSibling creates a new Evaluator sharing this one's cache, importer
// registry, diagnostic channel, environment snapshot, parser, and validate
// flag, but rooted at a (possibly different) working directory and starting
// with a fresh output lock and assertion collector. Used for both imports
// (clean sub-evaluator) and module instantiation (fresh is_module
// evaluator).
func (e *Evaluator) spawnSibling(workingDir string, isModule bool) *Evaluator {
	return &Evaluator{
		WorkingDir: workingDir,
		Cache:      e.Cache,
		Importers:  e.Importers,
		Loader:     loader.New(workingDir, e.Loader.SearchPaths),
		Diag:       e.Diag,
		Env:        e.Env,
		Parse:      e.Parse,
		Validate:   e.Validate,
		Assertions: assertion.NewCollector(),
		IsModule:   isModule,
	}
}

// Eval evaluates node in sc, tracking recursion depth and stamping any
// resulting *evalerr.Error with node's position if it doesn't already carry
// one.
func (e *Evaluator) Eval(node ast.Node, sc *scope.Scope) (value.Value, error) {
	e.depth++
	defer func() { e.depth-- }()
	if e.depth > maxEvalDepth {
		return nil, evalerr.At(evalerr.Unsupported, node.Pos(), "maximum recursion depth exceeded")
	}

	v, err := e.evalCore(node, sc)
	if err != nil {
		if ee, ok := err.(*evalerr.Error); ok && ee.Pos == nil {
			pos := node.Pos()
			ee.Pos = &pos
		}
		return nil, err
	}
	return v, nil
}

func (e *Evaluator) evalCore(node ast.Node, sc *scope.Scope) (value.Value, error) {
	switch n := node.(type) {
	// Statements
	case *ast.LetStatement:
		return nil, e.evalLet(n, sc)
	case *ast.ExpressionStatement:
		_, err := e.Eval(n.Expr, sc)
		return nil, err
	case *ast.AssertStatement:
		e.evalAssert(n, sc)
		return nil, nil
	case *ast.OutputStatement:
		return nil, e.evalOutput(n, sc)

	// Simple values
	case *ast.NullLiteral:
		return value.Empty{}, nil
	case *ast.BoolLiteral:
		return value.Bool{Value: n.Value}, nil
	case *ast.IntLiteral:
		return value.Int{Value: n.Value}, nil
	case *ast.FloatLiteral:
		return value.Float{Value: n.Value}, nil
	case *ast.StrLiteral:
		return value.Str{Value: n.Value}, nil
	case *ast.Symbol:
		return e.evalSymbol(n, sc)
	case *ast.ListLiteral:
		return e.evalListLiteral(n, sc)
	case *ast.TupleLiteral:
		return e.evalTupleLiteral(n, sc)

	// Operators
	case *ast.BinaryExpr:
		return e.evalBinary(n, sc)
	case *ast.NotExpr:
		return e.evalNot(n, sc)

	// Copy / module instantiation
	case *ast.CopyExpr:
		return e.evalCopy(n, sc)

	case *ast.RangeExpr:
		return e.evalRange(n, sc)
	case *ast.GroupedExpr:
		return e.Eval(n.Inner, sc)
	case *ast.FormatExpr:
		return e.evalFormat(n, sc)
	case *ast.CallExpr:
		return e.evalCall(n, sc)
	case *ast.FuncLiteral:
		return e.evalFuncLiteral(n, sc), nil
	case *ast.ModuleLiteral:
		return e.evalModuleLiteral(n, sc)
	case *ast.SelectExpr:
		return e.evalSelect(n, sc)
	case *ast.FuncOpExpr:
		return e.evalFuncOp(n, sc)
	case *ast.IncludeExpr:
		return e.evalInclude(n, sc)
	case *ast.ImportExpr:
		return e.evalImport(n, sc)
	case *ast.FailExpr:
		return e.evalFail(n, sc)
	case *ast.DebugExpr:
		return e.evalDebug(n, sc)
	}
	return nil, evalerr.At(evalerr.Unsupported, node.Pos(), "unhandled AST node %T", node)
}

func (e *Evaluator) evalSymbol(n *ast.Symbol, sc *scope.Scope) (value.Value, error) {
	if v, ok := sc.LookupSym(n.Name, true); ok {
		return v, nil
	}
	return nil, evalerr.At(evalerr.NoSuchSymbol, n.Pos(), "no such symbol: %s", n.Name)
}

func (e *Evaluator) evalListLiteral(n *ast.ListLiteral, sc *scope.Scope) (value.Value, error) {
	elems := make([]value.Value, 0, len(n.Elements))
	for _, elemExpr := range n.Elements {
		v, err := e.Eval(elemExpr, sc)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	return &value.List{Elements: elems}, nil
}

func (e *Evaluator) evalTupleLiteral(n *ast.TupleLiteral, sc *scope.Scope) (value.Value, error) {
	seen := make(map[string]bool, len(n.Fields))
	fields := make([]value.Field, 0, len(n.Fields))
	for _, f := range n.Fields {
		if seen[f.Name] {
			return nil, evalerr.At(evalerr.TypeFail, n.Pos(), "duplicate field %q in tuple literal", f.Name)
		}
		seen[f.Name] = true
		v, err := e.Eval(f.Value, sc)
		if err != nil {
			return nil, err
		}
		fields = append(fields, value.Field{Name: f.Name, Value: v})
	}
	return value.NewTuple(fields), nil
}

func (e *Evaluator) evalNot(n *ast.NotExpr, sc *scope.Scope) (value.Value, error) {
	v, err := e.Eval(n.Expr, sc)
	if err != nil {
		return nil, err
	}
	b, ok := v.(value.Bool)
	if !ok {
		return nil, evalerr.At(evalerr.TypeFail, n.Pos(), "not expects a Bool, got %s", value.TypeName(v))
	}
	return value.Bool{Value: !b.Value}, nil
}

func (e *Evaluator) evalFail(n *ast.FailExpr, sc *scope.Scope) (value.Value, error) {
	v, err := e.Eval(n.Message, sc)
	if err != nil {
		return nil, err
	}
	msg, ok := v.(value.Str)
	if !ok {
		return nil, evalerr.At(evalerr.TypeFail, n.Pos(), "fail expects a Str message, got %s", value.TypeName(v))
	}
	return nil, evalerr.At(evalerr.UserDefined, n.Pos(), "%s", msg.Value)
}

func (e *Evaluator) evalDebug(n *ast.DebugExpr, sc *scope.Scope) (value.Value, error) {
	v, err := e.Eval(n.Inner, sc)
	if err != nil {
		return nil, err
	}
	e.Diag.Trace(render(v), n.Pos())
	return v, nil
}

// Output returns the file's locked output, if any was set.
func (e *Evaluator) Output() (tag string, v value.Value, ok bool) {
	return e.outputTag, e.outputVal, e.outputSet
}
