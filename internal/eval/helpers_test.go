package eval

import (
	"github.com/jfranklin9000/ucg/internal/ast"
	"github.com/jfranklin9000/ucg/internal/cache"
	"github.com/jfranklin9000/ucg/internal/diag"
	"github.com/jfranklin9000/ucg/internal/evalerr"
	"github.com/jfranklin9000/ucg/internal/scope"
	"github.com/jfranklin9000/ucg/internal/value"
)

// Hand-built AST construction helpers. This package has no parser of its
// own (parsing is an external collaborator); tests build trees directly.

func pos() ast.Position { return ast.Position{File: "test.ucg", Line: 1, Column: 1} }

func sym(name string) *ast.Symbol       { return &ast.Symbol{Name: name} }
func intLit(v int64) *ast.IntLiteral    { return &ast.IntLiteral{Value: v} }
func floatLit(v float64) *ast.FloatLiteral { return &ast.FloatLiteral{Value: v} }
func strLit(v string) *ast.StrLiteral   { return &ast.StrLiteral{Value: v} }
func boolLit(v bool) *ast.BoolLiteral   { return &ast.BoolLiteral{Value: v} }

func bin(op string, l, r ast.Expression) *ast.BinaryExpr {
	return &ast.BinaryExpr{Op: op, Left: l, Right: r}
}

func list(elems ...ast.Expression) *ast.ListLiteral {
	return &ast.ListLiteral{Elements: elems}
}

func tuple(fields ...ast.TupleField) *ast.TupleLiteral {
	return &ast.TupleLiteral{Fields: fields}
}

func field(name string, v ast.Expression) ast.TupleField {
	return ast.TupleField{Name: name, Value: v}
}

func fn(params []string, body ast.Expression) *ast.FuncLiteral {
	return &ast.FuncLiteral{Params: params, Body: body}
}

func call(f ast.Expression, args ...ast.Expression) *ast.CallExpr {
	return &ast.CallExpr{Func: f, Args: args}
}

// newTestEvaluator builds an Evaluator with no-op diagnostics and an
// in-memory cache, suitable for tests that don't exercise import/include.
func newTestEvaluator(validate bool) *Evaluator {
	e := New("/tmp", nil, &value.Env{}, cache.New(), diag.Noop(), nil, validate)
	return e
}

// newTestEvaluatorWithEnv is newTestEvaluator with a caller-supplied
// environment snapshot, for tests exercising the `env` binding.
func newTestEvaluatorWithEnv(env *value.Env) *Evaluator {
	return New("/tmp", nil, env, cache.New(), diag.Noop(), nil, false)
}

func rootScope() *scope.Scope {
	return scope.New(false)
}

func mustEval(e *Evaluator, expr ast.Expression, sc *scope.Scope) value.Value {
	v, err := e.Eval(expr, sc)
	if err != nil {
		panic(err)
	}
	return v
}

func kindOf(err error) evalerr.Kind {
	k, _ := evalerr.KindOf(err)
	return k
}
